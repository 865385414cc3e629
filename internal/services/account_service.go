package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

// accountService backs the account settings page. Nothing is persisted; each
// submission only reports success.
type accountService struct {
	sessions  *session.Manager
	submitter *Submitter
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAccountService(sessions *session.Manager, submitter *Submitter, logger *slog.Logger, validator *validator.Validator) AccountService {
	return &accountService{
		sessions:  sessions,
		submitter: submitter,
		logger:    logger,
		validator: validator,
	}
}

func (s *accountService) UpdateProfile(ctx context.Context, sess *session.Session, req *ProfileUpdateRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	s.logger.Info("Profile update submitted", "session_id", sess.ID())
	return submitToast(ctx, s.submitter, "profile update", sess, models.NewNotification(
		"Profile Updated",
		"Your profile information has been updated successfully.",
	))
}

func (s *accountService) ChangePassword(ctx context.Context, sess *session.Session, req *PasswordChangeRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().ValidatePasswordChange(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	s.logger.Info("Password change submitted", "session_id", sess.ID())
	return submitToast(ctx, s.submitter, "password change", sess, models.NewNotification(
		"Password Updated",
		"Your password has been changed successfully.",
	))
}

func (s *accountService) UpdateAvatar(ctx context.Context, sess *session.Session, req *AvatarUpdateRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	return submitToast(ctx, s.submitter, "avatar upload", sess, models.NewNotification(
		"Avatar Updated",
		"Your profile picture has been updated successfully.",
	))
}

// DeleteAccount ends the session once the deletion has been confirmed.
func (s *accountService) DeleteAccount(ctx context.Context, sess *session.Session) (models.Notification, error) {
	s.logger.Warn("Account deletion submitted", "session_id", sess.ID())

	toast, err := submitToast(ctx, s.submitter, "account deletion", sess, models.NewDestructiveNotification(
		"Account Deleted",
		"Your account has been permanently deleted.",
	))
	if err != nil {
		return models.Notification{}, err
	}

	s.sessions.End(sess.ID())
	return toast, nil
}
