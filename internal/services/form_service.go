package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

type formService struct {
	repo      repositories.Repository
	sessions  *session.Manager
	submitter *Submitter
	logger    *slog.Logger
	validator *validator.Validator
}

func NewFormService(repo repositories.Repository, sessions *session.Manager, submitter *Submitter, logger *slog.Logger, validator *validator.Validator) FormService {
	return &formService{
		repo:      repo,
		sessions:  sessions,
		submitter: submitter,
		logger:    logger,
		validator: validator,
	}
}

// Login always succeeds once the form is valid: a known email signs in as
// that account, anything else as the default learner.
func (s *formService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return nil, errors
	}

	portal := req.Portal
	if portal == "" {
		portal = string(models.RoleStudent)
	}
	s.logger.Info("Login submitted", "portal", portal)

	var sess *session.Session
	_, toast, err := submit(ctx, s.submitter, submission[models.User]{
		name: "login",
		work: func(ctx context.Context) (models.User, error) {
			if user, ok := s.repo.User().GetByEmail(ctx, req.Email); ok {
				return user, nil
			}
			return s.repo.User().Default(ctx), nil
		},
		commit: func(user models.User) models.Notification {
			sess = s.sessions.Create(user)
			n := models.NewNotification("Login Successful", fmt.Sprintf("Welcome back to the %s portal.", portal))
			n.SessionID = sess.ID()
			return n
		},
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		SessionID:    sess.ID(),
		User:         sess.User(),
		Notification: toast,
	}, nil
}

func (s *formService) Logout(ctx context.Context, sess *session.Session) error {
	if !s.sessions.End(sess.ID()) {
		return ErrUnauthorized
	}
	s.logger.Info("Logged out", "session_id", sess.ID())
	return nil
}

func (s *formService) SubmitInstructorApplication(ctx context.Context, req *InstructorApplicationRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	s.logger.Info("Instructor application submitted", "expertise", req.Expertise)
	return submitToast(ctx, s.submitter, "instructor application", nil, models.NewNotification(
		"Application Submitted",
		"Your application to become an instructor has been submitted successfully.",
	))
}

func (s *formService) SubmitContact(ctx context.Context, req *ContactRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "general"
	}
	s.logger.Info("Contact message submitted", "subject", subject)
	return submitToast(ctx, s.submitter, "contact", nil, models.NewNotification(
		"Message Sent!",
		"We've received your message and will get back to you soon.",
	))
}
