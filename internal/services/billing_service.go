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

type billingService struct {
	repo      repositories.Repository
	submitter *Submitter
	notifier  NotificationService
	logger    *slog.Logger
	validator *validator.Validator
}

func NewBillingService(repo repositories.Repository, submitter *Submitter, notifier NotificationService, logger *slog.Logger, validator *validator.Validator) BillingService {
	return &billingService{
		repo:      repo,
		submitter: submitter,
		notifier:  notifier,
		logger:    logger,
		validator: validator,
	}
}

func (s *billingService) ListPlans(ctx context.Context) []models.Plan {
	return s.repo.Billing().ListPlans(ctx)
}

func (s *billingService) ChangePlan(ctx context.Context, sess *session.Session, req *PlanChangeRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	plan, ok := s.repo.Billing().GetPlan(ctx, strings.TrimSpace(req.Plan))
	if !ok {
		return models.Notification{}, fmt.Errorf("%w: %s", ErrPlanNotFound, req.Plan)
	}

	s.logger.Info("Plan change submitted", "session_id", sess.ID(), "plan", plan.Key)
	return submitToast(ctx, s.submitter, "plan change", sess, models.NewNotification(
		"Plan Updated",
		fmt.Sprintf("Your subscription has been updated to the %s plan.", plan.Name),
	))
}

func (s *billingService) ChangeBillingCycle(ctx context.Context, sess *session.Session, req *BillingCycleRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	return notifyNow(ctx, s.notifier, sess, models.NewNotification(
		"Billing Cycle Updated",
		fmt.Sprintf("Your billing cycle has been updated to %s.", req.Cycle),
	))
}

func (s *billingService) AddPaymentMethod(ctx context.Context, sess *session.Session, req *PaymentMethodRequest) (models.Notification, error) {
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	return submitToast(ctx, s.submitter, "payment method", sess, models.NewNotification(
		"Payment Method Added",
		"Your new payment method has been added successfully.",
	))
}

func (s *billingService) RemovePaymentMethod(ctx context.Context, sess *session.Session, id string) (models.Notification, error) {
	if strings.TrimSpace(id) == "" {
		return models.Notification{}, ErrInvalidInput
	}
	return notifyNow(ctx, s.notifier, sess, models.NewNotification(
		"Payment Method Removed",
		"Your payment method has been removed successfully.",
	))
}

func (s *billingService) SetDefaultPaymentMethod(ctx context.Context, sess *session.Session, id string) (models.Notification, error) {
	if strings.TrimSpace(id) == "" {
		return models.Notification{}, ErrInvalidInput
	}
	return notifyNow(ctx, s.notifier, sess, models.NewNotification(
		"Default Payment Method Updated",
		"Your default payment method has been updated successfully.",
	))
}

func (s *billingService) CancelSubscription(ctx context.Context, sess *session.Session) (models.Notification, error) {
	s.logger.Warn("Subscription cancelled", "session_id", sess.ID())
	return notifyNow(ctx, s.notifier, sess, models.NewDestructiveNotification(
		"Subscription Cancelled",
		"Your subscription has been cancelled. You will have access until the end of your billing period.",
	))
}
