package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
)

// courseActionService handles the buttons of the course detail page. The
// user's enrolled and saved sets are read but never written.
type courseActionService struct {
	catalog   CatalogService
	submitter *Submitter
	notifier  NotificationService
	logger    *slog.Logger
}

func NewCourseActionService(catalog CatalogService, submitter *Submitter, notifier NotificationService, logger *slog.Logger) CourseActionService {
	return &courseActionService{
		catalog:   catalog,
		submitter: submitter,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *courseActionService) course(ctx context.Context, id string) (models.Course, error) {
	course, ok := s.catalog.GetCourseByID(ctx, id)
	if !ok {
		return models.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	return course, nil
}

// Enroll takes the usual submission delay. Already enrolled users get no
// toast; the page just moves on to the learning view.
func (s *courseActionService) Enroll(ctx context.Context, sess *session.Session, courseID string) (models.Notification, error) {
	course, err := s.course(ctx, courseID)
	if err != nil {
		return models.Notification{}, err
	}

	if sess.User().IsEnrolled(course.ID) {
		_, _, err := submit(ctx, s.submitter, submission[struct{}]{
			name:    "enrollment",
			session: sess,
		})
		return models.Notification{}, err
	}

	s.logger.Info("Enrollment submitted", "session_id", sess.ID(), "course_id", course.ID)
	return submitToast(ctx, s.submitter, "enrollment", sess, models.NewNotification(
		"Enrolled Successfully!",
		fmt.Sprintf("You have been enrolled in %s", course.Title),
	))
}

func (s *courseActionService) ToggleSave(ctx context.Context, sess *session.Session, courseID string) (models.Notification, error) {
	course, err := s.course(ctx, courseID)
	if err != nil {
		return models.Notification{}, err
	}

	n := models.NewNotification("Added to Saved Courses", fmt.Sprintf("%s has been added to your saved courses", course.Title))
	if sess.User().HasSaved(course.ID) {
		n = models.NewNotification("Removed from Saved Courses", fmt.Sprintf("%s has been removed from your saved courses", course.Title))
	}
	return notifyNow(ctx, s.notifier, sess, n)
}

func (s *courseActionService) Share(ctx context.Context, sess *session.Session, courseID string) (models.Notification, error) {
	if _, err := s.course(ctx, courseID); err != nil {
		return models.Notification{}, err
	}
	return notifyNow(ctx, s.notifier, sess, models.NewNotification(
		"Link Copied!",
		"Course link has been copied to clipboard",
	))
}
