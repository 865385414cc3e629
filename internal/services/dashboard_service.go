package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
)

type dashboardService struct {
	repo    repositories.Repository
	catalog CatalogService
	logger  *slog.Logger
}

func NewDashboardService(repo repositories.Repository, catalog CatalogService, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// GetDashboard resolves the session user's course sets. Ids that no longer
// resolve to a course are skipped.
func (s *dashboardService) GetDashboard(ctx context.Context, sess *session.Session) (*Dashboard, error) {
	user := sess.User()

	enrolled := s.catalog.GetCoursesByIDs(ctx, user.EnrolledCourses)
	byID := make(map[string]models.Course, len(enrolled))
	for _, c := range enrolled {
		byID[c.ID] = c
	}

	continueLearning := make([]EnrolledCourse, 0, len(user.Progress))
	for _, p := range user.Progress {
		course, ok := byID[p.CourseID]
		if !ok {
			continue
		}
		continueLearning = append(continueLearning, EnrolledCourse{
			Course:     course.Summary(),
			Progress:   p.Progress,
			LastLesson: p.LastLesson,
			TimeLeft:   p.TimeLeft,
		})
	}

	dashboard := &Dashboard{
		User:             user,
		ContinueLearning: continueLearning,
		Enrolled:         summaries(enrolled),
		Completed:        summaries(s.catalog.GetCoursesByIDs(ctx, user.CompletedCourses)),
		Saved:            summaries(s.catalog.GetCoursesByIDs(ctx, user.SavedCourses)),
		Certificates:     summaries(s.catalog.GetCoursesByIDs(ctx, user.Certificates)),
		UpcomingEvents:   s.repo.User().UpcomingEvents(ctx),
	}
	dashboard.Stats = DashboardStats{
		EnrolledCourses:  len(dashboard.Enrolled),
		CompletedCourses: len(dashboard.Completed),
		SavedCourses:     len(dashboard.Saved),
		Certificates:     len(dashboard.Certificates),
		InProgress:       len(continueLearning),
	}

	s.logger.Debug("Dashboard built", "session_id", sess.ID(), "enrolled", dashboard.Stats.EnrolledCourses)
	return dashboard, nil
}

func summaries(courses []models.Course) []models.CourseSummary {
	out := make([]models.CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Summary())
	}
	return out
}
