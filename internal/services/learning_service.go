package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
)

// learningService drives the course player. Lesson completion lives in the
// session and starts from the lessons the curriculum marks as completed.
type learningService struct {
	catalog CatalogService
	logger  *slog.Logger
}

func NewLearningService(catalog CatalogService, logger *slog.Logger) LearningService {
	return &learningService{
		catalog: catalog,
		logger:  logger,
	}
}

func (s *learningService) GetLearningView(ctx context.Context, sess *session.Session, courseID string, lessonIndex int) (*LearningView, error) {
	course, err := s.course(ctx, courseID)
	if err != nil {
		return nil, err
	}
	done := sess.CompletedLessons(course.ID, seedCompleted(course))
	return buildLearningView(course, done, lessonIndex), nil
}

func (s *learningService) SetLessonCompleted(ctx context.Context, sess *session.Session, courseID, lessonID string, completed bool) (*LearningView, error) {
	course, err := s.course(ctx, courseID)
	if err != nil {
		return nil, err
	}

	index := slices.Index(course.LessonIDs(), lessonID)
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrLessonNotFound, lessonID)
	}

	done := sess.SetLessonCompleted(course.ID, lessonID, completed, seedCompleted(course))
	s.logger.Debug("Lesson completion changed", "session_id", sess.ID(), "course_id", course.ID, "lesson_id", lessonID, "completed", completed)
	return buildLearningView(course, done, index), nil
}

func (s *learningService) CompleteAll(ctx context.Context, sess *session.Session, courseID string) (*LearningView, error) {
	course, err := s.course(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var done []string
	for _, id := range course.LessonIDs() {
		done = sess.SetLessonCompleted(course.ID, id, true, seedCompleted(course))
	}
	return buildLearningView(course, done, 0), nil
}

func (s *learningService) course(ctx context.Context, id string) (models.Course, error) {
	course, ok := s.catalog.GetCourseByID(ctx, id)
	if !ok {
		return models.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	return course, nil
}

func seedCompleted(course models.Course) func() []string {
	return func() []string {
		var ids []string
		for _, section := range course.Curriculum {
			for _, lesson := range section.Lessons {
				if lesson.Completed {
					ids = append(ids, lesson.ID)
				}
			}
		}
		return ids
	}
}

// buildLearningView clamps index into the lesson list. Progress is the
// completed share of all lessons in percent, 0 for an empty curriculum.
func buildLearningView(course models.Course, done []string, index int) *LearningView {
	view := &LearningView{
		Course:   course.Summary(),
		Sections: make([]LearningSection, 0, len(course.Curriculum)),
	}

	var lessons []models.Lesson
	for _, section := range course.Curriculum {
		ls := LearningSection{ID: section.ID, Title: section.Title, Lessons: make([]models.Lesson, 0, len(section.Lessons))}
		for _, lesson := range section.Lessons {
			lesson.Completed = slices.Contains(done, lesson.ID)
			if lesson.Completed {
				ls.Completed++
				view.Completed++
			}
			ls.Lessons = append(ls.Lessons, lesson)
			lessons = append(lessons, lesson)
		}
		view.Sections = append(view.Sections, ls)
	}

	view.Total = len(lessons)
	if view.Total == 0 {
		return view
	}

	index = max(0, min(index, view.Total-1))
	view.CurrentIndex = index
	view.Current = lessons[index]
	view.HasPrevious = index > 0
	view.HasNext = index < view.Total-1
	view.Progress = float64(view.Completed) / float64(view.Total) * 100
	return view
}
