package services

import (
	"errors"

	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrListingNotFound    = errors.New("listing not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrAdminItemNotFound  = errors.New("admin item not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrSubmissionCanceled = errors.New("submission canceled")
	ErrServiceShutdown    = errors.New("service is shutting down")

	// Every validator.ValidationErrors matches this with errors.Is.
	ErrValidationFailed = validator.ErrValidationFailed
)
