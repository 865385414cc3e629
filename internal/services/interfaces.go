package services

import (
	"context"

	"github.com/SAP-F-2025/course-catalog-service/internal/listing"
	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type LoginRequest = validator.LoginRequest
type InstructorApplicationRequest = validator.InstructorApplicationRequest
type ContactRequest = validator.ContactRequest
type ProfileUpdateRequest = validator.ProfileUpdateRequest
type PasswordChangeRequest = validator.PasswordChangeRequest
type AvatarUpdateRequest = validator.AvatarUpdateRequest
type PlanChangeRequest = validator.PlanChangeRequest
type BillingCycleRequest = validator.BillingCycleRequest
type PaymentMethodRequest = validator.PaymentMethodRequest
type AppearanceUpdateRequest = validator.AppearanceUpdateRequest
type ListingUpdateRequest = validator.ListingUpdateRequest
type AdminUserRequest = validator.AdminUserRequest
type AdminContentRequest = validator.AdminContentRequest
type BulkActionRequest = validator.BulkActionRequest

// BrowseResult is a synchronously composed catalog page
type BrowseResult struct {
	Filters listing.Filters `json:"filters"`
	Tab     listing.Tab     `json:"tab"`
	Courses []models.Course `json:"courses"`
	Total   int             `json:"total"`
	Empty   bool            `json:"empty"`
}

type LoginResult struct {
	SessionID    string              `json:"session_id"`
	User         models.User         `json:"user"`
	Notification models.Notification `json:"notification"`
}

// ===== DASHBOARD & LEARNING DTOs =====

type EnrolledCourse struct {
	Course     models.CourseSummary `json:"course"`
	Progress   int                  `json:"progress"`
	LastLesson string               `json:"last_lesson,omitempty"`
	TimeLeft   string               `json:"time_left,omitempty"`
}

type DashboardStats struct {
	EnrolledCourses  int `json:"enrolled_courses"`
	CompletedCourses int `json:"completed_courses"`
	SavedCourses     int `json:"saved_courses"`
	Certificates     int `json:"certificates"`
	InProgress       int `json:"in_progress"`
}

type Dashboard struct {
	User             models.User            `json:"user"`
	Stats            DashboardStats         `json:"stats"`
	ContinueLearning []EnrolledCourse       `json:"continue_learning"`
	Enrolled         []models.CourseSummary `json:"enrolled"`
	Completed        []models.CourseSummary `json:"completed"`
	Saved            []models.CourseSummary `json:"saved"`
	Certificates     []models.CourseSummary `json:"certificates"`
	UpcomingEvents   []models.UpcomingEvent `json:"upcoming_events"`
}

type LearningSection struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Lessons   []models.Lesson `json:"lessons"`
	Completed int             `json:"completed"`
}

// LearningView is the course player: the current lesson, navigation and the
// session's completion state.
type LearningView struct {
	Course       models.CourseSummary `json:"course"`
	Sections     []LearningSection    `json:"sections"`
	CurrentIndex int                  `json:"current_index"`
	Current      models.Lesson        `json:"current"`
	HasPrevious  bool                 `json:"has_previous"`
	HasNext      bool                 `json:"has_next"`
	Completed    int                  `json:"completed"`
	Total        int                  `json:"total"`
	Progress     float64              `json:"progress"`
}

// ===== ADMIN DTOs =====

type BulkActionResult struct {
	Affected     int                 `json:"affected"`
	Notification models.Notification `json:"notification"`
}

type CatalogExport struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"-"`
}

// ===== SERVICE INTERFACES =====

type ListingService interface {
	Browse(ctx context.Context, filters listing.Filters, tab listing.Tab) (*BrowseResult, error)

	Create(ctx context.Context, sess *session.Session, initial listing.Filters) (listing.Snapshot, error)
	Get(ctx context.Context, sess *session.Session, id string) (listing.Snapshot, error)
	Update(ctx context.Context, sess *session.Session, id string, req *ListingUpdateRequest) (listing.Snapshot, error)
	SetQuery(ctx context.Context, sess *session.Session, id, query string) (listing.Snapshot, error)
	ToggleCategory(ctx context.Context, sess *session.Session, id, slug string) (listing.Snapshot, error)
	ToggleLevel(ctx context.Context, sess *session.Session, id, level string) (listing.Snapshot, error)
	SetPriceRange(ctx context.Context, sess *session.Session, id string, min, max float64) (listing.Snapshot, error)
	ClearFilters(ctx context.Context, sess *session.Session, id string) (listing.Snapshot, error)
	Delete(ctx context.Context, sess *session.Session, id string) error
}

type NotificationService interface {
	Notify(ctx context.Context, sessionID string, n models.Notification) (models.Notification, error)
	Drain(sessionID string) []models.Notification
	Peek(sessionID string) []models.Notification
}

// FormService handles the public forms
type FormService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sess *session.Session) error
	SubmitInstructorApplication(ctx context.Context, req *InstructorApplicationRequest) (models.Notification, error)
	SubmitContact(ctx context.Context, req *ContactRequest) (models.Notification, error)
}

type AccountService interface {
	UpdateProfile(ctx context.Context, sess *session.Session, req *ProfileUpdateRequest) (models.Notification, error)
	ChangePassword(ctx context.Context, sess *session.Session, req *PasswordChangeRequest) (models.Notification, error)
	UpdateAvatar(ctx context.Context, sess *session.Session, req *AvatarUpdateRequest) (models.Notification, error)
	DeleteAccount(ctx context.Context, sess *session.Session) (models.Notification, error)
}

type BillingService interface {
	ListPlans(ctx context.Context) []models.Plan
	ChangePlan(ctx context.Context, sess *session.Session, req *PlanChangeRequest) (models.Notification, error)
	ChangeBillingCycle(ctx context.Context, sess *session.Session, req *BillingCycleRequest) (models.Notification, error)
	AddPaymentMethod(ctx context.Context, sess *session.Session, req *PaymentMethodRequest) (models.Notification, error)
	RemovePaymentMethod(ctx context.Context, sess *session.Session, id string) (models.Notification, error)
	SetDefaultPaymentMethod(ctx context.Context, sess *session.Session, id string) (models.Notification, error)
	CancelSubscription(ctx context.Context, sess *session.Session) (models.Notification, error)
}

type CourseActionService interface {
	Enroll(ctx context.Context, sess *session.Session, courseID string) (models.Notification, error)
	ToggleSave(ctx context.Context, sess *session.Session, courseID string) (models.Notification, error)
	Share(ctx context.Context, sess *session.Session, courseID string) (models.Notification, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context, sess *session.Session) (*Dashboard, error)
}

type LearningService interface {
	GetLearningView(ctx context.Context, sess *session.Session, courseID string, lessonIndex int) (*LearningView, error)
	SetLessonCompleted(ctx context.Context, sess *session.Session, courseID, lessonID string, completed bool) (*LearningView, error)
	CompleteAll(ctx context.Context, sess *session.Session, courseID string) (*LearningView, error)
}

type PreferenceService interface {
	GetAppearance(ctx context.Context, userID string) models.Appearance
	UpdateAppearance(ctx context.Context, sess *session.Session, req *AppearanceUpdateRequest) (models.Appearance, []models.Notification, error)
	ResetAppearance(ctx context.Context, userID string) models.Appearance
}

type AdminService interface {
	SearchUsers(ctx context.Context, sess *session.Session, query string) ([]models.ManagedUser, error)
	SearchContent(ctx context.Context, sess *session.Session, query string) ([]models.ContentItem, error)
	SaveUser(ctx context.Context, sess *session.Session, id string, req *AdminUserRequest) (models.Notification, error)
	SaveContent(ctx context.Context, sess *session.Session, id string, req *AdminContentRequest) (models.Notification, error)
	Delete(ctx context.Context, sess *session.Session, target models.AdminTarget, id string) (models.Notification, error)
	BulkAction(ctx context.Context, sess *session.Session, req *BulkActionRequest) (*BulkActionResult, error)
	ExportCatalog(ctx context.Context, sess *session.Session) (*CatalogExport, error)
}

// ServiceManager owns every service and their shared lifecycle
type ServiceManager interface {
	Catalog() CatalogService
	Listing() ListingService
	Notification() NotificationService
	Form() FormService
	Account() AccountService
	Billing() BillingService
	CourseAction() CourseActionService
	Dashboard() DashboardService
	Learning() LearningService
	Preference() PreferenceService
	Admin() AdminService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
