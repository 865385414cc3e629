package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/cache"
	"github.com/SAP-F-2025/course-catalog-service/internal/events"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	ListingDebounce time.Duration
	SubmitDelay     time.Duration

	// Clock drives debounce and submission timers; nil means real time.
	Clock task.Clock

	DefaultTimeout time.Duration
}

func DefaultServiceManagerConfig() ServiceManagerConfig {
	return ServiceManagerConfig{
		ListingDebounce: 500 * time.Millisecond,
		SubmitDelay:     DefaultSubmitDelay,
		DefaultTimeout:  30 * time.Second,
	}
}

// ServiceDeps are the collaborators the services are built from
type ServiceDeps struct {
	Repo      repositories.Repository
	RepoMgr   repositories.RepositoryManager
	Cache     *cache.CacheManager
	Publisher events.EventPublisher
	Inbox     *events.Inbox
	Sessions  *session.Manager
	Validator *validator.Validator
	Logger    *slog.Logger
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps   ServiceDeps
	config ServiceManagerConfig
	logger *slog.Logger

	// Service instances
	catalogService      CatalogService
	listingService      ListingService
	notificationService NotificationService
	formService         FormService
	accountService      AccountService
	billingService      BillingService
	courseActionService CourseActionService
	dashboardService    DashboardService
	learningService     LearningService
	preferenceService   PreferenceService
	adminService        AdminService

	// Canceled on shutdown; parent of anonymous submissions
	base   context.Context
	cancel context.CancelFunc

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps ServiceDeps, config ServiceManagerConfig) ServiceManager {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewCacheManager(nil)
	}
	if config.Clock == nil {
		config.Clock = task.RealClock{}
	}

	base, cancel := context.WithCancel(context.Background())
	return &serviceManager{
		deps:   deps,
		config: config,
		logger: deps.Logger,
		base:   base,
		cancel: cancel,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.deps.Repo == nil {
		return fmt.Errorf("failed to initialize services: repository is required")
	}
	if sm.deps.Publisher == nil {
		return fmt.Errorf("failed to initialize services: event publisher is required")
	}
	if sm.deps.Sessions == nil {
		return fmt.Errorf("failed to initialize services: session manager is required")
	}

	sm.logger.Info("Initializing service manager")

	d := sm.deps
	sm.catalogService = NewCachedCatalogService(NewCatalogService(d.Repo, d.Logger), d.Cache, d.Logger)
	sm.notificationService = NewNotificationService(d.Publisher, d.Inbox, d.Logger)

	submitter := NewSubmitter(sm.base, sm.config.Clock, sm.config.SubmitDelay, sm.notificationService, d.Logger)

	sm.listingService = NewListingService(sm.catalogService, ListingConfig{
		Debounce: sm.config.ListingDebounce,
		Clock:    sm.config.Clock,
	}, d.Logger, d.Validator)
	sm.formService = NewFormService(d.Repo, d.Sessions, submitter, d.Logger, d.Validator)
	sm.accountService = NewAccountService(d.Sessions, submitter, d.Logger, d.Validator)
	sm.billingService = NewBillingService(d.Repo, submitter, sm.notificationService, d.Logger, d.Validator)
	sm.courseActionService = NewCourseActionService(sm.catalogService, submitter, sm.notificationService, d.Logger)
	sm.dashboardService = NewDashboardService(d.Repo, sm.catalogService, d.Logger)
	sm.learningService = NewLearningService(sm.catalogService, d.Logger)
	sm.preferenceService = NewPreferenceService(d.Cache, sm.notificationService, d.Logger, d.Validator)
	sm.adminService = NewAdminService(d.Repo, sm.catalogService, sm.notificationService, d.Logger, d.Validator)

	if err := d.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) mustBeInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

// Service getters
func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.catalogService
}

func (sm *serviceManager) Listing() ListingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.listingService
}

func (sm *serviceManager) Notification() NotificationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.notificationService
}

func (sm *serviceManager) Form() FormService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.formService
}

func (sm *serviceManager) Account() AccountService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.accountService
}

func (sm *serviceManager) Billing() BillingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.billingService
}

func (sm *serviceManager) CourseAction() CourseActionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.courseActionService
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.dashboardService
}

func (sm *serviceManager) Learning() LearningService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.learningService
}

func (sm *serviceManager) Preference() PreferenceService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.preferenceService
}

func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.adminService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return ErrServiceShutdown
	}

	if sm.config.DefaultTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sm.config.DefaultTimeout)
		defer cancel()
	}

	if sm.deps.RepoMgr != nil {
		if err := sm.deps.RepoMgr.HealthCheck(ctx); err != nil {
			return fmt.Errorf("repository health check failed: %w", err)
		}
	} else if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	// The cache is optional: an unreachable Redis degrades, it does not fail.
	if sm.deps.Cache.Fast.Available() {
		if err := sm.deps.Cache.HealthCheck(ctx); err != nil {
			sm.logger.Warn("Cache health check failed", "error", err)
		}
	}

	return nil
}

// Shutdown cancels pending anonymous submissions. Session-owned work is
// stopped by the session manager.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")
	sm.cancel()

	if sm.deps.RepoMgr != nil {
		if err := sm.deps.RepoMgr.Shutdown(ctx); err != nil {
			sm.logger.Error("Failed to shutdown repository manager", "error", err)
		}
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")
	return nil
}
