package repositories

import "context"

// Repository aggregates the read-only catalog stores.
type Repository interface {
	// Catalog domain
	Course() CourseRepository
	Category() CategoryRepository

	// Account domain
	User() UserRepository
	Admin() AdminRepository
	Billing() BillingRepository

	// Health check
	Ping(ctx context.Context) error
}

// RepositoryManager owns repository lifecycle
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
