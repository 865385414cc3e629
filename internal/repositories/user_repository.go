package repositories

import (
	"context"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

// UserRepository resolves learner accounts for simulated sign-in
type UserRepository interface {
	GetByID(ctx context.Context, id string) (models.User, bool)
	GetByEmail(ctx context.Context, email string) (models.User, bool)

	// Default is the account every unknown sign-in falls back to.
	Default(ctx context.Context) models.User

	UpcomingEvents(ctx context.Context) []models.UpcomingEvent
}
