package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

// UserMemory knows the full learner profile plus the lighter admin-panel
// accounts, which sign in with empty course lists.
type UserMemory struct {
	learner  models.User
	accounts []models.User
	events   []models.UpcomingEvent
}

func NewUserMemory(learner models.User, managed []models.ManagedUser, events []models.UpcomingEvent) *UserMemory {
	accounts := []models.User{learner}
	for _, mu := range managed {
		if strings.EqualFold(mu.Email, learner.Email) {
			continue
		}
		accounts = append(accounts, models.User{
			ID:     "account-" + mu.ID,
			Name:   mu.Name,
			Email:  mu.Email,
			Avatar: mu.Avatar,
			Role:   mu.Role,
		})
	}
	return &UserMemory{learner: learner, accounts: accounts, events: events}
}

func (m *UserMemory) GetByID(ctx context.Context, id string) (models.User, bool) {
	for _, u := range m.accounts {
		if u.ID == id {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

func (m *UserMemory) GetByEmail(ctx context.Context, email string) (models.User, bool) {
	email = strings.TrimSpace(email)
	for _, u := range m.accounts {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

func (m *UserMemory) Default(ctx context.Context) models.User {
	return m.learner.Clone()
}

func (m *UserMemory) UpcomingEvents(ctx context.Context) []models.UpcomingEvent {
	return slices.Clone(m.events)
}
