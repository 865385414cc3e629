package memory

import (
	"context"
	"slices"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

type AdminMemory struct {
	users   []models.ManagedUser
	content []models.ContentItem
}

func NewAdminMemory(users []models.ManagedUser, content []models.ContentItem) *AdminMemory {
	return &AdminMemory{users: users, content: content}
}

func (m *AdminMemory) ListUsers(ctx context.Context) []models.ManagedUser {
	return slices.Clone(m.users)
}

func (m *AdminMemory) GetUser(ctx context.Context, id string) (models.ManagedUser, bool) {
	i := slices.IndexFunc(m.users, func(u models.ManagedUser) bool { return u.ID == id })
	if i < 0 {
		return models.ManagedUser{}, false
	}
	return m.users[i], true
}

func (m *AdminMemory) ListContent(ctx context.Context) []models.ContentItem {
	return slices.Clone(m.content)
}

func (m *AdminMemory) GetContent(ctx context.Context, id string) (models.ContentItem, bool) {
	i := slices.IndexFunc(m.content, func(c models.ContentItem) bool { return c.ID == id })
	if i < 0 {
		return models.ContentItem{}, false
	}
	return m.content[i], true
}

type BillingMemory struct {
	plans []models.Plan
}

func NewBillingMemory(plans []models.Plan) *BillingMemory {
	return &BillingMemory{plans: plans}
}

func (m *BillingMemory) ListPlans(ctx context.Context) []models.Plan {
	return slices.Clone(m.plans)
}

func (m *BillingMemory) GetPlan(ctx context.Context, key string) (models.Plan, bool) {
	i := slices.IndexFunc(m.plans, func(p models.Plan) bool { return p.Key == key })
	if i < 0 {
		return models.Plan{}, false
	}
	return m.plans[i], true
}
