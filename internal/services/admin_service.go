package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/repositories"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

const (
	coursesSheet    = "Courses"
	categoriesSheet = "Categories"
)

// adminService backs the admin panel. Every call requires an admin session;
// edits are reported, never applied.
type adminService struct {
	repo      repositories.Repository
	catalog   CatalogService
	notifier  NotificationService
	logger    *slog.Logger
	validator *validator.Validator
	now       func() time.Time
}

func NewAdminService(repo repositories.Repository, catalog CatalogService, notifier NotificationService, logger *slog.Logger, validator *validator.Validator) AdminService {
	return &adminService{
		repo:      repo,
		catalog:   catalog,
		notifier:  notifier,
		logger:    logger,
		validator: validator,
		now:       time.Now,
	}
}

func (s *adminService) authorize(sess *session.Session) error {
	if sess == nil || !sess.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// SearchUsers matches query case-insensitively against name, email and role.
func (s *adminService) SearchUsers(ctx context.Context, sess *session.Session, query string) ([]models.ManagedUser, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	users := s.repo.Admin().ListUsers(ctx)
	if q == "" {
		return users, nil
	}
	return slices.DeleteFunc(users, func(u models.ManagedUser) bool {
		return !containsAny(q, u.Name, u.Email, string(u.Role))
	}), nil
}

// SearchContent matches query case-insensitively against title, type, author and status.
func (s *adminService) SearchContent(ctx context.Context, sess *session.Session, query string) ([]models.ContentItem, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	items := s.repo.Admin().ListContent(ctx)
	if q == "" {
		return items, nil
	}
	return slices.DeleteFunc(items, func(c models.ContentItem) bool {
		return !containsAny(q, c.Title, string(c.Type), c.Author, string(c.Status))
	}), nil
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SaveUser adds a user when id is empty and edits the user otherwise.
func (s *adminService) SaveUser(ctx context.Context, sess *session.Session, id string, req *AdminUserRequest) (models.Notification, error) {
	if err := s.authorize(sess); err != nil {
		return models.Notification{}, err
	}
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	if id == "" {
		return notifyNow(ctx, s.notifier, sess, models.NewNotification("User Added", fmt.Sprintf("User %s has been added successfully.", req.Name)))
	}
	if _, ok := s.repo.Admin().GetUser(ctx, id); !ok {
		return models.Notification{}, fmt.Errorf("%w: user %s", ErrAdminItemNotFound, id)
	}
	return notifyNow(ctx, s.notifier, sess, models.NewNotification("User Updated", fmt.Sprintf("User %s has been updated successfully.", req.Name)))
}

func (s *adminService) SaveContent(ctx context.Context, sess *session.Session, id string, req *AdminContentRequest) (models.Notification, error) {
	if err := s.authorize(sess); err != nil {
		return models.Notification{}, err
	}
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return models.Notification{}, errors
	}

	if id == "" {
		return notifyNow(ctx, s.notifier, sess, models.NewNotification("Content Added", fmt.Sprintf("%s has been added successfully.", req.Title)))
	}
	if _, ok := s.repo.Admin().GetContent(ctx, id); !ok {
		return models.Notification{}, fmt.Errorf("%w: content %s", ErrAdminItemNotFound, id)
	}
	return notifyNow(ctx, s.notifier, sess, models.NewNotification("Content Updated", fmt.Sprintf("%s has been updated successfully.", req.Title)))
}

func (s *adminService) exists(ctx context.Context, target models.AdminTarget, id string) (bool, error) {
	switch target {
	case models.TargetUser:
		_, ok := s.repo.Admin().GetUser(ctx, id)
		return ok, nil
	case models.TargetContent:
		_, ok := s.repo.Admin().GetContent(ctx, id)
		return ok, nil
	}
	return false, fmt.Errorf("%w: unknown target %q", ErrInvalidInput, target)
}

func (s *adminService) Delete(ctx context.Context, sess *session.Session, target models.AdminTarget, id string) (models.Notification, error) {
	if err := s.authorize(sess); err != nil {
		return models.Notification{}, err
	}

	ok, err := s.exists(ctx, target, id)
	if err != nil {
		return models.Notification{}, err
	}
	if !ok {
		return models.Notification{}, fmt.Errorf("%w: %s %s", ErrAdminItemNotFound, target, id)
	}

	s.logger.Info("Admin delete", "session_id", sess.ID(), "target", target, "id", id)
	if target == models.TargetUser {
		return notifyNow(ctx, s.notifier, sess, models.NewNotification("User Deleted", "The user has been deleted successfully."))
	}
	return notifyNow(ctx, s.notifier, sess, models.NewNotification("Content Deleted", "The content has been deleted successfully."))
}

// BulkAction reports an empty selection with a destructive notification
// instead of an error.
func (s *adminService) BulkAction(ctx context.Context, sess *session.Session, req *BulkActionRequest) (*BulkActionResult, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	if errors := s.validator.GetBusinessValidator().Validate(req); len(errors) > 0 {
		return nil, errors
	}

	target := models.AdminTarget(req.Target)
	ids := slices.Compact(slices.Sorted(slices.Values(req.IDs)))
	if len(ids) == 0 {
		n, err := notifyNow(ctx, s.notifier, sess, models.NewDestructiveNotification(
			"No Items Selected",
			"Please select at least one item to perform this action.",
		))
		if err != nil {
			return nil, err
		}
		return &BulkActionResult{Affected: 0, Notification: n}, nil
	}

	for _, id := range ids {
		ok, err := s.exists(ctx, target, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", ErrAdminItemNotFound, target, id)
		}
	}

	var title, verb string
	switch models.BulkAction(req.Action) {
	case models.BulkDelete:
		title, verb = "Items Deleted", "deleted"
	case models.BulkActivate:
		title, verb = "Items Activated", "activated"
	case models.BulkDeactivate:
		title, verb = "Items Deactivated", "deactivated"
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	n, err := notifyNow(ctx, s.notifier, sess, models.NewNotification(
		title,
		fmt.Sprintf("%d %s(s) have been %s successfully.", len(ids), target, verb),
	))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin bulk action", "session_id", sess.ID(), "target", target, "action", req.Action, "count", len(ids))
	return &BulkActionResult{Affected: len(ids), Notification: n}, nil
}

// ExportCatalog renders the catalog as a workbook: one sheet of courses and
// one of categories with their seeded and actual course counts.
func (s *adminService) ExportCatalog(ctx context.Context, sess *session.Session) (*CatalogExport, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", coursesSheet); err != nil {
		return nil, fmt.Errorf("failed to name courses sheet: %w", err)
	}
	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return nil, fmt.Errorf("failed to create categories sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	courseRows := [][]interface{}{{
		"ID", "Slug", "Title", "Instructor", "Category", "Level",
		"Price", "Effective Price", "Rating", "Students", "Featured", "Popular", "New",
	}}
	for _, c := range s.catalog.ListCourses(ctx) {
		courseRows = append(courseRows, []interface{}{
			c.ID, c.Slug, c.Title, c.Instructor.Name, c.Category, c.Level,
			c.Price, c.EffectivePrice(), c.Rating, c.Students, c.Featured, c.Popular, c.New,
		})
	}
	if err := writeRows(f, coursesSheet, courseRows, header); err != nil {
		return nil, err
	}

	categoryRows := [][]interface{}{{"ID", "Name", "Slug", "Listed Count", "Actual Count"}}
	for _, cc := range s.catalog.CategoryCourseCounts(ctx) {
		categoryRows = append(categoryRows, []interface{}{cc.ID, cc.Name, cc.Slug, cc.Count, cc.Actual})
	}
	if err := writeRows(f, categoriesSheet, categoryRows, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Catalog exported", "session_id", sess.ID(), "courses", len(courseRows)-1)
	return &CatalogExport{
		FileName: fmt.Sprintf("catalog-%s.xlsx", s.now().UTC().Format("20060102-150405")),
		Data:     buf.Bytes(),
	}, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}
