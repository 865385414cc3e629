package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

func newTestAdminService(env *testEnv) AdminService {
	return NewAdminService(env.repo, env.catalog, env.notifier, env.logger, env.validator)
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	s := newTestAdminService(env)
	learner := env.learner(t)
	ctx := context.Background()

	checks := map[string]func() error{
		"search users": func() error { _, err := s.SearchUsers(ctx, learner, ""); return err },
		"delete":       func() error { _, err := s.Delete(ctx, learner, models.TargetUser, "1"); return err },
		"export":       func() error { _, err := s.ExportCatalog(ctx, learner); return err },
		"anonymous":    func() error { _, err := s.SearchContent(ctx, nil, ""); return err },
	}
	for name, call := range checks {
		if err := call(); !errors.Is(err, ErrForbidden) {
			t.Errorf("%s: err = %v, want ErrForbidden", name, err)
		}
	}
}

func TestAdminService_Search(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	s := newTestAdminService(env)
	admin := env.admin(t)
	ctx := context.Background()

	users, err := s.SearchUsers(ctx, admin, "INSTRUCTOR")
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(users) != 3 {
		t.Errorf("instructors = %d, want 3", len(users))
	}

	all, _ := s.SearchUsers(ctx, admin, "  ")
	if len(all) != 8 {
		t.Errorf("blank query returned %d users, want 8", len(all))
	}

	content, _ := s.SearchContent(ctx, admin, "draft")
	if len(content) != 1 || content[0].Title != "Introduction to Machine Learning" {
		t.Errorf("draft content = %+v", content)
	}
}

func TestAdminService_SaveAndDelete(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	s := newTestAdminService(env)
	admin := env.admin(t)
	ctx := context.Background()

	req := &AdminUserRequest{Name: "Grace Hopper", Email: "grace@example.com", Role: "instructor", Status: "active"}
	if n, err := s.SaveUser(ctx, admin, "", req); err != nil || n.Title != "User Added" {
		t.Errorf("add user = %q, %v", n.Title, err)
	}
	if n, err := s.SaveUser(ctx, admin, "2", req); err != nil || n.Title != "User Updated" {
		t.Errorf("edit user = %q, %v", n.Title, err)
	}
	if _, err := s.SaveUser(ctx, admin, "99", req); !errors.Is(err, ErrAdminItemNotFound) {
		t.Errorf("edit unknown user = %v", err)
	}
	if _, err := s.SaveUser(ctx, admin, "", &AdminUserRequest{Name: "x", Email: "x@example.com", Role: "wizard", Status: "active"}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("invalid role = %v", err)
	}

	contentReq := &AdminContentRequest{Title: "Go Concurrency", Type: "course", Status: "draft"}
	if n, err := s.SaveContent(ctx, admin, "", contentReq); err != nil || n.Title != "Content Added" {
		t.Errorf("add content = %q, %v", n.Title, err)
	}

	if n, err := s.Delete(ctx, admin, models.TargetContent, "3"); err != nil || n.Title != "Content Deleted" {
		t.Errorf("delete content = %q, %v", n.Title, err)
	}
	if _, err := s.Delete(ctx, admin, models.TargetUser, "99"); !errors.Is(err, ErrAdminItemNotFound) {
		t.Errorf("delete unknown = %v", err)
	}

	// edits are reported, never applied
	users, _ := s.SearchUsers(ctx, admin, "")
	if len(users) != 8 {
		t.Errorf("user count changed to %d", len(users))
	}
}

func TestAdminService_BulkAction(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	s := newTestAdminService(env)
	admin := env.admin(t)
	ctx := context.Background()

	res, err := s.BulkAction(ctx, admin, &BulkActionRequest{Target: "user", Action: "delete"})
	if err != nil {
		t.Fatalf("empty selection error = %v", err)
	}
	if res.Affected != 0 || res.Notification.Variant != models.VariantDestructive || res.Notification.Title != "No Items Selected" {
		t.Errorf("empty selection = %+v", res)
	}

	res, err = s.BulkAction(ctx, admin, &BulkActionRequest{Target: "user", Action: "deactivate", IDs: []string{"4", "2", "4"}})
	if err != nil {
		t.Fatalf("BulkAction() error = %v", err)
	}
	if res.Affected != 2 || res.Notification.Description != "2 user(s) have been deactivated successfully." {
		t.Errorf("bulk deactivate = %+v", res)
	}

	if _, err := s.BulkAction(ctx, admin, &BulkActionRequest{Target: "content", Action: "activate", IDs: []string{"1", "42"}}); !errors.Is(err, ErrAdminItemNotFound) {
		t.Errorf("unknown id = %v, want ErrAdminItemNotFound", err)
	}
	if _, err := s.BulkAction(ctx, admin, &BulkActionRequest{Target: "course", Action: "delete", IDs: []string{"1"}}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("unknown target = %v, want ErrValidationFailed", err)
	}
}

func TestAdminService_ExportCatalog(t *testing.T) {
	env := newTestEnv(t, nil, 0)
	s := newTestAdminService(env)

	export, err := s.ExportCatalog(context.Background(), env.admin(t))
	if err != nil {
		t.Fatalf("ExportCatalog() error = %v", err)
	}
	if !strings.HasPrefix(export.FileName, "catalog-") || !strings.HasSuffix(export.FileName, ".xlsx") {
		t.Errorf("file name = %s", export.FileName)
	}

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	courses, err := f.GetRows(coursesSheet)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", coursesSheet, err)
	}
	if len(courses) != 11 {
		t.Fatalf("course rows = %d, want header plus 10", len(courses))
	}
	if courses[0][0] != "ID" || courses[1][2] != "Web Development Masterclass" {
		t.Errorf("first rows = %v / %v", courses[0], courses[1])
	}

	categories, err := f.GetRows(categoriesSheet)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", categoriesSheet, err)
	}
	if len(categories) != 9 {
		t.Fatalf("category rows = %d, want header plus 8", len(categories))
	}
	web := categories[1]
	if web[2] != "web-development" || web[3] != "42" || web[4] != "3" {
		t.Errorf("web development row = %v", web)
	}
}
