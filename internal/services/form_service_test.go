package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/repositories/memory"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

func newTestFormService(env *testEnv) FormService {
	return NewFormService(env.repo, env.sessions, env.submitter, env.logger, env.validator)
}

func TestFormService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       LoginRequest
		wantUser  string
		wantAdmin bool
		wantMsg   string
	}{
		{
			name:     "unknown email signs in as the default learner",
			req:      LoginRequest{Email: "someone@example.org", Password: "secret"},
			wantUser: memory.DefaultUserID,
			wantMsg:  "Welcome back to the student portal.",
		},
		{
			name:      "admin account",
			req:       LoginRequest{Email: "Michael.Chen@example.com", Password: "secret", Portal: "admin"},
			wantAdmin: true,
			wantMsg:   "Welcome back to the admin portal.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, task.RealClock{}, time.Millisecond)
			s := newTestFormService(env)

			res, err := s.Login(context.Background(), &tt.req)
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if tt.wantUser != "" && res.User.ID != tt.wantUser {
				t.Errorf("user = %s, want %s", res.User.ID, tt.wantUser)
			}

			sess, ok := env.sessions.Get(res.SessionID)
			if !ok {
				t.Fatal("login did not register a session")
			}
			if sess.IsAdmin() != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", sess.IsAdmin(), tt.wantAdmin)
			}
			if res.Notification.Title != "Login Successful" || res.Notification.Description != tt.wantMsg {
				t.Errorf("toast = %+v", res.Notification)
			}
			if res.Notification.SessionID != res.SessionID {
				t.Errorf("toast addressed to %q, want the new session", res.Notification.SessionID)
			}
		})
	}
}

func TestFormService_LoginValidation(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	s := newTestFormService(env)

	_, err := s.Login(context.Background(), &LoginRequest{Email: "not-an-email", Password: ""})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err is %T, want ValidationErrors", err)
	}
	if !verrs.Has("email") || !verrs.Has("password") {
		t.Errorf("fields = %v", verrs.Fields())
	}
	if env.sessions.Count() != 0 {
		t.Error("a rejected login created a session")
	}
	if n := len(env.toasts(t)); n != 0 {
		t.Errorf("published %d toasts, want 0", n)
	}
}

func TestFormService_Logout(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	s := newTestFormService(env)
	sess := env.learner(t)

	if err := s.Logout(context.Background(), sess); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if !sess.Ended() {
		t.Error("session still live after logout")
	}
	if err := s.Logout(context.Background(), sess); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("second Logout() = %v, want ErrUnauthorized", err)
	}
}

func TestFormService_SubmitForms(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	s := newTestFormService(env)
	ctx := context.Background()

	n, err := s.SubmitInstructorApplication(ctx, &InstructorApplicationRequest{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Password:      "analytical",
		Expertise:     "Data Science",
		Bio:           strings.Repeat("I teach the analytical engine. ", 3),
		TermsAccepted: true,
	})
	if err != nil {
		t.Fatalf("SubmitInstructorApplication() error = %v", err)
	}
	if n.Title != "Application Submitted" {
		t.Errorf("toast = %q", n.Title)
	}

	n, err = s.SubmitContact(ctx, &ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there, I have a question.",
	})
	if err != nil {
		t.Fatalf("SubmitContact() error = %v", err)
	}
	if n.Title != "Message Sent!" {
		t.Errorf("toast = %q", n.Title)
	}

	if got := len(env.toasts(t)); got != 2 {
		t.Errorf("published %d toasts, want 2", got)
	}
}

func TestFormService_ContactRejected(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	s := newTestFormService(env)

	_, err := s.SubmitContact(context.Background(), &ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "short"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || !verrs.Has("message") {
		t.Fatalf("err = %v, want a message validation error", err)
	}
}
