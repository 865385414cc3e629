package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/SAP-F-2025/course-catalog-service/internal/task"
)

func TestSubmit_CompletesWithOneToast(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	sess := env.learner(t)

	got, toast, err := submit(context.Background(), env.submitter, submission[int]{
		name:    "answer",
		session: sess,
		work:    func(context.Context) (int, error) { return 42, nil },
		commit: func(v int) models.Notification {
			return models.NewNotification("Saved", "value saved")
		},
	})
	if err != nil {
		t.Fatalf("submit() error = %v", err)
	}
	if got != 42 {
		t.Errorf("result = %d, want 42", got)
	}
	if toast.Title != "Saved" || toast.SessionID != sess.ID() || toast.ID == "" {
		t.Errorf("toast = %+v", toast)
	}

	toasts := env.toasts(t)
	if len(toasts) != 1 || toasts[0].ID != toast.ID {
		t.Errorf("published %d toasts, want exactly the returned one", len(toasts))
	}
	if sess.PendingTasks() != 0 {
		t.Errorf("session still tracks %d tasks", sess.PendingTasks())
	}
}

func TestSubmit_WorkErrorEmitsNothing(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	boom := errors.New("boom")

	_, _, err := submit(context.Background(), env.submitter, submission[int]{
		name:   "failing",
		work:   func(context.Context) (int, error) { return 0, boom },
		commit: func(int) models.Notification { return models.NewNotification("never", "") },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if n := len(env.toasts(t)); n != 0 {
		t.Errorf("published %d toasts, want 0", n)
	}
}

func TestSubmit_RequestCanceled(t *testing.T) {
	clock := task.NewManualClock(epoch)
	env := newTestEnv(t, clock, DefaultSubmitDelay)
	sess := env.learner(t)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := submitToast(ctx, env.submitter, "contact", sess, models.NewNotification("Message Sent!", ""))
		errc <- err
	}()

	waitPending(t, clock, 1)
	cancel()

	if err := <-errc; !errors.Is(err, ErrSubmissionCanceled) {
		t.Fatalf("err = %v, want ErrSubmissionCanceled", err)
	}

	// the canceled timer must not deliver late
	clock.Advance(DefaultSubmitDelay)
	if n := len(env.toasts(t)); n != 0 {
		t.Errorf("published %d toasts after cancel, want 0", n)
	}
}

func TestSubmit_SessionEndCancels(t *testing.T) {
	clock := task.NewManualClock(epoch)
	env := newTestEnv(t, clock, DefaultSubmitDelay)
	sess := env.learner(t)

	errc := make(chan error, 1)
	go func() {
		_, err := submitToast(context.Background(), env.submitter, "profile", sess, models.NewNotification("Profile Updated", ""))
		errc <- err
	}()

	waitPending(t, clock, 1)
	if !env.sessions.End(sess.ID()) {
		t.Fatal("End() = false")
	}

	select {
	case err := <-errc:
		if !errors.Is(err, ErrSubmissionCanceled) {
			t.Fatalf("err = %v, want ErrSubmissionCanceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("submission did not observe the ended session")
	}

	clock.Advance(DefaultSubmitDelay)
	if n := len(env.toasts(t)); n != 0 {
		t.Errorf("published %d toasts, want 0", n)
	}
}

func TestSubmit_EndedSessionRejected(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	sess := env.learner(t)
	env.sessions.End(sess.ID())

	_, err := submitToast(context.Background(), env.submitter, "profile", sess, models.NewNotification("x", ""))
	if !errors.Is(err, ErrSubmissionCanceled) {
		t.Fatalf("err = %v, want ErrSubmissionCanceled", err)
	}
}

func TestSubmit_DeterministicWithManualClock(t *testing.T) {
	clock := task.NewManualClock(epoch)
	env := newTestEnv(t, clock, DefaultSubmitDelay)

	type out struct {
		n   models.Notification
		err error
	}
	done := make(chan out, 1)
	go func() {
		n, err := submitToast(context.Background(), env.submitter, "contact", nil, models.NewNotification("Message Sent!", ""))
		done <- out{n, err}
	}()

	waitPending(t, clock, 1)
	clock.Advance(DefaultSubmitDelay - time.Millisecond)
	select {
	case <-done:
		t.Fatal("submission finished before its delay")
	default:
	}

	clock.Advance(time.Millisecond)
	res := <-done
	if res.err != nil {
		t.Fatalf("submitToast() error = %v", res.err)
	}
	if res.n.Title != "Message Sent!" || res.n.SessionID != "" {
		t.Errorf("toast = %+v", res.n)
	}
}

func TestNotificationService_PublishFailure(t *testing.T) {
	env := newTestEnv(t, task.RealClock{}, time.Millisecond)
	sess := env.learner(t)
	env.publisher.FailWith(errors.New("bus down"))

	n, err := notifyNow(context.Background(), env.notifier, sess, models.NewNotification("Link Copied!", ""))
	if err == nil {
		t.Fatal("expected the publish error")
	}
	if n.ID == "" || n.SessionID != sess.ID() {
		t.Errorf("notification not stamped: %+v", n)
	}
}
