package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSchedule_CompletesAfterDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	var committed atomic.Int32

	tk := Schedule(context.Background(), clock, 500*time.Millisecond,
		func(ctx context.Context) (string, error) { return "done", nil },
		func(v string) {
			if v != "done" {
				t.Errorf("commit got %q", v)
			}
			committed.Add(1)
		})

	clock.Advance(499 * time.Millisecond)
	if tk.State() != Scheduled {
		t.Fatalf("state before delay = %v, want scheduled", tk.State())
	}

	clock.Advance(time.Millisecond)
	if tk.State() != Completed {
		t.Fatalf("state after delay = %v, want completed", tk.State())
	}
	got, err := tk.Wait(context.Background())
	if err != nil || got != "done" {
		t.Fatalf("Wait() = %q, %v", got, err)
	}
	if committed.Load() != 1 {
		t.Errorf("commit ran %d times, want 1", committed.Load())
	}
}

func TestSchedule_Failed(t *testing.T) {
	clock := NewManualClock(epoch)
	boom := errors.New("boom")
	var committed atomic.Bool

	tk := Schedule(context.Background(), clock, time.Second,
		func(ctx context.Context) (int, error) { return 0, boom },
		func(int) { committed.Store(true) })
	clock.Advance(time.Second)

	if tk.State() != Failed {
		t.Fatalf("state = %v, want failed", tk.State())
	}
	if _, err := tk.Wait(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Wait() error = %v, want boom", err)
	}
	if committed.Load() {
		t.Error("commit ran for a failed task")
	}
}

func TestCancel_BeforeFire(t *testing.T) {
	clock := NewManualClock(epoch)
	var ran, committed atomic.Bool

	tk := Schedule(context.Background(), clock, 500*time.Millisecond,
		func(ctx context.Context) (int, error) { ran.Store(true); return 1, nil },
		func(int) { committed.Store(true) })

	if !tk.Cancel() {
		t.Fatal("Cancel() = false on a scheduled task")
	}
	if tk.Cancel() {
		t.Error("second Cancel() = true")
	}
	clock.Advance(time.Second)

	if ran.Load() || committed.Load() {
		t.Error("canceled task still ran")
	}
	if clock.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", clock.Pending())
	}
	if _, err := tk.Wait(context.Background()); !errors.Is(err, ErrCanceled) {
		t.Errorf("Wait() error = %v, want ErrCanceled", err)
	}
}

func TestCancel_WhileRunningSuppressesCommit(t *testing.T) {
	clock := NewManualClock(epoch)
	started := make(chan struct{})
	var committed atomic.Bool

	tk := Schedule(context.Background(), clock, 0,
		func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 42, nil
		},
		func(int) { committed.Store(true) })

	go clock.Advance(0)
	<-started
	tk.Cancel()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("task did not finish after cancel")
	}
	if tk.State() != Canceled {
		t.Errorf("state = %v, want canceled", tk.State())
	}
	// Let the fn return and observe the canceled state.
	time.Sleep(10 * time.Millisecond)
	if committed.Load() {
		t.Error("commit ran after cancel")
	}
}

func TestSchedule_ParentCancel(t *testing.T) {
	clock := NewManualClock(epoch)
	parent, cancel := context.WithCancel(context.Background())

	tk := Schedule(parent, clock, time.Minute,
		func(ctx context.Context) (int, error) { return 1, nil }, nil)
	cancel()

	select {
	case <-tk.Done():
	case <-time.After(time.Second):
		t.Fatal("parent cancel did not cancel the task")
	}
	if tk.State() != Canceled {
		t.Errorf("state = %v, want canceled", tk.State())
	}
}

func TestWait_ContextDeadline(t *testing.T) {
	clock := NewManualClock(epoch)
	tk := Schedule(context.Background(), clock, time.Minute,
		func(ctx context.Context) (int, error) { return 1, nil }, nil)
	defer tk.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := tk.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want deadline exceeded", err)
	}
	if tk.State() != Scheduled {
		t.Errorf("state = %v, want scheduled", tk.State())
	}
}

func TestRealClock(t *testing.T) {
	tk := Schedule(context.Background(), RealClock{}, time.Millisecond,
		func(ctx context.Context) (int, error) { return 7, nil }, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := tk.Wait(ctx)
	if err != nil || got != 7 {
		t.Fatalf("Wait() = %d, %v", got, err)
	}
}

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(epoch)
	var order []int

	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(100*time.Millisecond, func() {
		order = append(order, 1)
		clock.AfterFunc(100*time.Millisecond, func() { order = append(order, 2) })
	})
	stopped := clock.AfterFunc(200*time.Millisecond, func() { order = append(order, 99) })
	if !stopped.Stop() {
		t.Fatal("Stop() = false on a pending timer")
	}

	clock.Advance(time.Second)

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if !clock.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v", clock.Now())
	}
}
