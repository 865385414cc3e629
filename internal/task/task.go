package task

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCanceled = errors.New("task canceled")

type State int

const (
	Scheduled State = iota
	Running
	Completed
	Failed
	Canceled
)

func (s State) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == Completed || s == Failed || s == Canceled
}

// Task is a delayed unit of work that either produces a result or is canceled.
// Once canceled, neither fn nor commit observe a live task: fn sees a canceled
// context and commit is never called.
type Task[T any] struct {
	mu     sync.Mutex
	state  State
	result T
	err    error

	fn     func(context.Context) (T, error)
	commit func(T)

	timer     Timer
	ctx       context.Context
	cancel    context.CancelFunc
	stopWatch func() bool
	done      chan struct{}
}

// Schedule runs fn after delay on clock. commit, when non-nil, receives the
// result while the task lock is held, so it never races with Cancel. Canceling
// parent cancels the task.
func Schedule[T any](parent context.Context, clock Clock, delay time.Duration, fn func(context.Context) (T, error), commit func(T)) *Task[T] {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	t := &Task[T]{
		state:  Scheduled,
		fn:     fn,
		commit: commit,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	t.mu.Lock()
	t.timer = clock.AfterFunc(delay, t.run)
	t.stopWatch = context.AfterFunc(parent, func() { t.Cancel() })
	t.mu.Unlock()

	return t
}

func (t *Task[T]) run() {
	t.mu.Lock()
	if t.state != Scheduled {
		t.mu.Unlock()
		return
	}
	t.state = Running
	t.mu.Unlock()

	result, err := t.fn(t.ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Canceled {
		return
	}
	if err == nil && t.ctx.Err() != nil {
		err = ErrCanceled
	}
	if err != nil {
		t.state = Failed
		t.err = err
	} else {
		t.state = Completed
		t.result = result
		if t.commit != nil {
			t.commit(result)
		}
	}
	t.finish()
}

// Cancel stops the task if it has not finished yet and reports whether it did.
func (t *Task[T]) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Terminal() {
		return false
	}
	t.state = Canceled
	t.err = ErrCanceled
	if t.timer != nil {
		t.timer.Stop()
	}
	t.finish()
	return true
}

// finish must be called with t.mu held.
func (t *Task[T]) finish() {
	t.cancel()
	if t.stopWatch != nil {
		t.stopWatch()
	}
	close(t.done)
}

func (t *Task[T]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task reaches a terminal state or ctx ends.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.err
}
