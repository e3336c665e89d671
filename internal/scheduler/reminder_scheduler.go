package scheduler

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cleaning/internal/core/ports"
)

// ReminderScheduler implements ports.ReminderScheduler.
type ReminderScheduler struct {
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	queue   taskQueue
	seq     uint64
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	wake chan struct{}
}

func NewReminderScheduler(logger *slog.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		logger: logger.With("component", "reminder_scheduler"),
		now:    time.Now,
		queue:  make(taskQueue, 0),
		wake:   make(chan struct{}, 1),
	}
}

// Schedule enqueues task to run no earlier than delay from now. Tasks
// scheduled while the scheduler is stopped wait for the next Start.
func (s *ReminderScheduler) Schedule(delay time.Duration, task ports.Task) {
	if task == nil {
		return
	}

	s.mu.Lock()
	s.seq++
	heap.Push(&s.queue, &scheduledTask{
		at:   s.now().Add(max(delay, 0)),
		seq:  s.seq,
		task: task,
	})
	s.mu.Unlock()

	s.notify()
}

// Pending reports how many tasks wait to run.
func (s *ReminderScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Start launches the worker. Calling Start on a running scheduler is a no-op.
func (s *ReminderScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.loop(ctx, s.done)
	s.logger.InfoContext(ctx, "Reminder scheduler started")
}

// Stop cancels the wait, lets an in-flight task finish and drops every
// queued task. The scheduler can be started again afterwards.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	dropped := s.queue.Len()
	s.queue = make(taskQueue, 0)
	s.mu.Unlock()

	s.logger.InfoContext(context.Background(), "Reminder scheduler stopped", "dropped_tasks", dropped)
}

func (s *ReminderScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		if ctx.Err() != nil {
			return
		}

		s.mu.Lock()
		var (
			due  *scheduledTask
			wait time.Duration
			idle = s.queue.Len() == 0
		)
		if !idle {
			wait = s.queue[0].at.Sub(s.now())
			if wait <= 0 {
				due = heap.Pop(&s.queue).(*scheduledTask)
			}
		}
		s.mu.Unlock()

		if due != nil {
			s.run(ctx, due.task)
			continue
		}

		if !s.wait(ctx, idle, wait) {
			return
		}
	}
}

// wait blocks until the head task may be due, a task is scheduled or ctx ends.
// It returns false once ctx is done.
func (s *ReminderScheduler) wait(ctx context.Context, idle bool, d time.Duration) bool {
	var timeout <-chan time.Time
	if !idle {
		timer := time.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-ctx.Done():
		return false
	case <-s.wake:
	case <-timeout:
	}
	return true
}

// run shields the task from Stop's cancellation and recovers its panics.
func (s *ReminderScheduler) run(ctx context.Context, task ports.Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "Reminder task panicked", "error", fmt.Sprint(r))
		}
	}()

	if err := task(context.WithoutCancel(ctx)); err != nil {
		s.logger.ErrorContext(ctx, "Reminder task failed", "error", err)
	}
}

func (s *ReminderScheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
