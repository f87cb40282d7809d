package tasks

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Status is the lifecycle state of a background task.
//
// The transition is monotonic: a task starts Running and moves to Completed
// exactly once, never back.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// Duration bounds enforced at creation. The demos default to a random
// duration of 2-6 seconds, matching the button label on the demo pages.
const (
	MinDuration = 1 * time.Second
	MaxDuration = 30 * time.Second
)

// Task is a unit of simulated asynchronous work tracked by id and status.
// ID, Duration, CreatedAt, and OwnerSession are immutable after creation.
type Task struct {
	ID           int64
	Status       Status
	Duration     time.Duration
	CreatedAt    time.Time
	OwnerSession string
}

// Remaining returns how much of the task's duration is left at the given
// instant. Never negative, so a delayed runner completes immediately
// instead of sleeping a full duration again.
func (t Task) Remaining(now time.Time) time.Duration {
	remaining := t.Duration - now.Sub(t.CreatedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

type entry struct {
	task Task
	done chan struct{}
}

// Registry is the in-memory task store shared by the demo handlers and the
// scheduler. Ids are sequential from 1 and never reused. A single mutex
// serializes id allocation with insertion, so concurrent creations can
// neither collide nor leave gaps.
//
// Entries are never deleted; the registry lives for the process lifetime.
type Registry struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]*entry
}

// NewRegistry creates an empty task registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[int64]*entry)}
}

// Create allocates the next id and inserts a Running task with the given
// duration as one step. ownerSession may be empty; it is recorded for
// display only, not enforced as an access boundary.
func (r *Registry) Create(duration time.Duration, ownerSession string) Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task := Task{
		ID:           r.nextID,
		Status:       StatusRunning,
		Duration:     duration,
		CreatedAt:    time.Now(),
		OwnerSession: ownerSession,
	}
	r.tasks[task.ID] = &entry{task: task, done: make(chan struct{})}

	return task
}

// Get returns the task with the given id. The bool is false for unknown
// ids; callers render an empty response rather than an error.
func (r *Registry) Get(id int64) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tasks[id]
	if !ok {
		return Task{}, false
	}
	return e.task, true
}

// Complete marks the task Completed and closes its done channel.
// Idempotent: completing an absent or already-completed task is a no-op.
func (r *Registry) Complete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.tasks[id]
	if !ok || e.task.Status == StatusCompleted {
		return
	}
	e.task.Status = StatusCompleted
	close(e.done)
}

// Done returns a channel that is closed when the task completes. For
// unknown ids the returned channel is already closed, so waiters wake
// immediately instead of hanging on an id that will never complete.
func (r *Registry) Done(id int64) <-chan struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.tasks[id]
	if !ok {
		return closedDone
	}
	return e.done
}

// List returns all tasks sorted by id for rendering on the demo index pages.
func (r *Registry) List() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]Task, 0, len(r.tasks))
	for _, e := range r.tasks {
		tasks = append(tasks, e.task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks
}

// Len returns the number of tasks in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// RandomDuration returns a random task duration between 2 and 6 seconds.
func RandomDuration() time.Duration {
	return time.Duration(rand.Intn(5)+2) * time.Second
}

// ClampDuration bounds a requested duration to [MinDuration, MaxDuration].
func ClampDuration(d time.Duration) time.Duration {
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}
