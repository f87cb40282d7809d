package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/tasks"
)

// TaskHandler serves the polling-variant background task demo. Creating a
// task returns its running fragment immediately; the fragment instructs
// the client to re-poll the status endpoint until the rendered state is
// terminal. The server holds no per-client state: every poll is an
// independent registry read.
type TaskHandler struct {
	registry  *tasks.Registry
	scheduler *tasks.Scheduler
	renderer  *html.Renderer
	logger    *log.Logger
}

// NewTaskHandler creates the polling demo handler.
func NewTaskHandler(registry *tasks.Registry, scheduler *tasks.Scheduler, renderer *html.Renderer, logger *log.Logger) *TaskHandler {
	return &TaskHandler{registry: registry, scheduler: scheduler, renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *TaskHandler) Routes() []string {
	return []string{"GET /tasks/{$}", "POST /tasks/start", "GET /tasks/status/{id}"}
}

// ServeHTTP dispatches to the demo's page, creation, and status endpoints.
func (h *TaskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/tasks/start":
		h.start(w, r)
	case strings.HasPrefix(r.URL.Path, "/tasks/status/"):
		h.status(w, r)
	default:
		h.index(w, r)
	}
}

// index renders the demo page with all existing tasks, oldest first.
func (h *TaskHandler) index(w http.ResponseWriter, r *http.Request) {
	items, err := h.renderer.TaskItems(h.registry.List(), html.TaskPoll)
	if err != nil {
		h.logger.Error("failed to render task list", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, "tasks", html.TasksPage{Title: "Background Task Demo", Items: items}); err != nil {
		h.logger.Error("failed to render tasks page", "error", err)
	}
}

// start creates a task, schedules its runner, and returns the running
// fragment for the client to append to its list.
func (h *TaskHandler) start(w http.ResponseWriter, r *http.Request) {
	duration, ok := taskDuration(w, r)
	if !ok {
		return
	}

	task := h.registry.Create(duration, sessionID(r))
	h.scheduler.Start(task)
	h.logger.Info("task started", "id", task.ID, "duration", task.Duration)

	fragment, err := h.renderer.TaskItem(task, html.TaskPoll)
	if err != nil {
		h.logger.Error("failed to render task fragment", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}

// status renders the task's current fragment. Unknown ids get an empty
// 200 response, which removes the polling element on the next swap.
func (h *TaskHandler) status(w http.ResponseWriter, r *http.Request) {
	task, ok := h.lookup(r)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	fragment, err := h.renderer.TaskItem(task, html.TaskPoll)
	if err != nil {
		h.logger.Error("failed to render task fragment", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}

func (h *TaskHandler) lookup(r *http.Request) (tasks.Task, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return tasks.Task{}, false
	}
	return h.registry.Get(id)
}

// taskDuration resolves the requested duration from the create form.
// Absent input gets the demo's random 2-6s default; non-numeric input is
// rejected; numeric input is clamped to the registry bounds.
func taskDuration(w http.ResponseWriter, r *http.Request) (time.Duration, bool) {
	raw := r.FormValue("duration")
	if raw == "" {
		return tasks.RandomDuration(), true
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "duration must be a number of seconds", http.StatusBadRequest)
		return 0, false
	}
	return tasks.ClampDuration(time.Duration(seconds) * time.Second), true
}
