package server

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/tasks"
)

// StreamTaskHandler serves the SSE-variant background task demo. Instead
// of polling, the running fragment subscribes to the status endpoint; the
// server pushes exactly one event carrying the completed fragment and
// closes the stream. If the client disconnects mid-wait the delivery is
// abandoned — the runner still completes the task, so later reads observe
// the terminal state.
type StreamTaskHandler struct {
	registry  *tasks.Registry
	scheduler *tasks.Scheduler
	renderer  *html.Renderer
	logger    *log.Logger
}

// NewStreamTaskHandler creates the SSE demo handler.
func NewStreamTaskHandler(registry *tasks.Registry, scheduler *tasks.Scheduler, renderer *html.Renderer, logger *log.Logger) *StreamTaskHandler {
	return &StreamTaskHandler{registry: registry, scheduler: scheduler, renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *StreamTaskHandler) Routes() []string {
	return []string{"GET /sse/{$}", "POST /sse/start", "GET /sse/status/{id}"}
}

// ServeHTTP dispatches to the demo's page, creation, and stream endpoints.
func (h *StreamTaskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/sse/start":
		h.start(w, r)
	case strings.HasPrefix(r.URL.Path, "/sse/status/"):
		h.status(w, r)
	default:
		h.index(w, r)
	}
}

func (h *StreamTaskHandler) index(w http.ResponseWriter, r *http.Request) {
	items, err := h.renderer.TaskItems(h.registry.List(), html.TaskStream)
	if err != nil {
		h.logger.Error("failed to render task list", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := html.TasksPage{Title: "Background Task Demo (SSE)", SSE: true, Items: items}
	if err := h.renderer.Page(w, "sse_tasks", page); err != nil {
		h.logger.Error("failed to render sse tasks page", "error", err)
	}
}

func (h *StreamTaskHandler) start(w http.ResponseWriter, r *http.Request) {
	duration, ok := taskDuration(w, r)
	if !ok {
		return
	}

	task := h.registry.Create(duration, sessionID(r))
	h.scheduler.Start(task)
	h.logger.Info("task started", "id", task.ID, "duration", task.Duration, "variant", "sse")

	fragment, err := h.renderer.TaskItem(task, html.TaskStream)
	if err != nil {
		h.logger.Error("failed to render task fragment", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}

// status holds the connection open until the task completes, pushes its
// completed fragment as a single event, and closes the stream. Unknown
// ids close immediately with an empty 200.
func (h *StreamTaskHandler) status(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	if _, ok := h.registry.Get(id); !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	events := h.completionEvents(r.Context(), id)
	if err := Stream(w, r, events); err != nil {
		h.logger.Error("stream aborted", "id", id, "error", err)
	}
}

// completionEvents produces the finite event sequence for a task: at most
// one element, pushed when the task completes. The producer abandons the
// wait when ctx is cancelled (client disconnect) and always closes the
// channel on exit.
func (h *StreamTaskHandler) completionEvents(ctx context.Context, id int64) <-chan Event {
	events := make(chan Event, 1)

	go func() {
		defer close(events)

		select {
		case <-h.registry.Done(id):
		case <-ctx.Done():
			return
		}

		task, ok := h.registry.Get(id)
		if !ok {
			return
		}
		fragment, err := h.renderer.TaskItem(task, html.TaskStream)
		if err != nil {
			h.logger.Error("failed to render completion fragment", "id", id, "error", err)
			return
		}

		select {
		case events <- Event{Data: string(fragment)}:
		case <-ctx.Done():
		}
	}()

	return events
}

// LotteryHandler serves the open-ended stream demo: an infinite sequence
// of drawn numbers on a fixed cadence, ended only by client disconnect.
// It is the counterpart shape to the single-completion-event stream above.
type LotteryHandler struct {
	renderer *html.Renderer
	logger   *log.Logger
	interval time.Duration
}

// NewLotteryHandler creates the cadence demo handler. interval defaults
// to one second.
func NewLotteryHandler(renderer *html.Renderer, logger *log.Logger, interval time.Duration) *LotteryHandler {
	if interval <= 0 {
		interval = time.Second
	}
	return &LotteryHandler{renderer: renderer, logger: logger, interval: interval}
}

// Routes returns the HTTP routes this handler serves.
func (h *LotteryHandler) Routes() []string {
	return []string{"GET /lottery/{$}", "GET /lottery/numbers"}
}

// ServeHTTP dispatches to the page or the number stream.
func (h *LotteryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/lottery/numbers" {
		h.numbers(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := html.LotteryPage{Title: "Server Sent Event Demo", SSE: true}
	if err := h.renderer.Page(w, "lottery", page); err != nil {
		h.logger.Error("failed to render lottery page", "error", err)
	}
}

func (h *LotteryHandler) numbers(w http.ResponseWriter, r *http.Request) {
	if err := Stream(w, r, h.drawEvents(r.Context())); err != nil {
		h.logger.Error("stream aborted", "error", err)
	}
}

// drawEvents emits a fresh draw immediately and then one per interval,
// forever, until the subscriber disconnects.
func (h *LotteryHandler) drawEvents(ctx context.Context) <-chan Event {
	events := make(chan Event, 1)

	go func() {
		defer close(events)

		for {
			numbers := make([]int, 6)
			for i := range numbers {
				numbers[i] = rand.Intn(40) + 1
			}
			fragment, err := h.renderer.LotteryNumbers(numbers)
			if err != nil {
				h.logger.Error("failed to render lottery fragment", "error", err)
				return
			}

			select {
			case events <- Event{Data: string(fragment)}:
			case <-ctx.Done():
				return
			}

			select {
			case <-time.After(h.interval):
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}
