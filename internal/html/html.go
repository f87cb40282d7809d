// Package html renders pages and HTMX fragments for the demo applications.
//
// Fragment rendering is pure: the renderer maps state to markup with no
// side effects and no dependency on net/http, so fragments can be tested
// without a server. Templates are compiled once at startup from the
// embedded filesystem.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tkowalski/go-htmx-examples/internal/tasks"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TaskVariant selects how a running task's fragment instructs the client
// to learn about completion.
type TaskVariant int

const (
	// TaskPoll embeds an hx-trigger so the client re-requests the status
	// endpoint every few seconds and swaps the fragment wholesale.
	TaskPoll TaskVariant = iota
	// TaskStream embeds sse-connect so the client subscribes to the
	// status endpoint and swaps in the pushed completion fragment.
	TaskStream
)

// PollInterval is the client-side re-poll cadence baked into running
// fragments of the polling variant.
const PollInterval = "every 3s"

// pages that are rendered standalone, each combined with the layout.
var pageNames = []string{
	"index", "tasks", "sse_tasks", "lottery", "contacts", "items",
	"documents", "auth",
}

// Renderer holds the compiled template sets.
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

// New parses all embedded templates. Each page template is combined with
// the shared layout; fragments share one template set.
func New() (*Renderer, error) {
	fragments, err := template.ParseFS(templateFiles,
		"templates/task_item.tmpl",
		"templates/lottery_numbers.tmpl",
		"templates/item.tmpl",
		"templates/status.tmpl",
		"templates/document_row.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFiles,
			"templates/layout.tmpl",
			fmt.Sprintf("templates/%s.tmpl", name),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, fragments: fragments}, nil
}

// Page renders a full page by name into w.
func (r *Renderer) Page(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template: %s", name)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", name, err)
	}
	return nil
}

// taskItemView is the template input for a task fragment.
type taskItemView struct {
	ID         int64
	Running    bool
	Poll       bool
	Stream     bool
	StatusPath string
	Interval   string
}

// TaskItem maps a task's current state to its fragment. Running fragments
// carry the variant's trigger attributes; completed fragments carry none,
// which is what terminates the client's polling or subscription.
func (r *Renderer) TaskItem(task tasks.Task, variant TaskVariant) (template.HTML, error) {
	view := taskItemView{
		ID:       task.ID,
		Running:  task.Status == tasks.StatusRunning,
		Interval: PollInterval,
	}
	switch variant {
	case TaskPoll:
		view.Poll = view.Running
		view.StatusPath = fmt.Sprintf("/tasks/status/%d", task.ID)
	case TaskStream:
		view.Stream = view.Running
		view.StatusPath = fmt.Sprintf("/sse/status/%d", task.ID)
	}

	return r.fragment("task_item", view)
}

// TaskItems renders fragments for a list of tasks, for the demo index pages.
func (r *Renderer) TaskItems(list []tasks.Task, variant TaskVariant) ([]template.HTML, error) {
	items := make([]template.HTML, 0, len(list))
	for _, task := range list {
		item, err := r.TaskItem(task, variant)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// LotteryNumbers renders the cadence demo's fragment: a comma-separated
// run of drawn numbers.
func (r *Renderer) LotteryNumbers(numbers []int) (template.HTML, error) {
	return r.fragment("lottery_numbers", numbers)
}

// ItemView is the template input for a saved item row.
type ItemView struct {
	Sequence int
	Name     string
}

// Item renders a single saved item as a list entry fragment.
func (r *Renderer) Item(view ItemView) (template.HTML, error) {
	return r.fragment("item", view)
}

// StatusView is the template input for the save/delete status fragment
// used by the contacts and documents demos.
type StatusView struct {
	OK      bool
	Message string
}

// Status renders a success or error notice fragment.
func (r *Renderer) Status(view StatusView) (template.HTML, error) {
	return r.fragment("status", view)
}

// DocumentRowView is the template input for a saved document row.
type DocumentRowView struct {
	ID        string
	Title     string
	UpdatedAt string
}

// DocumentRow renders a single saved document entry with its load and
// delete controls.
func (r *Renderer) DocumentRow(view DocumentRowView) (template.HTML, error) {
	return r.fragment("document_row", view)
}

func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render fragment %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
