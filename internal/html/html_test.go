package html

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/tasks"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return r
}

func TestTaskItemPolling(t *testing.T) {
	r := newRenderer(t)

	t.Run("running fragment carries poll trigger", func(t *testing.T) {
		task := tasks.Task{ID: 7, Status: tasks.StatusRunning, Duration: 3 * time.Second, CreatedAt: time.Now()}

		got, err := r.TaskItem(task, TaskPoll)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		frag := string(got)

		for _, want := range []string{
			`id="task-7"`,
			`hx-get="/tasks/status/7"`,
			`hx-trigger="every 3s"`,
			`hx-swap="outerHTML"`,
			"Processing...",
		} {
			if !strings.Contains(frag, want) {
				t.Errorf("running poll fragment missing %q:\n%s", want, frag)
			}
		}
	})

	t.Run("completed fragment carries no trigger", func(t *testing.T) {
		task := tasks.Task{ID: 7, Status: tasks.StatusCompleted}

		got, err := r.TaskItem(task, TaskPoll)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		frag := string(got)

		for _, banned := range []string{"hx-get", "hx-trigger", "sse-connect"} {
			if strings.Contains(frag, banned) {
				t.Errorf("completed fragment should not contain %q:\n%s", banned, frag)
			}
		}
		if !strings.Contains(frag, "Completed") {
			t.Errorf("completed fragment missing label:\n%s", frag)
		}
		if !strings.Contains(frag, `id="task-7"`) {
			t.Errorf("completed fragment missing element id:\n%s", frag)
		}
	})
}

func TestTaskItemStream(t *testing.T) {
	r := newRenderer(t)

	t.Run("running fragment subscribes to stream", func(t *testing.T) {
		task := tasks.Task{ID: 3, Status: tasks.StatusRunning}

		got, err := r.TaskItem(task, TaskStream)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		frag := string(got)

		for _, want := range []string{
			`hx-ext="sse"`,
			`sse-connect="/sse/status/3"`,
			`sse-swap="message"`,
		} {
			if !strings.Contains(frag, want) {
				t.Errorf("running stream fragment missing %q:\n%s", want, frag)
			}
		}
		if strings.Contains(frag, "hx-trigger") {
			t.Errorf("stream fragment should not poll:\n%s", frag)
		}
	})

	t.Run("completed fragment unsubscribes", func(t *testing.T) {
		task := tasks.Task{ID: 3, Status: tasks.StatusCompleted}

		got, err := r.TaskItem(task, TaskStream)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		if strings.Contains(string(got), "sse-connect") {
			t.Errorf("completed fragment should not reconnect:\n%s", got)
		}
	})
}

func TestTaskItems(t *testing.T) {
	r := newRenderer(t)

	reg := tasks.NewRegistry()
	reg.Create(time.Second, "")
	reg.Create(time.Second, "")
	reg.Complete(1)

	items, err := r.TaskItems(reg.List(), TaskPoll)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(items))
	}
	if !strings.Contains(string(items[0]), "Completed") {
		t.Errorf("first fragment should be completed:\n%s", items[0])
	}
	if !strings.Contains(string(items[1]), "Processing") {
		t.Errorf("second fragment should be running:\n%s", items[1])
	}
}

func TestLotteryNumbers(t *testing.T) {
	r := newRenderer(t)

	got, err := r.LotteryNumbers([]int{4, 8, 15, 16, 23, 42})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	frag := string(got)

	if !strings.HasPrefix(frag, "<aside>") || !strings.HasSuffix(frag, "</aside>") {
		t.Errorf("expected aside fragment, got:\n%s", frag)
	}
	if !strings.Contains(frag, "4, 8, 15, 16, 23, 42") {
		t.Errorf("expected comma-separated numbers, got:\n%s", frag)
	}
}

func TestStatusFragment(t *testing.T) {
	r := newRenderer(t)

	tc := []struct {
		name  string
		view  StatusView
		class string
	}{
		{name: "success", view: StatusView{OK: true, Message: "Saved"}, class: "success"},
		{name: "error", view: StatusView{OK: false, Message: "Save failed"}, class: "error"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Status(tt.view)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if !strings.Contains(string(got), tt.class) {
				t.Errorf("expected class %q in fragment:\n%s", tt.class, got)
			}
			if !strings.Contains(string(got), tt.view.Message) {
				t.Errorf("expected message in fragment:\n%s", got)
			}
		})
	}
}

func TestItemFragmentEscapesName(t *testing.T) {
	r := newRenderer(t)

	got, err := r.Item(ItemView{Sequence: 2, Name: "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(string(got), "<script>") {
		t.Errorf("item name was not escaped:\n%s", got)
	}
	if !strings.Contains(string(got), `id="item-2"`) {
		t.Errorf("item fragment missing id:\n%s", got)
	}
}

func TestPages(t *testing.T) {
	r := newRenderer(t)

	tc := []struct {
		name string
		data any
		want []string
	}{
		{
			name: "index",
			data: IndexPage{Title: "Demos"},
			want: []string{"<title>Demos</title>", "/tasks/", "/sse/", "/contacts/"},
		},
		{
			name: "tasks",
			data: TasksPage{Title: "Background Task Demo"},
			want: []string{`hx-post="/tasks/start"`, `id="tasks-list"`},
		},
		{
			name: "sse_tasks",
			data: TasksPage{Title: "Background Task Demo (SSE)", SSE: true},
			want: []string{`hx-post="/sse/start"`, "htmx-ext-sse"},
		},
		{
			name: "lottery",
			data: LotteryPage{Title: "Server Sent Event Demo", SSE: true},
			want: []string{`sse-connect="/lottery/numbers"`},
		},
		{
			name: "auth signed out",
			data: AuthPage{Title: "Sign in"},
			want: []string{"/auth/login"},
		},
		{
			name: "auth signed in",
			data: AuthPage{Title: "Welcome", SignedIn: true, UserLogin: "octocat"},
			want: []string{"octocat", "/auth/logout"},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			name := tt.name
			if i := strings.Index(name, " "); i > 0 {
				name = name[:i]
			}

			var buf bytes.Buffer
			if err := r.Page(&buf, name, tt.data); err != nil {
				t.Fatalf("render failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("page %s missing %q", name, want)
				}
			}
		})
	}

	t.Run("unknown page", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Page(&buf, "nope", nil); err == nil {
			t.Error("expected error for unknown page template")
		}
	})
}
