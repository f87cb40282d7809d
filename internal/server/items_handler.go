package server

import (
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/repositories"
)

// ItemHandler serves the minimal database list demo: a one-field form
// that appends a row to sqlite and returns the new list entry fragment.
type ItemHandler struct {
	repo     *repositories.ItemRepository
	renderer *html.Renderer
	logger   *log.Logger
}

// NewItemHandler creates the item list demo handler.
func NewItemHandler(repo *repositories.ItemRepository, renderer *html.Renderer, logger *log.Logger) *ItemHandler {
	return &ItemHandler{repo: repo, renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ItemHandler) Routes() []string {
	return []string{"GET /items/{$}", "POST /items/add"}
}

// ServeHTTP dispatches to the page or the add endpoint.
func (h *ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == "/items/add" {
		h.add(w, r)
		return
	}
	h.index(w, r)
}

// index renders the page with every stored item in insertion order.
func (h *ItemHandler) index(w http.ResponseWriter, r *http.Request) {
	stored, err := h.repo.List(nil)
	if err != nil {
		h.logger.Error("failed to list items", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	items := make([]template.HTML, 0, len(stored))
	for _, item := range stored {
		fragment, err := h.renderer.Item(html.ItemView{Sequence: item.Sequence(), Name: item.Name()})
		if err != nil {
			h.logger.Error("failed to render item", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		items = append(items, fragment)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, "items", html.ItemsPage{Title: "SQLite Demo", Items: items}); err != nil {
		h.logger.Error("failed to render items page", "error", err)
	}
}

// add stores the submitted item and returns its list entry fragment for
// the client to append.
func (h *ItemHandler) add(w http.ResponseWriter, r *http.Request) {
	item := models.NewItem(0, r.FormValue("name"))
	if err := h.repo.Create(item); err != nil {
		h.logger.Warn("failed to create item", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fragment, err := h.renderer.Item(html.ItemView{Sequence: item.Sequence(), Name: item.Name()})
	if err != nil {
		h.logger.Error("failed to render item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}
