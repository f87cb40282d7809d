package server

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/tkowalski/go-htmx-examples/internal/html"
)

// IndexHandler serves the landing page listing the demos.
type IndexHandler struct {
	renderer *html.Renderer
	logger   *log.Logger
}

// NewIndexHandler creates the landing page handler.
func NewIndexHandler(renderer *html.Renderer, logger *log.Logger) *IndexHandler {
	return &IndexHandler{renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *IndexHandler) Routes() []string {
	return []string{"GET /{$}"}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, "index", html.IndexPage{Title: "Go HTMX Examples"}); err != nil {
		h.logger.Error("failed to render index page", "error", err)
	}
}
