package server

import (
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/repositories"
)

// DocumentHandler serves the rich text editor demo. The editor's HTML
// output is stored verbatim; saving with an id updates the existing
// document, saving without one creates a new document. Deletes are soft,
// handled by the repository.
type DocumentHandler struct {
	repo     *repositories.DocumentRepository
	renderer *html.Renderer
	logger   *log.Logger
}

// NewDocumentHandler creates the editor demo handler.
func NewDocumentHandler(repo *repositories.DocumentRepository, renderer *html.Renderer, logger *log.Logger) *DocumentHandler {
	return &DocumentHandler{repo: repo, renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *DocumentHandler) Routes() []string {
	return []string{
		"GET /documents/{$}",
		"POST /documents/save",
		"GET /documents/{id}",
		"DELETE /documents/{id}",
	}
}

// ServeHTTP dispatches to the page, save, load, and delete endpoints.
func (h *DocumentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/documents/save":
		h.save(w, r)
	case r.Method == http.MethodDelete:
		h.delete(w, r)
	case r.PathValue("id") != "":
		h.load(w, r)
	default:
		h.page(w, r, nil)
	}
}

// page renders the editor with the saved document list. doc is non-nil
// when an existing document is loaded into the editor.
func (h *DocumentHandler) page(w http.ResponseWriter, r *http.Request, doc *models.Document) {
	stored, err := h.repo.List(nil)
	if err != nil {
		h.logger.Error("failed to list documents", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	rows := make([]template.HTML, 0, len(stored))
	for _, d := range stored {
		row, err := h.renderer.DocumentRow(html.DocumentRowView{
			ID:        d.ID(),
			Title:     d.Title(),
			UpdatedAt: d.UpdatedAt().Format("Jan 2, 2006 15:04"),
		})
		if err != nil {
			h.logger.Error("failed to render document row", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		rows = append(rows, row)
	}

	view := html.DocumentsPage{Title: "Rich Text Editor Demo", Rows: rows}
	if doc != nil {
		view.Doc = &html.DocumentView{
			ID:    doc.ID(),
			Title: doc.Title(),
			// Stored content is the editor's own HTML; rendering it
			// unescaped is what makes the round trip a round trip.
			Content: template.HTML(doc.Content()),
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, "documents", view); err != nil {
		h.logger.Error("failed to render documents page", "error", err)
	}
}

// save creates or updates a document from the editor form and answers
// with a status fragment.
func (h *DocumentHandler) save(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	title := r.FormValue("title")
	content := r.FormValue("content")

	var err error
	if id == "" {
		err = h.repo.Create(models.NewDocument(0, title, content))
	} else {
		err = h.update(id, title, content)
	}

	view := html.StatusView{OK: true, Message: "Document saved."}
	if err != nil {
		h.logger.Warn("failed to save document", "id", id, "error", err)
		view = html.StatusView{OK: false, Message: err.Error()}
	}
	h.status(w, view)
}

func (h *DocumentHandler) update(id, title, content string) error {
	doc, err := h.repo.Get(id)
	if err != nil {
		return err
	}
	doc.SetTitle(title)
	doc.SetContent(content)
	return h.repo.Update(doc)
}

// load re-renders the page with the chosen document in the editor.
func (h *DocumentHandler) load(w http.ResponseWriter, r *http.Request) {
	doc, err := h.repo.Get(r.PathValue("id"))
	if err != nil {
		h.logger.Warn("failed to load document", "id", r.PathValue("id"), "error", err)
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	h.page(w, r, doc)
}

// delete soft-deletes a document and answers with a status fragment.
func (h *DocumentHandler) delete(w http.ResponseWriter, r *http.Request) {
	view := html.StatusView{OK: true, Message: "Document deleted."}
	if err := h.repo.Delete(r.PathValue("id")); err != nil {
		h.logger.Warn("failed to delete document", "id", r.PathValue("id"), "error", err)
		view = html.StatusView{OK: false, Message: err.Error()}
	}
	h.status(w, view)
}

func (h *DocumentHandler) status(w http.ResponseWriter, view html.StatusView) {
	fragment, err := h.renderer.Status(view)
	if err != nil {
		h.logger.Error("failed to render status fragment", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}
