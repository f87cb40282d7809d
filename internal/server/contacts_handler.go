package server

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/repositories"
)

// ContactHandler serves the contact form demo. Submissions are validated
// server-side and persisted; the response is a status fragment swapped in
// next to the form, success or failure alike.
type ContactHandler struct {
	repo     *repositories.ContactRepository
	renderer *html.Renderer
	logger   *log.Logger
}

// NewContactHandler creates the contact form demo handler.
func NewContactHandler(repo *repositories.ContactRepository, renderer *html.Renderer, logger *log.Logger) *ContactHandler {
	return &ContactHandler{repo: repo, renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *ContactHandler) Routes() []string {
	return []string{"GET /contacts/{$}", "POST /contacts/submit"}
}

// ServeHTTP dispatches to the page or the submit endpoint.
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == "/contacts/submit" {
		h.submit(w, r)
		return
	}
	h.index(w, r)
}

// index renders the form along with prior submissions, newest first.
func (h *ContactHandler) index(w http.ResponseWriter, r *http.Request) {
	stored, err := h.repo.List(nil)
	if err != nil {
		h.logger.Error("failed to list contacts", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	contacts := make([]html.ContactView, 0, len(stored))
	for _, c := range stored {
		contacts = append(contacts, html.ContactView{
			Sequence: c.Sequence(),
			Name:     c.Name(),
			Email:    c.Email(),
			Message:  c.Message(),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := html.ContactsPage{Title: "Contact Form Demo", Contacts: contacts}
	if err := h.renderer.Page(w, "contacts", page); err != nil {
		h.logger.Error("failed to render contacts page", "error", err)
	}
}

// submit validates and stores a submission, answering with a status
// fragment either way. Validation failures return 200 so htmx swaps the
// error notice in instead of discarding it.
func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	contact := models.NewContact(0,
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("message"),
	)

	view := html.StatusView{OK: true, Message: "Thanks for reaching out. We will get back to you soon."}
	if err := h.repo.Create(contact); err != nil {
		h.logger.Warn("rejected contact submission", "error", err)
		view = html.StatusView{OK: false, Message: err.Error()}
	}

	fragment, err := h.renderer.Status(view)
	if err != nil {
		h.logger.Error("failed to render status fragment", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fragment))
}
