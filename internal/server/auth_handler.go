package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	"github.com/tkowalski/go-htmx-examples/internal/html"
	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/repositories"
	"github.com/tkowalski/go-htmx-examples/internal/services"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

const (
	// sessionCookie carries the uuid of the browser's server-side session.
	sessionCookie = "demo_session"
	// stateCookie carries the CSRF state token between login and callback.
	stateCookie = "oauth_state"

	sessionTTL  = 24 * time.Hour
	stateMaxAge = 600
)

// sessionID returns the browser's session id, or "" when the cookie is
// absent. The id is opaque here; only the session repository can say
// whether it names a live session.
func sessionID(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AuthHandler serves the GitHub sign-in demo: authorization code flow
// against GitHub, with the resulting identity held in a server-side
// session keyed by an opaque cookie. The OAuth token itself is used once
// to fetch the user and then discarded.
type AuthHandler struct {
	oauth    *oauth2.Config
	sessions *repositories.SessionRepository
	github   *services.GithubService
	renderer *html.Renderer
	logger   *log.Logger
}

// NewAuthHandler creates the sign-in demo handler.
func NewAuthHandler(oauth *oauth2.Config, sessions *repositories.SessionRepository, github *services.GithubService, renderer *html.Renderer, logger *log.Logger) *AuthHandler {
	return &AuthHandler{oauth: oauth, sessions: sessions, github: github, renderer: renderer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *AuthHandler) Routes() []string {
	return []string{
		"GET /auth/{$}",
		"GET /auth/login",
		"GET /auth/callback",
		"POST /auth/logout",
	}
}

// ServeHTTP dispatches to the page, login, callback, and logout endpoints.
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/auth/login":
		h.login(w, r)
	case "/auth/callback":
		h.callback(w, r)
	case "/auth/logout":
		h.logout(w, r)
	default:
		h.index(w, r)
	}
}

// index renders the signed-in or signed-out state for this browser.
func (h *AuthHandler) index(w http.ResponseWriter, r *http.Request) {
	page := html.AuthPage{Title: "GitHub Sign-In Demo"}

	if id := sessionID(r); id != "" {
		session, err := h.sessions.Get(id)
		switch {
		case err == nil:
			page.SignedIn = true
			page.UserLogin = session.UserLogin()
			page.UserEmail = session.UserEmail()
		case errors.Is(err, shared.ErrSessionNotFound), errors.Is(err, shared.ErrSessionExpired):
			// Stale cookie, fall through to the signed-out view.
		default:
			h.logger.Error("failed to load session", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Page(w, "auth", page); err != nil {
		h.logger.Error("failed to render auth page", "error", err)
	}
}

// login issues a fresh state token and redirects to GitHub's consent page.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	state := shared.GenerateID()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/",
		MaxAge:   stateMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

// callback validates the state token, exchanges the authorization code,
// resolves the GitHub identity, and starts a session for this browser.
func (h *AuthHandler) callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || r.URL.Query().Get("state") != cookie.Value {
		h.logger.Warn("rejected oauth callback", "error", shared.ErrInvalidState)
		http.Error(w, "invalid state parameter", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.logger.Warn("authorization denied",
			"error", r.URL.Query().Get("error"),
			"description", r.URL.Query().Get("error_description"))
		http.Error(w, "authorization failed", http.StatusBadRequest)
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("token exchange failed", "error", fmt.Errorf("%w: %v", shared.ErrAuthFailed, err))
		http.Error(w, "token exchange failed", http.StatusInternalServerError)
		return
	}

	user, err := h.github.AuthenticatedUser(r.Context(), token.AccessToken)
	if err != nil {
		h.logger.Error("failed to fetch authenticated user", "error", err)
		http.Error(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	session := models.NewSession(shared.GenerateID(), user.Login, user.Email, sessionTTL)
	if err := h.sessions.Create(session); err != nil {
		h.logger.Error("failed to create session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.logger.Info("user signed in", "login", user.Login)

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/auth/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID(),
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/auth/", http.StatusFound)
}

// logout deletes the session, clears the cookie, and returns to the
// signed-out page. A missing or stale cookie is not an error.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := h.sessions.Delete(id); err != nil && !errors.Is(err, shared.ErrSessionNotFound) {
			h.logger.Warn("failed to delete session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/auth/", http.StatusSeeOther)
}
