package handler

import (
	"net/http"
	"strings"

	"prescripto-patient-client/internal/state"

	"github.com/sirupsen/logrus"
)

// SessionHandler sets and clears the session token. Tokens are issued by the
// platform's auth service, which this client does not talk to; the login
// view accepts an already-issued token.
type SessionHandler struct {
	store    *state.Store
	renderer *Renderer
	log      *logrus.Logger
}

func NewSessionHandler(store *state.Store, renderer *Renderer, log *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		store:    store,
		renderer: renderer,
		log:      log,
	}
}

func (h *SessionHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "login.html", &PageData{
		Title:    "Login",
		LoggedIn: h.store.Token() != "",
		Flash:    popFlash(w, r),
	})
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token := strings.TrimSpace(r.PostFormValue("token"))
	if token == "" {
		setFlash(w, "warn", "Please enter a session token")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.store.SetToken(r.Context(), token); err != nil {
		h.log.Errorf("Failed to persist session token: %v", err)
		setFlash(w, "error", "Could not save session: "+err.Error())
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SetToken(r.Context(), ""); err != nil {
		h.log.Errorf("Failed to clear session token: %v", err)
		setFlash(w, "error", "Could not clear session: "+err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
