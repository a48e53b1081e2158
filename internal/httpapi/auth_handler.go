package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/cartstore"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

// SessionWriter is the session-store slice the auth handler needs.
type SessionWriter interface {
	Create(ctx context.Context, sess *session.Session) error
	Delete(ctx context.Context, token string) error
}

type AuthHandler struct {
	auth     *backend.AuthClient
	sessions SessionWriter
	carts    *cartstore.Manager
}

func NewAuthHandler(auth *backend.AuthClient, sessions SessionWriter, carts *cartstore.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, carts: carts}
}

// loginRequest accepts both the current and the legacy field names the
// frontend has used for credentials.
type loginRequest struct {
	Email          string `json:"email"`
	EmailLegacy    string `json:"correo_cliente"`
	Password       string `json:"password"`
	PasswordLegacy string `json:"contrasena_cliente"`
}

type authResponse struct {
	Token    string          `json:"token"`
	Customer domain.Customer `json:"usuario"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	email := firstNonEmpty(req.Email, req.EmailLegacy)
	password := firstNonEmpty(req.Password, req.PasswordLegacy)
	if email == "" || password == "" {
		writeBadRequest(w, r, "email and password are required")
		return
	}

	sess, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sessions.Create(r.Context(), sess); err != nil {
		writeError(w, r, backend.E(backend.KindUnknown, "auth.session", err))
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: sess.Token, Customer: sess.Customer})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req backend.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, r, "correo_cliente and contrasena_cliente are required")
		return
	}

	sess, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sessions.Create(r.Context(), sess); err != nil {
		writeError(w, r, backend.E(backend.KindUnknown, "auth.session", err))
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: sess.Token, Customer: sess.Customer})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.sessions.Delete(r.Context(), sess.Token); err != nil {
		writeError(w, r, backend.E(backend.KindUnknown, "auth.logout", err))
		return
	}
	h.carts.Evict(sess.Customer.ID)
	w.WriteHeader(http.StatusNoContent)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
