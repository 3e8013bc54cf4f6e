package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

// POST v1/auth/login     (200 OK, 400 Bad request)
// POST v1/auth/register  (201 Created, 400 Bad request)
// POST v1/auth/logout    (204 No content)
// GET  v1/auth/user      (200 OK, 404 Not found)

const minPasswordLen = 8

type AuthHandler struct {
	sessions port.SessionProvider
}

func RegisterAuth(mux *http.ServeMux, sessions port.SessionProvider) {
	h := AuthHandler{sessions}
	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/register", h.Register)
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)
	mux.HandleFunc("GET /v1/auth/user", h.GetUser)
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, err := h.auth(r).Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		log.Error("failed to sign in", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(u))
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Register"
	log := slog.With("op", op)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	// the store is not touched until the form checks pass
	if msg, ok := validateRegistration(req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	u, err := h.auth(r).Register(r.Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to register")
		log.Error("failed to register", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserDTO(u))
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Logout"

	if err := h.auth(r).Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign out")
		slog.Error("failed to sign out", "op", op, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.auth(r).CurrentUser()
	if err != nil {
		if errors.Is(err, domain.ErrNotSignedIn) {
			writeError(w, http.StatusNotFound, "not signed in")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to read user")
		slog.Error("failed to read user", "op", "AuthHandler.GetUser", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(u))
}

func (h AuthHandler) auth(r *http.Request) port.AuthStore {
	return h.sessions.Session(sessionID(r)).Auth()
}

func validateRegistration(req RegisterRequest) (string, bool) {
	switch {
	case req.Email == "":
		return "email is required", false
	case req.Password == "":
		return "password is required", false
	case len(req.Password) < minPasswordLen:
		return "password is too weak", false
	case req.Password != req.ConfirmPassword:
		return "passwords do not match", false
	case !req.AcceptTerms:
		return "terms must be accepted", false
	}
	return "", true
}
