package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/kms-sarl/site-server-go/internal/audit"
	"github.com/kms-sarl/site-server-go/internal/middleware"
	"github.com/kms-sarl/site-server-go/internal/service"
)

// AuthHandler exposes the login, logout and current-user endpoints under
// /admin/api/auth.
type AuthHandler struct {
	authService     *service.AuthService
	sessionDuration time.Duration
	isProduction    bool
}

func NewAuthHandler(authService *service.AuthService, sessionDuration time.Duration, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		sessionDuration: sessionDuration,
		isProduction:    isProduction,
	}
}

// Login verifies credentials and installs the session cookie. Failures are a
// uniform 401 regardless of which part of the credential pair was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			audit.LoginFailure(req.Email, requestIP(r))
		}
		respondServiceError(w, err)
		return
	}

	audit.LoginSuccess(user.ID, requestIP(r))
	middleware.SetSessionCookie(w, token, h.sessionDuration, h.isProduction)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

// Logout destroys the server-side session and clears the cookie. Calling it
// without a session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			respondServiceError(w, err)
			return
		}
		if user := middleware.GetAdminUser(r.Context()); user != nil {
			audit.Logout(user.ID, requestIP(r))
		}
	}

	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me returns the authenticated user. Mounted behind the auth gate.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetAdminUser(r.Context())
	if user == nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func requestIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
