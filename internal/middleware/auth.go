package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/kms-sarl/site-server-go/internal/errors"
	"github.com/kms-sarl/site-server-go/internal/httputil"
	"github.com/kms-sarl/site-server-go/internal/model"
)

const (
	// SessionCookieName is the browser cookie carrying the opaque session
	// token. The value is the raw token; only its HMAC ever reaches the
	// database.
	SessionCookieName = "kms_session"

	LoginPagePath = "/admin/login"
	AdminHomePath = "/admin"
)

type contextKey string

const (
	adminUserContextKey contextKey = "adminUser"
	sessionContextKey   contextKey = "session"
)

// GetAdminUser returns the authenticated back-office user, or nil outside a
// protected route.
func GetAdminUser(ctx context.Context) *model.AdminUser {
	if user, ok := ctx.Value(adminUserContextKey).(*model.AdminUser); ok {
		return user
	}
	return nil
}

// GetSession returns the session backing the current request, or nil.
func GetSession(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(sessionContextKey).(*model.Session); ok {
		return session
	}
	return nil
}

// SessionValidator resolves a raw session token to its user and session.
// (nil, nil, nil) means the token is unknown or expired.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*model.AdminUser, *model.Session, error)
}

// AuthMiddleware is the single gate in front of the back-office. Browser
// navigation gets redirects; the JSON API under /admin/api gets status codes.
type AuthMiddleware struct {
	validator    SessionValidator
	isProduction bool
}

func NewAuthMiddleware(validator SessionValidator, isProduction bool) *AuthMiddleware {
	return &AuthMiddleware{validator: validator, isProduction: isProduction}
}

// RequireAuth protects everything mounted under it. A request without a valid
// session never reaches the next handler: pages are sent to the login page,
// API calls get 401. A stale cookie is cleared on the way out so the browser
// stops presenting it.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, session, ok := m.resolve(w, r)
		if !ok {
			return
		}

		if user == nil {
			if isAPIRequest(r) {
				httputil.WriteError(w, apperrors.SessionInvalid())
				return
			}
			ClearSessionCookie(w)
			http.Redirect(w, r, LoginPagePath, http.StatusFound)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, adminUserContextKey, user)
		ctx = context.WithValue(ctx, sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectIfAuthenticated wraps the login page: a user who already holds a
// valid session is sent straight to the back-office instead of seeing the
// form again.
func (m *AuthMiddleware) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, ok := m.resolve(w, r)
		if !ok {
			return
		}

		if user != nil {
			http.Redirect(w, r, AdminHomePath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// resolve reads the session cookie and validates it. ok is false when a
// response has already been written (store failure).
func (m *AuthMiddleware) resolve(w http.ResponseWriter, r *http.Request) (user *model.AdminUser, session *model.Session, ok bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil, true
	}

	user, session, err = m.validator.ValidateSession(r.Context(), cookie.Value)
	if err != nil {
		log.Error().Err(err).Msg("auth middleware: session validation failed")
		if isAPIRequest(r) {
			httputil.WriteError(w, apperrors.Internal("Session validation failed"))
		} else {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return nil, nil, false
	}

	return user, session, true
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/admin/api/") || strings.HasPrefix(r.URL.Path, "/api/")
}

// SetSessionCookie installs the session token for the whole site. HttpOnly
// keeps it away from scripts; Secure is off outside production so local
// development over plain HTTP works.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
