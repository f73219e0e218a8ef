package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kms-sarl/site-server-go/internal/httputil"
	"github.com/kms-sarl/site-server-go/internal/service"
	"github.com/kms-sarl/site-server-go/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	httputil.WriteJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates the service sentinel errors into HTTP
// responses. Anything unrecognized is logged and answered with a generic 500
// so internals never leak to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrEmailExists):
		writeErrorMessage(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, service.ErrAdminLimitReached):
		writeErrorMessage(w, http.StatusConflict, "Maximum number of admin accounts reached")
	case errors.Is(err, service.ErrInvalidSlug):
		writeErrorMessage(w, http.StatusBadRequest, "Invalid slug")
	case errors.Is(err, service.ErrInvalidEmail):
		writeErrorMessage(w, http.StatusBadRequest, "Invalid email address")
	case errors.Is(err, service.ErrMissingField):
		writeErrorMessage(w, http.StatusBadRequest, "Full name and email are required")
	case errors.Is(err, service.ErrJobNotOpen):
		writeErrorMessage(w, http.StatusBadRequest, "This position is not open for applications")
	case errors.Is(err, service.ErrInvalidStatus):
		writeErrorMessage(w, http.StatusBadRequest, "Invalid application status")
	case errors.Is(err, storage.ErrUnsupportedType):
		writeErrorMessage(w, http.StatusBadRequest, "Unsupported file type")
	default:
		log.Error().Err(err).Msg("request failed")
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
