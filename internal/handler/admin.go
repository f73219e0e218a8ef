package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kms-sarl/site-server-go/internal/audit"
	"github.com/kms-sarl/site-server-go/internal/middleware"
	"github.com/kms-sarl/site-server-go/internal/service"
)

// AdminHandler mounts the whole back-office: the JSON API under /admin/api
// and the admin single-page app everywhere else under /admin. Everything but
// the login endpoint sits behind the auth gate.
type AdminHandler struct {
	authHandler      *AuthHandler
	authService      *service.AuthService
	contentService   *service.ContentService
	careersService   *service.CareersService
	settingsService  *service.SettingsService
	statsService     *service.StatsService
	authMiddleware   *middleware.AuthMiddleware
	csrf             *middleware.CSRFMiddleware
	loginRateLimiter *middleware.LoginRateLimiter
	pages            http.Handler
}

func NewAdminHandler(
	authHandler *AuthHandler,
	authService *service.AuthService,
	contentService *service.ContentService,
	careersService *service.CareersService,
	settingsService *service.SettingsService,
	statsService *service.StatsService,
	authMiddleware *middleware.AuthMiddleware,
	csrf *middleware.CSRFMiddleware,
	pages http.Handler,
) *AdminHandler {
	return &AdminHandler{
		authHandler:      authHandler,
		authService:      authService,
		contentService:   contentService,
		careersService:   careersService,
		settingsService:  settingsService,
		statsService:     statsService,
		authMiddleware:   authMiddleware,
		csrf:             csrf,
		loginRateLimiter: middleware.NewLoginRateLimiter(),
		pages:            pages,
	}
}

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.csrf.Handler)

	r.With(h.loginRateLimiter.Handler).Post("/api/auth/login", h.authHandler.Login)
	r.Post("/api/auth/logout", h.authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware.RequireAuth)

		r.Get("/api/auth/me", h.authHandler.Me)
		r.Put("/api/profile", h.UpdateProfile)
		r.Post("/api/users", h.AddAdmin)
		r.Get("/api/stats", h.Stats)

		// Services
		r.Get("/api/services", h.ListServices)
		r.Post("/api/services", h.CreateService)
		r.Get("/api/services/{id}", h.GetService)
		r.Put("/api/services/{id}", h.UpdateService)
		r.Delete("/api/services/{id}", h.DeleteService)

		// Projects
		r.Get("/api/projects", h.ListProjects)
		r.Post("/api/projects", h.CreateProject)
		r.Get("/api/projects/{id}", h.GetProject)
		r.Put("/api/projects/{id}", h.UpdateProject)
		r.Delete("/api/projects/{id}", h.DeleteProject)

		// News
		r.Get("/api/news", h.ListNews)
		r.Post("/api/news", h.CreateNewsArticle)
		r.Get("/api/news/{id}", h.GetNewsArticle)
		r.Put("/api/news/{id}", h.UpdateNewsArticle)
		r.Delete("/api/news/{id}", h.DeleteNewsArticle)

		// Partners
		r.Get("/api/partners", h.ListPartners)
		r.Post("/api/partners", h.CreatePartner)
		r.Put("/api/partners/{id}", h.UpdatePartner)
		r.Delete("/api/partners/{id}", h.DeletePartner)

		// Team
		r.Get("/api/team", h.ListTeamMembers)
		r.Post("/api/team", h.CreateTeamMember)
		r.Put("/api/team/{id}", h.UpdateTeamMember)
		r.Delete("/api/team/{id}", h.DeleteTeamMember)

		// Jobs
		r.Get("/api/jobs", h.ListJobs)
		r.Post("/api/jobs", h.CreateJob)
		r.Get("/api/jobs/{id}", h.GetJob)
		r.Put("/api/jobs/{id}", h.UpdateJob)
		r.Delete("/api/jobs/{id}", h.DeleteJob)

		// Applications
		r.Get("/api/applications", h.ListApplications)
		r.Get("/api/applications/{id}", h.GetApplication)
		r.Patch("/api/applications/{id}/status", h.UpdateApplicationStatus)
		r.Delete("/api/applications/{id}", h.DeleteApplication)

		// Settings
		r.Get("/api/settings", h.GetSettings)
		r.Put("/api/settings", h.UpdateSettings)
	})

	// Admin pages. The login page is reachable without a session; everything
	// else redirects to it.
	r.With(h.authMiddleware.RedirectIfAuthenticated).Get("/login", h.servePage)
	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware.RequireAuth)
		r.Get("/", h.servePage)
		r.Get("/*", h.servePage)
	})

	return r
}

func (h *AdminHandler) servePage(w http.ResponseWriter, r *http.Request) {
	h.pages.ServeHTTP(w, r)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetAdminUser(r.Context())
	if user == nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		FullName string  `json:"fullName"`
		Email    string  `json:"email"`
		Password *string `json:"password,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FullName == "" || req.Email == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Full name and email are required")
		return
	}
	if req.Password != nil && len(*req.Password) < 8 {
		writeErrorMessage(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	updated, err := h.authService.UpdateProfile(r.Context(), user.ID, req.FullName, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if updated == nil {
		writeErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	audit.ContentChange(user.ID, "update", "profile", user.ID)
	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetAdminUser(r.Context())

	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FullName == "" || req.Email == "" || req.Password == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Full name, email and password are required")
		return
	}
	if len(req.Password) < 8 {
		writeErrorMessage(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	created, err := h.authService.AddAdmin(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if user != nil {
		audit.ContentChange(user.ID, "create", "admin_user", created.ID)
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetSettings reads straight from the database so the back-office always
// edits current values, never a cached snapshot.
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.ListRows(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req) == 0 {
		writeErrorMessage(w, http.StatusBadRequest, "Settings payload is required")
		return
	}

	if err := h.settingsService.Update(r.Context(), req); err != nil {
		respondServiceError(w, err)
		return
	}

	if user := middleware.GetAdminUser(r.Context()); user != nil {
		audit.ContentChange(user.ID, "update", "settings", "")
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
