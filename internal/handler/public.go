package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kms-sarl/site-server-go/internal/service"
)

// PublicHandler serves the anonymous site API: read-only content plus the
// job application form.
type PublicHandler struct {
	contentService  *service.ContentService
	careersService  *service.CareersService
	settingsService *service.SettingsService
	submitLimiter   func(http.Handler) http.Handler
	maxUploadBytes  int64
}

func NewPublicHandler(
	contentService *service.ContentService,
	careersService *service.CareersService,
	settingsService *service.SettingsService,
	submitLimiter func(http.Handler) http.Handler,
	maxUploadBytes int64,
) *PublicHandler {
	return &PublicHandler{
		contentService:  contentService,
		careersService:  careersService,
		settingsService: settingsService,
		submitLimiter:   submitLimiter,
		maxUploadBytes:  maxUploadBytes,
	}
}

func (h *PublicHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/services", h.ListServices)
	r.Get("/projects", h.ListProjects)
	r.Get("/news", h.ListNews)
	r.Get("/partners", h.ListPartners)
	r.Get("/team", h.ListTeam)
	r.Get("/jobs", h.ListJobs)
	r.Get("/jobs/{id}", h.GetJob)
	r.Get("/settings", h.GetSettings)

	r.With(h.submitLimiter).Post("/applications", h.SubmitApplication)

	return r
}

func (h *PublicHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.contentService.ListActiveServices(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *PublicHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.contentService.ListPublishedProjects(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *PublicHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.contentService.ListPublishedNews(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *PublicHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.contentService.ListActivePartners(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

func (h *PublicHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.contentService.ListActiveTeamMembers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *PublicHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.careersService.ListOpenJobs(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *PublicHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	job, err := h.careersService.GetJob(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !job.IsActive {
		writeErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *PublicHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// SubmitApplication accepts a multipart form: text fields plus an optional
// resume file under the "resume" key.
func (h *PublicHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	params := service.SubmitApplicationParams{
		JobID:       r.FormValue("jobId"),
		FullName:    r.FormValue("fullName"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		CoverLetter: r.FormValue("coverLetter"),
	}

	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()
		params.Resume = file
		params.ResumeName = header.Filename
	}

	app, err := h.careersService.SubmitApplication(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      app.ID,
	})
}
