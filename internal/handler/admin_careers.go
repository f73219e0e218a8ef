package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kms-sarl/site-server-go/internal/model"
)

type jobRequest struct {
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	Department       string  `json:"department"`
	Location         string  `json:"location"`
	EmploymentType   string  `json:"employmentType"`
	ExperienceLevel  string  `json:"experienceLevel"`
	SalaryRange      *string `json:"salaryRange"`
	Description      string  `json:"description"`
	Requirements     string  `json:"requirements"`
	Responsibilities string  `json:"responsibilities"`
	IsActive         bool    `json:"isActive"`
}

func (req jobRequest) toParams() model.JobPostingParams {
	return model.JobPostingParams{
		Title:            req.Title,
		Slug:             req.Slug,
		Department:       req.Department,
		Location:         req.Location,
		EmploymentType:   model.EmploymentType(req.EmploymentType),
		ExperienceLevel:  req.ExperienceLevel,
		SalaryRange:      req.SalaryRange,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		IsActive:         req.IsActive,
	}
}

// Jobs

func (h *AdminHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.careersService.ListJobs(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *AdminHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	job, err := h.careersService.GetJob(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *AdminHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	job, err := h.careersService.CreateJob(r.Context(), req.toParams())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "create", "job_posting", job.ID)
	writeJSON(w, http.StatusCreated, job)
}

func (h *AdminHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	job, err := h.careersService.UpdateJob(r.Context(), id, req.toParams())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update", "job_posting", job.ID)
	writeJSON(w, http.StatusOK, job)
}

func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.careersService.DeleteJob(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "job_posting", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Applications

func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	p := ParsePagination(r)
	apps, err := h.careersService.ListApplications(r.Context(), p.Limit, p.Offset)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *AdminHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	app, err := h.careersService.GetApplication(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *AdminHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Status is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	app, err := h.careersService.UpdateApplicationStatus(r.Context(), id, model.ApplicationStatus(req.Status))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update_status", "application", app.ID)
	writeJSON(w, http.StatusOK, app)
}

func (h *AdminHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.careersService.DeleteApplication(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "application", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
