package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kms-sarl/site-server-go/internal/audit"
	"github.com/kms-sarl/site-server-go/internal/middleware"
	"github.com/kms-sarl/site-server-go/internal/model"
	"github.com/kms-sarl/site-server-go/internal/util"
)

type serviceRequest struct {
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"shortDescription"`
	FullDescription  string `json:"fullDescription"`
	Icon             string `json:"icon"`
	SortOrder        int    `json:"sortOrder"`
	IsActive         bool   `json:"isActive"`
}

func (req serviceRequest) toParams() model.ServiceParams {
	return model.ServiceParams{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Icon:             req.Icon,
		SortOrder:        req.SortOrder,
		IsActive:         req.IsActive,
	}
}

type projectRequest struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description"`
	FullDescription string  `json:"fullDescription"`
	Category        string  `json:"category"`
	Client          string  `json:"client"`
	Location        string  `json:"location"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Status          string  `json:"status"`
	FeaturedImage   *string `json:"featuredImage"`
	IsFeatured      bool    `json:"isFeatured"`
	IsPublished     bool    `json:"isPublished"`
}

func (req projectRequest) toParams(createdBy *string) model.ProjectParams {
	return model.ProjectParams{
		Title:           req.Title,
		Slug:            req.Slug,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		Client:          req.Client,
		Location:        req.Location,
		StartDate:       parseDate(req.StartDate),
		EndDate:         parseDate(req.EndDate),
		Status:          model.ProjectStatus(req.Status),
		FeaturedImage:   req.FeaturedImage,
		IsFeatured:      req.IsFeatured,
		IsPublished:     req.IsPublished,
		CreatedBy:       createdBy,
	}
}

type newsRequest struct {
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Excerpt       string  `json:"excerpt"`
	Content       string  `json:"content"`
	Category      string  `json:"category"`
	FeaturedImage *string `json:"featuredImage"`
	IsFeatured    bool    `json:"isFeatured"`
	IsPublished   bool    `json:"isPublished"`
}

type partnerRequest struct {
	Name       string  `json:"name"`
	LogoURL    *string `json:"logoUrl"`
	WebsiteURL *string `json:"websiteUrl"`
	SortOrder  int     `json:"sortOrder"`
	IsActive   bool    `json:"isActive"`
}

type teamMemberRequest struct {
	FullName  string  `json:"fullName"`
	Title     string  `json:"title"`
	Bio       *string `json:"bio"`
	PhotoURL  *string `json:"photoUrl"`
	SortOrder int     `json:"sortOrder"`
	IsActive  bool    `json:"isActive"`
}

// urlID returns the {id} route parameter. Malformed values are rejected here
// so they never reach a uuid column cast; the caller must return when ok is
// false.
func urlID(w http.ResponseWriter, r *http.Request) (id string, ok bool) {
	id = chi.URLParam(r, "id")
	if !util.IsValidUUID(id) {
		writeErrorMessage(w, http.StatusNotFound, "Not found")
		return "", false
	}
	return id, true
}

func auditChange(r *http.Request, action, entity, entityID string) {
	if user := middleware.GetAdminUser(r.Context()); user != nil {
		audit.ContentChange(user.ID, action, entity, entityID)
	}
}

// Services

func (h *AdminHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.contentService.ListServices(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *AdminHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	svc, err := h.contentService.GetService(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *AdminHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	svc, err := h.contentService.CreateService(r.Context(), req.toParams())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "create", "service", svc.ID)
	writeJSON(w, http.StatusCreated, svc)
}

func (h *AdminHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	svc, err := h.contentService.UpdateService(r.Context(), id, req.toParams())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update", "service", svc.ID)
	writeJSON(w, http.StatusOK, svc)
}

func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.contentService.DeleteService(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "service", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Projects

func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	p := ParsePagination(r)
	projects, err := h.contentService.ListProjects(r.Context(), p.Limit, p.Offset)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *AdminHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	project, err := h.contentService.GetProject(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	var createdBy *string
	if user := middleware.GetAdminUser(r.Context()); user != nil {
		createdBy = &user.ID
	}

	project, err := h.contentService.CreateProject(r.Context(), req.toParams(createdBy))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "create", "project", project.ID)
	writeJSON(w, http.StatusCreated, project)
}

func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	project, err := h.contentService.UpdateProject(r.Context(), id, req.toParams(nil))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update", "project", project.ID)
	writeJSON(w, http.StatusOK, project)
}

func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.contentService.DeleteProject(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "project", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// News

func (h *AdminHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	p := ParsePagination(r)
	articles, err := h.contentService.ListNews(r.Context(), p.Limit, p.Offset)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *AdminHandler) GetNewsArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	article, err := h.contentService.GetNewsArticle(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *AdminHandler) CreateNewsArticle(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	params := model.NewsArticleParams{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		IsFeatured:    req.IsFeatured,
		IsPublished:   req.IsPublished,
	}
	if user := middleware.GetAdminUser(r.Context()); user != nil {
		params.AuthorID = &user.ID
		params.AuthorName = user.FullName
	}

	article, err := h.contentService.CreateNewsArticle(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "create", "news", article.ID)
	writeJSON(w, http.StatusCreated, article)
}

func (h *AdminHandler) UpdateNewsArticle(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Title is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	existing, err := h.contentService.GetNewsArticle(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	params := model.NewsArticleParams{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		AuthorID:      existing.AuthorID,
		AuthorName:    existing.AuthorName,
		IsFeatured:    req.IsFeatured,
		IsPublished:   req.IsPublished,
		PublishedAt:   existing.PublishedAt,
	}

	article, err := h.contentService.UpdateNewsArticle(r.Context(), id, params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update", "news", article.ID)
	writeJSON(w, http.StatusOK, article)
}

func (h *AdminHandler) DeleteNewsArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.contentService.DeleteNewsArticle(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "news", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Partners

func (h *AdminHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.contentService.ListPartners(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partners)
}

func (h *AdminHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req partnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	partner, err := h.contentService.CreatePartner(r.Context(), model.PartnerParams{
		Name:       req.Name,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "create", "partner", partner.ID)
	writeJSON(w, http.StatusCreated, partner)
}

func (h *AdminHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	var req partnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	partner, err := h.contentService.UpdatePartner(r.Context(), id, model.PartnerParams{
		Name:       req.Name,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update", "partner", partner.ID)
	writeJSON(w, http.StatusOK, partner)
}

func (h *AdminHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.contentService.DeletePartner(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "partner", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Team

func (h *AdminHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.contentService.ListTeamMembers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *AdminHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FullName == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Full name is required")
		return
	}

	member, err := h.contentService.CreateTeamMember(r.Context(), model.TeamMemberParams{
		FullName:  req.FullName,
		Title:     req.Title,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "create", "team_member", member.ID)
	writeJSON(w, http.StatusCreated, member)
}

func (h *AdminHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req teamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FullName == "" {
		writeErrorMessage(w, http.StatusBadRequest, "Full name is required")
		return
	}

	id, ok := urlID(w, r)
	if !ok {
		return
	}

	member, err := h.contentService.UpdateTeamMember(r.Context(), id, model.TeamMemberParams{
		FullName:  req.FullName,
		Title:     req.Title,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	auditChange(r, "update", "team_member", member.ID)
	writeJSON(w, http.StatusOK, member)
}

func (h *AdminHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.contentService.DeleteTeamMember(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	auditChange(r, "delete", "team_member", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
