package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kms-sarl/site-server-go/internal/model"
	"github.com/kms-sarl/site-server-go/internal/service"
)

type stubUploadStore struct {
	lastName string
}

func (s *stubUploadStore) Save(filename string, r io.Reader) (string, error) {
	s.lastName = filename
	io.Copy(io.Discard, r)
	return "/uploads/stored.pdf", nil
}

func noopLimiter(next http.Handler) http.Handler { return next }

const (
	testOpenJobID   = "8a3c2f4e-9d1b-4c6a-8e5f-0b7d9c1e3a52"
	testClosedJobID = "2b7e9d4c-1f5a-4e8b-9c3d-6a0f2e8b4d17"
)

func newPublicHandler(jobs *mockJobRepo, apps *mockApplicationRepo, uploads *stubUploadStore) *PublicHandler {
	careers := service.NewCareersService(jobs, apps, uploads)
	content := service.NewContentService(nil, nil, nil, nil, nil)
	return NewPublicHandler(content, careers, nil, noopLimiter, 5<<20)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestPublicSubmitApplication(t *testing.T) {
	t.Run("multipart submission with resume", func(t *testing.T) {
		job := &model.JobPosting{ID: testOpenJobID, Title: "Site Engineer", IsActive: true}

		jobs := new(mockJobRepo)
		jobs.On("FindByID", mock.Anything, testOpenJobID).Return(job, nil)

		apps := new(mockApplicationRepo)
		apps.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateApplicationParams) bool {
			return p.FullName == "Jane Doe" &&
				p.Email == "jane@example.com" &&
				p.JobTitle != nil && *p.JobTitle == "Site Engineer" &&
				p.ResumeURL != nil && *p.ResumeURL == "/uploads/stored.pdf"
		})).Return(&model.JobApplication{ID: "application-1", Status: model.ApplicationStatusPending}, nil)

		uploads := &stubUploadStore{}
		h := newPublicHandler(jobs, apps, uploads)

		body, contentType := multipartBody(t, map[string]string{
			"jobId":    testOpenJobID,
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
			"phone":    "+243 999 000 111",
		}, "resume", "cv.pdf", "%PDF-1.4")

		req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.SubmitApplication(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "cv.pdf", uploads.lastName)

		var resp struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "application-1", resp.ID)

		apps.AssertExpectations(t)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		h := newPublicHandler(new(mockJobRepo), new(mockApplicationRepo), &stubUploadStore{})

		body, contentType := multipartBody(t, map[string]string{
			"email": "jane@example.com",
		}, "", "", "")

		req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.SubmitApplication(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("application to a closed job is a 400", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("FindByID", mock.Anything, testClosedJobID).Return(&model.JobPosting{ID: testClosedJobID, IsActive: false}, nil)

		h := newPublicHandler(jobs, new(mockApplicationRepo), &stubUploadStore{})

		body, contentType := multipartBody(t, map[string]string{
			"jobId":    testClosedJobID,
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
		}, "", "", "")

		req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.SubmitApplication(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-multipart body is a 400", func(t *testing.T) {
		h := newPublicHandler(new(mockJobRepo), new(mockApplicationRepo), &stubUploadStore{})

		req := httptest.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(`{"fullName":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.SubmitApplication(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPublicGetJob(t *testing.T) {
	t.Run("inactive job is hidden from the public", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("FindByID", mock.Anything, testOpenJobID).Return(&model.JobPosting{ID: testOpenJobID, IsActive: false}, nil)

		h := newPublicHandler(jobs, new(mockApplicationRepo), &stubUploadStore{})

		router := h.Routes()
		req := httptest.NewRequest(http.MethodGet, "/jobs/"+testOpenJobID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("active job is returned", func(t *testing.T) {
		jobs := new(mockJobRepo)
		jobs.On("FindByID", mock.Anything, testOpenJobID).Return(&model.JobPosting{ID: testOpenJobID, Title: "Site Engineer", IsActive: true}, nil)

		h := newPublicHandler(jobs, new(mockApplicationRepo), &stubUploadStore{})

		router := h.Routes()
		req := httptest.NewRequest(http.MethodGet, "/jobs/"+testOpenJobID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var job model.JobPosting
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&job))
		assert.Equal(t, "Site Engineer", job.Title)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		jobs := new(mockJobRepo)
		h := newPublicHandler(jobs, new(mockApplicationRepo), &stubUploadStore{})

		router := h.Routes()
		req := httptest.NewRequest(http.MethodGet, "/jobs/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		jobs.AssertNotCalled(t, "FindByID")
	})
}
