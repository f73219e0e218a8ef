package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSPAHandler(t *testing.T) {
	tmpDir := t.TempDir()

	indexContent := "<!DOCTYPE html><html><body>Index</body></html>"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte(indexContent), 0644))

	cssContent := "body { color: black; }"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "styles.css"), []byte(cssContent), 0644))

	handler := NewSPAHandler(tmpDir)

	t.Run("serves index.html for root path", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Index")
	})

	t.Run("serves static files", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/styles.css", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "color: black")
	})

	t.Run("falls back to index.html for client-side routes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/some-slug", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Index")
	})

	t.Run("returns 404 for api paths", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/services", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("path traversal cannot escape the static dir", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/../../etc/passwd", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		// Either the index fallback or a 404, never the file outside.
		assert.NotContains(t, rec.Body.String(), "root:")
	})
}

func TestSPAHandlerNoIndexFile(t *testing.T) {
	handler := NewSPAHandler(t.TempDir())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticFileServer(t *testing.T) {
	handler := StaticFileServer("/tmp/static")
	assert.NotNil(t, handler)
	_, ok := handler.(*SPAHandler)
	assert.True(t, ok)
}
