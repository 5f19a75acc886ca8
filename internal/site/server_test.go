package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()

	dir := filepath.Join(root, "place")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	unit := "---\ntitle: \"Principle 6: Rethink Place\"\norder: 6\n---\n\nPlace is where mission becomes concrete and local.\n\n- **Neighborhoods are mission fields** for everyday life.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "overview.md"), []byte(unit), 0o644))

	srv, err := NewServer(content.NewStore(root))
	require.NoError(t, err)
	return srv, root
}

func TestHomeListsPrinciples(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Principle 6: Rethink Place")
	assert.Contains(t, rec.Body.String(), "/principles/place")
}

func TestPrinciplePageRendersMarkdown(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/principles/place", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Principle 6: Rethink Place</h1>")
	assert.Contains(t, body, "Place is where mission becomes concrete")
	assert.Contains(t, body, "Neighborhoods are mission fields")
}

func TestUnknownSlugRendersNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/principles/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Content not yet available")
}

func TestAbsentContentRootServesEmptyHome(t *testing.T) {
	srv, err := NewServer(content.NewStore(filepath.Join(t.TempDir(), "absent")))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No content has been published yet")
}

func TestAPIListAndGet(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/principles", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "place", list[0]["slug"])

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/principles/place", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Principle 6: Rethink Place", got["title"])
	assert.Contains(t, got["content"], "mission becomes concrete")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/principles/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCacheInvalidatedOnContentChange(t *testing.T) {
	srv, root := newTestServer(t)

	// Prime the cache.
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Contains(t, rec.Body.String(), "Rethink Place")

	dir := filepath.Join(root, "vocation")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	unit := "---\ntitle: \"Principle 7: Rethink Vocation\"\norder: 7\n---\n\nVocation body text for testing.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "overview.md"), []byte(unit), 0o644))

	// Without the watcher the cache still holds the old listing.
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, rec.Body.String(), "Rethink Vocation")

	srv.invalidate()

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "Rethink Vocation")
}
