package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotBody struct {
	ID      string                   `json:"id"`
	Status  string                   `json:"status"`
	Loading bool                     `json:"loading"`
	Courses []map[string]interface{} `json:"courses"`
	Empty   bool                     `json:"empty"`
	Version uint64                   `json:"version"`
}

func (s *testServer) waitPublished(t *testing.T, token, id string, after uint64) snapshotBody {
	t.Helper()

	var snap snapshotBody
	require.Eventually(t, func() bool {
		w := s.do(http.MethodGet, "/api/v1/listings/"+id, nil, token)
		if w.Code != http.StatusOK {
			return false
		}
		snap = decode[snapshotBody](t, w)
		return snap.Status == "published" && snap.Version > after
	}, 2*time.Second, 10*time.Millisecond)
	return snap
}

// waitCourses polls until a publish shows exactly want. Separate edits may
// publish intermediate results when they straddle the quiet period.
func (s *testServer) waitCourses(t *testing.T, token, id string, want []string) snapshotBody {
	t.Helper()

	var snap snapshotBody
	require.Eventually(t, func() bool {
		snap = decode[snapshotBody](t, s.do(http.MethodGet, "/api/v1/listings/"+id, nil, token))
		return snap.Status == "published" && assert.ObjectsAreEqual(want, courseIDs(snap.Courses))
	}, 2*time.Second, 10*time.Millisecond)
	return snap
}

func TestListingLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "john.doe@example.com")

	w := s.do(http.MethodPost, "/api/v1/listings", nil, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[snapshotBody](t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.True(t, created.Loading)

	snap := s.waitPublished(t, token, created.ID, 0)
	assert.Len(t, snap.Courses, 10)

	w = s.do(http.MethodPatch, "/api/v1/listings/"+created.ID, map[string]interface{}{
		"category": "data-science",
		"levels":   []string{"Beginner"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pending := decode[snapshotBody](t, w)
	assert.Equal(t, "pending", pending.Status)
	assert.Len(t, pending.Courses, 10, "courses stay until the next publish")

	snap = s.waitPublished(t, token, created.ID, snap.Version)
	assert.Equal(t, []string{"7"}, courseIDs(snap.Courses))

	w = s.do(http.MethodPost, "/api/v1/listings/"+created.ID+"/clear", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	snap = s.waitPublished(t, token, created.ID, snap.Version)
	assert.Len(t, snap.Courses, 10)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/listings/"+created.ID, nil, token).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/listings/"+created.ID, nil, token).Code)
}

func TestListingFilters(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "john.doe@example.com")

	w := s.do(http.MethodPost, "/api/v1/listings", map[string]interface{}{"query": "zzzz-nothing"}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[snapshotBody](t, w).ID

	snap := s.waitPublished(t, token, id, 0)
	assert.True(t, snap.Empty)

	base := "/api/v1/listings/" + id
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, base+"/query", map[string]string{"query": ""}, token).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, base+"/levels/toggle", map[string]string{"value": "Intermediate"}, token).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, base+"/price", map[string]float64{"min_price": 45, "max_price": 50}, token).Code)

	snap = s.waitCourses(t, token, id, []string{"4"})
	assert.False(t, snap.Empty)

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, base+"/categories/toggle", map[string]string{"value": "design"}, token).Code)
	snap = s.waitCourses(t, token, id, []string{})
	assert.True(t, snap.Empty)
}

func TestListingErrors(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "john.doe@example.com")

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/listings", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/listings/missing", nil, token).Code)

	w := s.do(http.MethodPost, "/api/v1/listings", nil, token)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/listings/" + decode[snapshotBody](t, w).ID

	w = s.do(http.MethodPut, base+"/price", map[string]float64{"min_price": 80, "max_price": 10}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid price range", decode[ErrorResponse](t, w).Message)

	w = s.do(http.MethodPut, base+"/price", map[string]float64{"min_price": -5, "max_price": 10}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"min_price"}, decode[validationBody](t, w).fields())

	w = s.do(http.MethodPost, base+"/levels/toggle", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, level := range []string{" ", "Expert"} {
		w = s.do(http.MethodPost, base+"/levels/toggle", map[string]string{"value": level}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, level)
		assert.Equal(t, []string{"value"}, decode[validationBody](t, w).fields())
	}

	w = s.do(http.MethodPatch, base, map[string]interface{}{"levels": []string{"Expert"}}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	other := s.login(t, "sarah.williams@example.com")
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, base, nil, other).Code, "listings are private to their session")
}
