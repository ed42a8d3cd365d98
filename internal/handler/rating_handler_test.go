package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"UserRatingApp/internal/models"
	"UserRatingApp/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := storage.NewStore(filepath.Join(t.TempDir(), "user_ratings.csv"))
	Init(s)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/ratings", SubmitRating)
		api.GET("/ratings", ListRatings)
		api.GET("/ratings/names", ListNames)
		api.GET("/ratings/series", GetSeries)
		api.GET("/ratings/stats", GetStats)
		api.GET("/export", ExportCSV)
	}
	return router, s
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seed(t *testing.T, router *gin.Engine) {
	t.Helper()
	for _, body := range []SubmitRequest{
		{Name: "A", Date: "2026-08-01", Scale: 5},
		{Name: "A", Date: "2026-08-02", Scale: 9, Note: "best day"},
		{Name: "B", Date: "2026-08-01", Scale: 3},
	} {
		w := postJSON(router, "/api/ratings", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
}

func TestSubmitRating_emptyNameRejected(t *testing.T) {
	router, s := newTestRouter(t)

	w := postJSON(router, "/api/ratings", SubmitRequest{Name: "   ", Date: "2026-08-01", Scale: 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter your name.")

	// 저장소까지 도달하지 않아야 함
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "no file should be written")
}

func TestSubmitRating_invalidScaleRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, scale := range []int{0, 11, -3} {
		w := postJSON(router, "/api/ratings", SubmitRequest{Name: "A", Date: "2026-08-01", Scale: scale})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSubmitRating_invalidDateRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(router, "/api/ratings", SubmitRequest{Name: "A", Date: "01/08/2026", Scale: 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestSubmitRating_persistsRecord(t *testing.T) {
	router, s := newTestRouter(t)

	w := postJSON(router, "/api/ratings", SubmitRequest{Name: " gildong ", Date: "2026-08-30", Scale: 7, Note: "note"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Your rating has been recorded successfully!", resp.Message)
	assert.Equal(t, 1, resp.Total)

	table, err := s.Load()
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "gildong", table[0].Name, "name should be trimmed")
	assert.Equal(t, "2026-08-30", table[0].Date.Format(models.DateLayout))
	assert.Equal(t, 7, table[0].Scale)
	assert.Equal(t, "note", table[0].Note)
}

func TestSubmitRating_dateDefaultsToToday(t *testing.T) {
	router, s := newTestRouter(t)

	w := postJSON(router, "/api/ratings", SubmitRequest{Name: "A", Scale: 5})
	require.Equal(t, http.StatusOK, w.Code)

	table, err := s.Load()
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, time.Now().Format(models.DateLayout), table[0].Date.Format(models.DateLayout))
}

func TestListRatings_filterByNames(t *testing.T) {
	router, _ := newTestRouter(t)
	seed(t, router)

	w := get(router, "/api/ratings?names=A")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RatingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ratings, 2)
	assert.Equal(t, 5, resp.Ratings[0].Scale)
	assert.Equal(t, 9, resp.Ratings[1].Scale)
	assert.False(t, resp.Empty)
}

func TestListNames_firstAppearanceOrder(t *testing.T) {
	router, _ := newTestRouter(t)
	seed(t, router)

	w := get(router, "/api/ratings/names")
	require.Equal(t, http.StatusOK, w.Code)

	var resp NamesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"A", "B"}, resp.Names)
}

func TestGetStats_meanAndMax(t *testing.T) {
	router, _ := newTestRouter(t)
	seed(t, router)

	w := get(router, "/api/ratings/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]float64{"A": 7.0, "B": 3.0}, resp.Mean)
	assert.Equal(t, map[string]int{"A": 9, "B": 3}, resp.Max)
	assert.False(t, resp.Empty)
}

func TestGetSeries_sortedAndFiltered(t *testing.T) {
	router, _ := newTestRouter(t)
	seed(t, router)

	w := get(router, "/api/ratings/series?names=A")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SeriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Series, 1)
	points := resp.Series["A"]
	require.Len(t, points, 2)
	assert.True(t, points[0].Date.Before(points[1].Date))
}

func TestDashboardEndpoints_emptyState(t *testing.T) {
	router, _ := newTestRouter(t)

	var stats StatsResponse
	w := get(router, "/api/ratings/stats")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.True(t, stats.Empty)

	var series SeriesResponse
	w = get(router, "/api/ratings/series")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.True(t, series.Empty)
}

func TestExportCSV_roundTripsThroughLoad(t *testing.T) {
	router, s := newTestRouter(t)
	seed(t, router)

	w := get(router, "/api/export")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "user_ratings.csv")

	onDisk, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, onDisk, w.Body.Bytes(), "export must match the persisted table exactly")
	assert.Contains(t, w.Body.String(), "Name,Date,Scale,Note")
}
