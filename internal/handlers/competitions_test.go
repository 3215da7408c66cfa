package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuyoleni/nust-competion-api/internal/services"
	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/types"
)

type fakeCompetitionRepo struct {
	nextID       int
	competitions map[int]types.Competition
}

func newFakeCompetitionRepo() *fakeCompetitionRepo {
	return &fakeCompetitionRepo{nextID: 1, competitions: map[int]types.Competition{}}
}

func (f *fakeCompetitionRepo) List(_ context.Context) ([]types.Competition, error) {
	result := make([]types.Competition, 0, len(f.competitions))
	for _, competition := range f.competitions {
		result = append(result, competition)
	}
	return result, nil
}

func (f *fakeCompetitionRepo) Create(_ context.Context, competition types.Competition) (types.Competition, error) {
	competition.ID = f.nextID
	f.nextID++
	f.competitions[competition.ID] = competition
	return competition, nil
}

func (f *fakeCompetitionRepo) Patch(_ context.Context, id int, _ store.Patch) error {
	if _, ok := f.competitions[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

func (f *fakeCompetitionRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.competitions[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.competitions, id)
	return nil
}

func newCompetitionRouter(repo *fakeCompetitionRepo) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/v1/competitions", func(r chi.Router) {
		CompetitionRouter(r, services.NewCompetitionService(repo), RequireAuth(testSecret))
	})
	return router
}

func TestListCompetitionsIsPublic(t *testing.T) {
	handler := newCompetitionRouter(newFakeCompetitionRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/competitions/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCompetitionRequiresAdmin(t *testing.T) {
	handler := newCompetitionRouter(newFakeCompetitionRepo())
	body := map[string]any{
		"name":       "Annual Coding Challenge",
		"start_date": "2026-09-01",
		"end_date":   "2026-09-02",
		"status":     "upcoming",
		"category":   "tertiary",
	}

	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/competitions/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/competitions/", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+authToken(t, 7, false))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCompetition(t *testing.T) {
	repo := newFakeCompetitionRepo()
	handler := newCompetitionRouter(repo)

	payload, _ := json.Marshal(map[string]any{
		"name":        "Annual Coding Challenge",
		"description": "Regional qualifier",
		"start_date":  "2026-09-01",
		"end_date":    "2026-09-02",
		"status":      "upcoming",
		"category":    "high_school",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/competitions/", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CompetitionCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Competition created successfully", resp.Message)
	assert.Equal(t, 1, resp.CompetitionID)

	stored := repo.competitions[1]
	assert.Equal(t, types.CompetitionStatusUpcoming, stored.Status)
	assert.Equal(t, types.CompetitionCategoryHighSchool, stored.Category)
	assert.Equal(t, 2026, stored.StartDate.Year())
}

func TestCreateCompetitionRejectsBadEnums(t *testing.T) {
	handler := newCompetitionRouter(newFakeCompetitionRepo())

	payload, _ := json.Marshal(map[string]any{
		"name":       "Annual Coding Challenge",
		"start_date": "soon",
		"end_date":   "2026-09-02",
		"status":     "running",
		"category":   "primary",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/competitions/", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, len(resp.Errors))
	for i, fe := range resp.Errors {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"start_date", "status", "category"}, fields)
}

func TestUpdateCompetitionNotFound(t *testing.T) {
	handler := newCompetitionRouter(newFakeCompetitionRepo())

	payload, _ := json.Marshal(map[string]any{"status": "completed"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/competitions/5", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Competition not found")
}

func TestDeleteCompetition(t *testing.T) {
	repo := newFakeCompetitionRepo()
	repo.competitions[2] = types.Competition{ID: 2}
	handler := newCompetitionRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/competitions/2", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Competition deleted successfully")
	assert.Empty(t, repo.competitions)
}
