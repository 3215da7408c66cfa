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

type fakeTeamRepo struct {
	nextID int
	teams  map[int]types.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{nextID: 1, teams: map[int]types.Team{}}
}

func (f *fakeTeamRepo) Create(_ context.Context, team types.Team) (types.Team, error) {
	team.ID = f.nextID
	f.nextID++
	f.teams[team.ID] = team
	return team, nil
}

func (f *fakeTeamRepo) Find(_ context.Context, teamID *int, schoolName string) ([]types.Team, error) {
	if teamID != nil {
		if team, ok := f.teams[*teamID]; ok {
			return []types.Team{team}, nil
		}
		return nil, nil
	}
	var result []types.Team
	for _, team := range f.teams {
		if schoolName == "" || team.SchoolName == schoolName {
			result = append(result, team)
		}
	}
	return result, nil
}

func (f *fakeTeamRepo) Patch(_ context.Context, id int, _ store.Patch) error {
	if _, ok := f.teams[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

type fakeRegistrationRepo struct {
	nextID        int
	registrations map[int]types.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{nextID: 1, registrations: map[int]types.Registration{}}
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration types.Registration) (types.Registration, error) {
	registration.ID = f.nextID
	registration.Status = types.RegistrationStatusPending
	f.nextID++
	f.registrations[registration.ID] = registration
	return registration, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, id int, status string) error {
	registration, ok := f.registrations[id]
	if !ok {
		return store.ErrNotFound
	}
	registration.Status = status
	f.registrations[id] = registration
	return nil
}

func (f *fakeRegistrationRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.registrations[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.registrations, id)
	return nil
}

func newTeamRouter(teams *fakeTeamRepo, registrations *fakeRegistrationRepo) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/v1/teams", func(r chi.Router) {
		TeamRouter(r, services.NewTeamService(teams), services.NewRegistrationService(registrations), RequireAuth(testSecret))
	})
	return router
}

func TestCreateTeam(t *testing.T) {
	teams := newFakeTeamRepo()
	handler := newTeamRouter(teams, newFakeRegistrationRepo())

	rec := postJSON(t, handler, "/api/v1/teams/create", map[string]any{
		"team_name":   "Bit Shifters",
		"leader_id":   4,
		"school_name": "Windhoek High",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TeamCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Team created successfully.", resp.Message)
	assert.Equal(t, 1, resp.TeamID)
	assert.Equal(t, "Bit Shifters", teams.teams[1].TeamName)
}

func TestTeamDetailsByID(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.teams[3] = types.Team{ID: 3, TeamName: "Bit Shifters", SchoolName: "Windhoek High"}
	handler := newTeamRouter(teams, newFakeRegistrationRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/teams/details?teamId=3", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"team_name":"Bit Shifters"`)
}

func TestTeamDetailsNoMatches(t *testing.T) {
	handler := newTeamRouter(newFakeTeamRepo(), newFakeRegistrationRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/teams/details?school_name=Nowhere", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No teams found")
}

func TestUpdateTeamRejectsUnknownFields(t *testing.T) {
	teams := newFakeTeamRepo()
	teams.teams[1] = types.Team{ID: 1}
	handler := newTeamRouter(teams, newFakeRegistrationRepo())

	payload, _ := json.Marshal(map[string]any{"leader_id": 9})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/teams/teams/1/update", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invalidFields":["leader_id"]`)
}

func TestRegisterForCompetition(t *testing.T) {
	registrations := newFakeRegistrationRepo()
	handler := newTeamRouter(newFakeTeamRepo(), registrations)

	rec := postJSON(t, handler, "/api/v1/teams/registrations/register", map[string]any{
		"competition_id": 2,
		"user_id":        4,
		"team_id":        1,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp RegistrationCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Registration successful.", resp.Message)
	assert.Equal(t, types.RegistrationStatusPending, registrations.registrations[1].Status)
}

func TestUpdateRegistrationStatus(t *testing.T) {
	registrations := newFakeRegistrationRepo()
	registrations.registrations[1] = types.Registration{ID: 1, Status: types.RegistrationStatusPending}
	handler := newTeamRouter(newFakeTeamRepo(), registrations)

	payload, _ := json.Marshal(map[string]any{"status": "approved"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/teams/registrations/1/status", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration status updated successfully.")
	assert.Equal(t, types.RegistrationStatusApproved, registrations.registrations[1].Status)
}

func TestUpdateRegistrationStatusRejectsUnknownValue(t *testing.T) {
	registrations := newFakeRegistrationRepo()
	registrations.registrations[1] = types.Registration{ID: 1}
	handler := newTeamRouter(newFakeTeamRepo(), registrations)

	payload, _ := json.Marshal(map[string]any{"status": "rejected"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/teams/registrations/1/status", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status must be either pending, approved, or withdrawn")
}

func TestDeregisterRequiresAdmin(t *testing.T) {
	registrations := newFakeRegistrationRepo()
	registrations.registrations[1] = types.Registration{ID: 1}
	handler := newTeamRouter(newFakeTeamRepo(), registrations)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/teams/registrations/1/deregister", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, 4, false))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/teams/registrations/1/deregister", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, 1, true))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deregistration successful.")
	assert.Empty(t, registrations.registrations)
}
