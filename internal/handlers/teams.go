package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tuyoleni/nust-competion-api/internal/services"
	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/internal/validate"
	"github.com/tuyoleni/nust-competion-api/types"
)

// TeamHandler provides team and competition-registration endpoints.
type TeamHandler struct {
	teams         *services.TeamService
	registrations *services.RegistrationService
}

func NewTeamHandler(teams *services.TeamService, registrations *services.RegistrationService) *TeamHandler {
	return &TeamHandler{teams: teams, registrations: registrations}
}

// TeamRouter registers team and registration routes on the given router.
// Inner paths are inherited from the original API surface.
func TeamRouter(r chi.Router, teams *services.TeamService, registrations *services.RegistrationService, auth func(http.Handler) http.Handler) {
	handler := NewTeamHandler(teams, registrations)

	r.Post("/create", handler.Create)
	r.Get("/teams/details", handler.Details)
	r.Patch("/teams/{teamId}/update", handler.Update)
	r.Post("/registrations/register", handler.Register)
	r.With(auth, RequireAdmin).Delete("/registrations/{registrationId}/deregister", handler.Deregister)
	r.With(auth, RequireAdmin).Patch("/registrations/{registrationId}/status", handler.UpdateStatus)
}

var teamCreateRules = []validate.Rule{
	validate.Required("team_name", validate.NonEmpty, "Team name is required"),
	validate.Required("leader_id", validate.Numeric, "Leader ID must be a number"),
	validate.Required("school_name", validate.NonEmpty, "School name is required"),
}

var teamDetailsRules = []validate.Rule{
	validate.Optional("teamId", validate.Numeric, "Team ID must be a number"),
	validate.Optional("school_name", validate.String, "School name must be a string"),
}

var teamUpdateRules = []validate.Rule{
	validate.Optional("team_name", validate.NonEmpty, "Team name must be a non-empty string"),
	validate.Optional("school_name", validate.NonEmpty, "School name must be a non-empty string"),
}

var teamPatchSpec = store.PatchSpec{
	Allowed: []string{"team_name", "school_name"},
}

var registrationCreateRules = []validate.Rule{
	validate.Required("competition_id", validate.Numeric, "Competition ID must be a number"),
	validate.Required("user_id", validate.Numeric, "User ID must be a number"),
	validate.Required("team_id", validate.Numeric, "Team ID must be a number"),
}

var registrationStatusRules = []validate.Rule{
	validate.Required("status", validate.OneOf(
		types.RegistrationStatusPending,
		types.RegistrationStatusApproved,
		types.RegistrationStatusWithdrawn,
	), "Status must be either pending, approved, or withdrawn"),
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, teamCreateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	team, err := h.teams.Create(r.Context(), types.Team{
		TeamName:   values.String("team_name"),
		LeaderID:   values.Int("leader_id"),
		SchoolName: values.String("school_name"),
	})
	if err != nil {
		writeServerError(w, "Failed to create team", err)
		return
	}

	writeJSON(w, http.StatusCreated, TeamCreateResponse{
		Message: "Team created successfully.",
		TeamID:  team.ID,
	})
}

// Details returns teams filtered by id or school name. The id filter wins
// when both are supplied.
func (h *TeamHandler) Details(w http.ResponseWriter, r *http.Request) {
	input := queryInput(r, "teamId", "school_name")
	if errs := validate.Apply(input, teamDetailsRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(input)

	teams, err := h.teams.Find(r.Context(), values.IntPtr("teamId"), values.String("school_name"))
	if err != nil {
		writeServerError(w, "Failed to retrieve team details", err)
		return
	}
	if len(teams) == 0 {
		writeError(w, http.StatusNotFound, "No teams found")
		return
	}

	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "teamId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "teamId", Message: "Team ID must be a number"}})
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, teamUpdateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch, err := teamPatchSpec.Build(payload)
	if err != nil {
		var unknown *store.UnknownFieldsError
		if errors.As(err, &unknown) {
			writeInvalidFields(w, unknown.Fields)
			return
		}
		writeServerError(w, "Failed to update team", err)
		return
	}
	if patch.Empty() {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Team updated successfully."})
		return
	}

	if err := h.teams.Patch(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Team not found")
			return
		}
		writeServerError(w, "Failed to update team", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Team updated successfully."})
}

func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, registrationCreateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	registration, err := h.registrations.Create(r.Context(), types.Registration{
		CompetitionID: values.Int("competition_id"),
		UserID:        values.Int("user_id"),
		TeamID:        values.Int("team_id"),
	})
	if err != nil {
		writeServerError(w, "Failed to register", err)
		return
	}

	writeJSON(w, http.StatusCreated, RegistrationCreateResponse{
		Message:        "Registration successful.",
		RegistrationID: registration.ID,
	})
}

func (h *TeamHandler) Deregister(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "registrationId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "registrationId", Message: "Registration ID must be a number"}})
		return
	}

	if err := h.registrations.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Registration not found")
			return
		}
		writeServerError(w, "Failed to deregister", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Deregistration successful."})
}

func (h *TeamHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "registrationId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "registrationId", Message: "Registration ID must be a number"}})
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, registrationStatusRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	if err := h.registrations.UpdateStatus(r.Context(), id, values.String("status")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Registration not found")
			return
		}
		writeServerError(w, "Failed to update registration status", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Registration status updated successfully."})
}

// TeamCreateResponse is the payload returned on successful team creation.
type TeamCreateResponse struct {
	Message string `json:"message"`
	TeamID  int    `json:"team_id"`
}

// RegistrationCreateResponse is the payload returned on successful registration.
type RegistrationCreateResponse struct {
	Message        string `json:"message"`
	RegistrationID int    `json:"registration_id"`
}
