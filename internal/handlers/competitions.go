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

// CompetitionHandler provides HTTP handlers for competitions.
type CompetitionHandler struct {
	competitions *services.CompetitionService
}

func NewCompetitionHandler(competitions *services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitions: competitions}
}

// CompetitionRouter registers competition routes on the given router.
// Mutations are admin-gated; the listing is public.
func CompetitionRouter(r chi.Router, competitions *services.CompetitionService, auth func(http.Handler) http.Handler) {
	handler := NewCompetitionHandler(competitions)

	r.Get("/", handler.List)
	r.With(auth, RequireAdmin).Post("/", handler.Create)
	r.With(auth, RequireAdmin).Patch("/{id}", handler.Update)
	r.With(auth, RequireAdmin).Delete("/{id}", handler.Delete)
}

var competitionCreateRules = []validate.Rule{
	validate.Required("name", validate.NonEmpty, "Competition name is required"),
	validate.Optional("description", validate.String, "Description must be a string"),
	validate.Required("start_date", validate.ISO8601, "Valid start date is required"),
	validate.Required("end_date", validate.ISO8601, "Valid end date is required"),
	validate.Required("status", validate.OneOf(
		types.CompetitionStatusUpcoming,
		types.CompetitionStatusActive,
		types.CompetitionStatusCompleted,
	), "Invalid status"),
	validate.Required("category", validate.OneOf(
		types.CompetitionCategoryHighSchool,
		types.CompetitionCategoryTertiary,
	), "Invalid category"),
}

var competitionUpdateRules = []validate.Rule{
	validate.Optional("name", validate.NonEmpty, "Competition name must be a non-empty string"),
	validate.Optional("description", validate.String, "Description must be a string"),
	validate.Optional("start_date", validate.ISO8601, "Valid start date is required"),
	validate.Optional("end_date", validate.ISO8601, "Valid end date is required"),
	validate.Optional("status", validate.OneOf(
		types.CompetitionStatusUpcoming,
		types.CompetitionStatusActive,
		types.CompetitionStatusCompleted,
	), "Invalid status"),
	validate.Optional("category", validate.OneOf(
		types.CompetitionCategoryHighSchool,
		types.CompetitionCategoryTertiary,
	), "Invalid category"),
}

var competitionPatchSpec = store.PatchSpec{
	Allowed: []string{"name", "description", "start_date", "end_date", "status", "category"},
}

func (h *CompetitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, competitionCreateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	competition, err := h.competitions.Create(r.Context(), types.Competition{
		Name:        values.String("name"),
		Description: values.StringPtr("description"),
		StartDate:   values.Time("start_date"),
		EndDate:     values.Time("end_date"),
		Status:      values.String("status"),
		Category:    values.String("category"),
	})
	if err != nil {
		writeServerError(w, "Failed to create competition", err)
		return
	}

	writeJSON(w, http.StatusCreated, CompetitionCreateResponse{
		Message:       "Competition created successfully",
		CompetitionID: competition.ID,
	})
}

func (h *CompetitionHandler) List(w http.ResponseWriter, r *http.Request) {
	competitions, err := h.competitions.List(r.Context())
	if err != nil {
		writeServerError(w, "Failed to retrieve competitions", err)
		return
	}
	writeJSON(w, http.StatusOK, competitions)
}

func (h *CompetitionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "id", Message: "Competition ID must be a number"}})
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, competitionUpdateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch, err := competitionPatchSpec.Build(payload)
	if err != nil {
		var unknown *store.UnknownFieldsError
		if errors.As(err, &unknown) {
			writeInvalidFields(w, unknown.Fields)
			return
		}
		writeServerError(w, "Failed to update competition", err)
		return
	}
	if patch.Empty() {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Competition updated successfully"})
		return
	}

	if err := h.competitions.Patch(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Competition not found")
			return
		}
		writeServerError(w, "Failed to update competition", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Competition updated successfully"})
}

func (h *CompetitionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "id", Message: "Competition ID must be a number"}})
		return
	}

	if err := h.competitions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Competition not found")
			return
		}
		writeServerError(w, "Failed to delete competition", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Competition deleted successfully"})
}

// CompetitionCreateResponse is the payload returned on successful creation.
type CompetitionCreateResponse struct {
	Message       string `json:"message"`
	CompetitionID int    `json:"competition_id"`
}
