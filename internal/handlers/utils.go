package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tuyoleni/nust-competion-api/internal/validate"
)

// MessageResponse is the minimal success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a caller-facing message plus the raw underlying
// error for diagnostics when one is attached.
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

// ValidationResponse aggregates every failing field of a request.
type ValidationResponse struct {
	Message string          `json:"message"`
	Errors  validate.Errors `json:"errors"`
}

// InvalidFieldsResponse names payload keys outside an update allow-list.
type InvalidFieldsResponse struct {
	Message       string   `json:"message"`
	InvalidFields []string `json:"invalidFields"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeServerError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: message, Err: err.Error()})
}

func writeValidationErrors(w http.ResponseWriter, errs validate.Errors) {
	writeJSON(w, http.StatusBadRequest, ValidationResponse{Message: "Validation failed", Errors: errs})
}

func writeInvalidFields(w http.ResponseWriter, fields []string) {
	writeJSON(w, http.StatusBadRequest, InvalidFieldsResponse{Message: "Invalid fields provided", InvalidFields: fields})
}

// decodeBody decodes a JSON request body into a sparse field map. An empty
// body decodes to an empty map, not an error.
func decodeBody(r *http.Request) (map[string]any, error) {
	payload := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return payload, nil
}

// queryInput collects the named query parameters that were supplied, shaped
// for the validation pipeline.
func queryInput(r *http.Request, keys ...string) map[string]any {
	input := map[string]any{}
	for _, key := range keys {
		if value := r.URL.Query().Get(key); value != "" {
			input[key] = value
		}
	}
	return input
}

// pathID parses a numeric path parameter.
func pathID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}
