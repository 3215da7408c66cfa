package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tuyoleni/nust-competion-api/internal/services"
	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/internal/validate"
	"github.com/tuyoleni/nust-competion-api/types"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler provides account registration, login, and profile endpoints.
type UserHandler struct {
	users  *services.UserService
	secret []byte
}

// NewUserHandler constructs a UserHandler with the provided dependencies.
func NewUserHandler(users *services.UserService, jwtSecret string) *UserHandler {
	return &UserHandler{users: users, secret: []byte(jwtSecret)}
}

// UserRouter registers user routes on the given router.
func UserRouter(r chi.Router, users *services.UserService, jwtSecret string, auth func(http.Handler) http.Handler) {
	handler := NewUserHandler(users, jwtSecret)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
	r.With(auth).Get("/profile", handler.Profile)
	r.With(auth).Patch("/profile/update", handler.UpdateProfile)
	r.With(auth, RequireAdmin).Get("/list", handler.List)
	r.With(auth, RequireAdmin).Delete("/{id}", handler.Delete)
}

var registerRules = []validate.Rule{
	validate.Required("name", validate.NonEmpty, "Name is required"),
	validate.Required("email", validate.Email, "Valid email is required"),
	validate.Required("password", validate.MinLen(6), "Password must be at least 6 characters long"),
	validate.Optional("phone", validate.NonEmpty, "Phone number is required"),
	validate.Required("type_of_institution", validate.NonEmpty, "Type of institution is required"),
	validate.Optional("affiliation", validate.NonEmpty, "Affiliation is required"),
	validate.Optional("programming_language", validate.NonEmpty, "Preferred programming language is required"),
	validate.Optional("preferred_ide", validate.NonEmpty, "Preferred IDE is required"),
	validate.Optional("mentor_details", validate.NonEmpty, "Mentor details are required"),
	validate.Optional("is_admin", validate.Bool, "is_admin must be a boolean value"),
}

var loginRules = []validate.Rule{
	validate.Required("email", validate.Email, "Valid email is required"),
	validate.Required("password", validate.NonEmpty, "Password is required"),
}

var profileUpdateRules = []validate.Rule{
	validate.Optional("name", validate.String, "Name must be a string"),
	validate.Optional("email", validate.Email, "Valid email is required"),
	validate.Optional("phone", validate.String, "Phone must be a string"),
	validate.Optional("type_of_institution", validate.String, "Type of institution must be a string"),
	validate.Optional("affiliation", validate.String, "Affiliation must be a string"),
	validate.Optional("programming_language", validate.String, "Preferred programming language must be a string"),
	validate.Optional("preferred_ide", validate.String, "Preferred IDE must be a string"),
	validate.Optional("mentor_details", validate.String, "Mentor details must be a string"),
	validate.Optional("is_admin", validate.Bool, "is_admin must be a boolean value"),
}

var userPatchSpec = store.PatchSpec{
	Allowed: []string{
		"name", "email", "phone", "type_of_institution", "affiliation",
		"programming_language", "preferred_ide", "mentor_details", "is_admin",
	},
	Bools: []string{"is_admin"},
}

// Register creates a new user account.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, registerRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	hashed, err := bcrypt.GenerateFromPassword([]byte(values.String("password")), bcrypt.DefaultCost)
	if err != nil {
		writeServerError(w, "User registration failed", err)
		return
	}

	user, err := h.users.Create(r.Context(), types.User{
		Name:                values.String("name"),
		Email:               values.String("email"),
		PasswordHash:        string(hashed),
		Phone:               values.StringPtr("phone"),
		TypeOfInstitution:   values.String("type_of_institution"),
		Affiliation:         values.StringPtr("affiliation"),
		ProgrammingLanguage: values.StringPtr("programming_language"),
		PreferredIDE:        values.StringPtr("preferred_ide"),
		MentorDetails:       values.StringPtr("mentor_details"),
		IsAdmin:             values.Bool("is_admin"),
	})
	if err != nil {
		writeServerError(w, "User registration failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// Login verifies credentials and returns a signed token carrying the
// subject id and admin flag.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, loginRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	user, err := h.users.GetByEmail(r.Context(), values.String("email"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeServerError(w, "Login failed", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(values.String("password"))); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := issueToken(user.ID, user.IsAdmin, h.secret, tokenTTL)
	if err != nil {
		writeServerError(w, "Login failed", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:   token,
		UserID:  user.ID,
		Message: "Login successful",
	})
}

// Profile returns the authenticated caller's account.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - Token Required")
		return
	}

	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeServerError(w, "Failed to retrieve profile", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile applies a sparse allow-listed update to the caller's account.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - Token Required")
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, profileUpdateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch, err := userPatchSpec.Build(payload)
	if err != nil {
		var unknown *store.UnknownFieldsError
		if errors.As(err, &unknown) {
			writeInvalidFields(w, unknown.Fields)
			return
		}
		writeServerError(w, "Failed to update profile", err)
		return
	}
	if patch.Empty() {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile updated successfully."})
		return
	}

	if err := h.users.Patch(r.Context(), claims.UserID, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeServerError(w, "Failed to update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile updated successfully."})
}

// List returns every user account. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeServerError(w, "Failed to retrieve users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Delete removes a user account by id. Admin only.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "id", Message: "User ID must be a number"}})
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeServerError(w, "Failed to delete user", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully."})
}

// RegisterResponse is the payload returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  int    `json:"user_id"`
	Message string `json:"message"`
}
