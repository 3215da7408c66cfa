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

// CommentHandler provides blog comment endpoints.
type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentRouter registers comment routes on the given router.
func CommentRouter(r chi.Router, comments *services.CommentService) {
	handler := NewCommentHandler(comments)

	r.Post("/comments/create", handler.Create)
	r.Get("/comments", handler.ListByBlog)
	r.Get("/comments/{commentId}", handler.Get)
	r.Patch("/comments/{commentId}/update", handler.Update)
	r.Delete("/comments/{commentId}", handler.Delete)
}

var commentCreateRules = []validate.Rule{
	validate.Required("blog_id", validate.Numeric, "Blog ID must be a number"),
	validate.Required("user_id", validate.Numeric, "User ID must be a number"),
	validate.Required("content", validate.NonEmpty, "Content is required"),
	validate.Optional("image_id", validate.Numeric, "Image ID must be a number"),
}

var commentListRules = []validate.Rule{
	validate.Required("blog_id", validate.Numeric, "Blog ID must be a number"),
}

var commentUpdateRules = []validate.Rule{
	validate.Optional("content", validate.NonEmpty, "Content must be a non-empty string"),
	validate.Optional("image_id", validate.Numeric, "Image ID must be a number"),
}

var commentPatchSpec = store.PatchSpec{
	Allowed: []string{"content", "image_id"},
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, commentCreateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	comment, err := h.comments.Create(r.Context(), types.Comment{
		BlogID:  values.Int("blog_id"),
		UserID:  values.Int("user_id"),
		Content: values.String("content"),
		ImageID: values.IntPtr("image_id"),
	})
	if err != nil {
		writeServerError(w, "Failed to create comment", err)
		return
	}

	writeJSON(w, http.StatusCreated, CommentCreateResponse{
		Message:   "Comment created successfully.",
		CommentID: comment.ID,
	})
}

// ListByBlog returns every comment of a blog. Zero comments is an empty
// list, not an error.
func (h *CommentHandler) ListByBlog(w http.ResponseWriter, r *http.Request) {
	input := queryInput(r, "blog_id")
	if errs := validate.Apply(input, commentListRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(input)

	comments, err := h.comments.ListByBlog(r.Context(), values.Int("blog_id"))
	if err != nil {
		writeServerError(w, "Failed to retrieve comments", err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "commentId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "commentId", Message: "Comment ID must be a number"}})
		return
	}

	comment, err := h.comments.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comment not found")
			return
		}
		writeServerError(w, "Failed to retrieve comment", err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "commentId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "commentId", Message: "Comment ID must be a number"}})
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, commentUpdateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch, err := commentPatchSpec.Build(payload)
	if err != nil {
		var unknown *store.UnknownFieldsError
		if errors.As(err, &unknown) {
			writeInvalidFields(w, unknown.Fields)
			return
		}
		writeServerError(w, "Failed to update comment", err)
		return
	}
	if patch.Empty() {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment updated successfully."})
		return
	}

	if err := h.comments.Patch(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comment not found")
			return
		}
		writeServerError(w, "Failed to update comment", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment updated successfully."})
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "commentId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "commentId", Message: "Comment ID must be a number"}})
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Comment not found")
			return
		}
		writeServerError(w, "Failed to delete comment", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment deleted successfully."})
}

// CommentCreateResponse is the payload returned on successful creation.
type CommentCreateResponse struct {
	Message   string `json:"message"`
	CommentID int    `json:"comment_id"`
}
