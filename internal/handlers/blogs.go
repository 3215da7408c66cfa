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

// BlogHandler provides blog endpoints.
type BlogHandler struct {
	blogs *services.BlogService
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

// BlogRouter registers blog routes on the given router.
func BlogRouter(r chi.Router, blogs *services.BlogService) {
	handler := NewBlogHandler(blogs)

	r.Post("/blogs/create", handler.Create)
	r.Get("/blogs", handler.List)
	r.Get("/blogs/{blogId}", handler.Get)
	r.Patch("/blogs/{blogId}/update", handler.Update)
	r.Delete("/blogs/{blogId}", handler.Delete)
}

var blogCreateRules = []validate.Rule{
	validate.Required("title", validate.NonEmpty, "Title is required"),
	validate.Required("content", validate.NonEmpty, "Content is required"),
	validate.Required("author_id", validate.Numeric, "Author ID must be a number"),
	validate.Optional("image_id", validate.Numeric, "Image ID must be a number"),
}

var blogUpdateRules = []validate.Rule{
	validate.Optional("title", validate.NonEmpty, "Title must be a non-empty string"),
	validate.Optional("content", validate.NonEmpty, "Content must be a non-empty string"),
	validate.Optional("image_id", validate.Numeric, "Image ID must be a number"),
}

var blogPatchSpec = store.PatchSpec{
	Allowed: []string{"title", "content", "image_id"},
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, blogCreateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	blog, err := h.blogs.Create(r.Context(), types.Blog{
		Title:    values.String("title"),
		Content:  values.String("content"),
		AuthorID: values.Int("author_id"),
		ImageID:  values.IntPtr("image_id"),
	})
	if err != nil {
		writeServerError(w, "Failed to create blog", err)
		return
	}

	writeJSON(w, http.StatusCreated, BlogCreateResponse{
		Message: "Blog created successfully.",
		BlogID:  blog.ID,
	})
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.List(r.Context())
	if err != nil {
		writeServerError(w, "Failed to retrieve blogs", err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// Get returns a blog with its image URL and comments.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "blogId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "blogId", Message: "Blog ID must be a number"}})
		return
	}

	blog, comments, err := h.blogs.GetWithComments(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeServerError(w, "Failed to retrieve blog", err)
		return
	}

	writeJSON(w, http.StatusOK, BlogDetailResponse{Blog: blog, Comments: comments})
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "blogId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "blogId", Message: "Blog ID must be a number"}})
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, blogUpdateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch, err := blogPatchSpec.Build(payload)
	if err != nil {
		var unknown *store.UnknownFieldsError
		if errors.As(err, &unknown) {
			writeInvalidFields(w, unknown.Fields)
			return
		}
		writeServerError(w, "Failed to update blog", err)
		return
	}
	if patch.Empty() {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Blog updated successfully."})
		return
	}

	if err := h.blogs.Patch(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeServerError(w, "Failed to update blog", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Blog updated successfully."})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "blogId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "blogId", Message: "Blog ID must be a number"}})
		return
	}

	if err := h.blogs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Blog not found")
			return
		}
		writeServerError(w, "Failed to delete blog", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Blog deleted successfully."})
}

// BlogCreateResponse is the payload returned on successful creation.
type BlogCreateResponse struct {
	Message string `json:"message"`
	BlogID  int    `json:"blog_id"`
}

// BlogDetailResponse pairs a blog with its comments.
type BlogDetailResponse struct {
	Blog     types.Blog      `json:"blog"`
	Comments []types.Comment `json:"comments"`
}
