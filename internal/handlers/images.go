package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tuyoleni/nust-competion-api/internal/services"
)

// maxUploadBytes caps multipart form memory and the accepted file size.
const maxUploadBytes = 32 << 20

// ImageHandler accepts multipart image uploads and hands them to object
// storage.
type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// ImageRouter registers image routes on the given router.
func ImageRouter(r chi.Router, images *services.ImageService) {
	handler := NewImageHandler(images)

	r.Post("/upload", handler.Upload)
}

func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	uploaderID, err := strconv.Atoi(r.FormValue("uploader_id"))
	if err != nil || uploaderID < 1 {
		writeError(w, http.StatusBadRequest, "Uploader ID must be a number")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeServerError(w, "Image upload failed", err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	image, err := h.images.Upload(r.Context(), header.Filename, contentType, data, uploaderID)
	if err != nil {
		writeServerError(w, "Image upload failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, ImageUploadResponse{
		Message:  "Image uploaded successfully",
		ImageURL: image.URL,
	})
}

// ImageUploadResponse is the payload returned on successful upload.
type ImageUploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}
