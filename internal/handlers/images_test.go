package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuyoleni/nust-competion-api/internal/services"
	"github.com/tuyoleni/nust-competion-api/types"
)

type fakeImageRepo struct {
	created []types.Image
}

func (f *fakeImageRepo) Create(_ context.Context, image types.Image) (types.Image, error) {
	image.ID = len(f.created) + 1
	f.created = append(f.created, image)
	return image, nil
}

type fakeObjectStore struct {
	objects map[string][]byte
}

func (f *fakeObjectStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStore) URL(key string) string {
	return "https://objects.example.com/bucket/" + key
}

func newImageRouter(repo *fakeImageRepo, objects *fakeObjectStore) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/v1/images", func(r chi.Router) {
		ImageRouter(r, services.NewImageService(repo, objects))
	})
	return router
}

func multipartUpload(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	repo := &fakeImageRepo{}
	objects := &fakeObjectStore{objects: map[string][]byte{}}
	handler := newImageRouter(repo, objects)

	body, contentType := multipartUpload(t, map[string]string{"uploader_id": "4"}, "image", "logo.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image uploaded successfully")
	assert.Contains(t, rec.Body.String(), `"imageUrl":"https://objects.example.com/bucket/`)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 4, repo.created[0].UploaderID)
	assert.Len(t, objects.objects, 1)
}

func TestUploadImageWithoutFile(t *testing.T) {
	handler := newImageRouter(&fakeImageRepo{}, &fakeObjectStore{objects: map[string][]byte{}})

	body, contentType := multipartUpload(t, map[string]string{"uploader_id": "4"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded.")
}

func TestUploadImageRequiresUploaderID(t *testing.T) {
	handler := newImageRouter(&fakeImageRepo{}, &fakeObjectStore{objects: map[string][]byte{}})

	body, contentType := multipartUpload(t, nil, "image", "logo.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Uploader ID must be a number")
}
