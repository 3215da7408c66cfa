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

type fakeCommentRepo struct {
	nextID   int
	comments map[int]types.Comment
	patched  []int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: map[int]types.Comment{}}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment types.Comment) (types.Comment, error) {
	comment.ID = f.nextID
	f.nextID++
	f.comments[comment.ID] = comment
	return comment, nil
}

func (f *fakeCommentRepo) ListByBlog(_ context.Context, blogID int) ([]types.Comment, error) {
	result := []types.Comment{}
	for _, comment := range f.comments {
		if comment.BlogID == blogID {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (f *fakeCommentRepo) Get(_ context.Context, id int) (types.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return types.Comment{}, store.ErrNotFound
	}
	return comment, nil
}

func (f *fakeCommentRepo) Patch(_ context.Context, id int, _ store.Patch) error {
	if _, ok := f.comments[id]; !ok {
		return store.ErrNotFound
	}
	f.patched = append(f.patched, id)
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func newCommentRouter(repo *fakeCommentRepo) http.Handler {
	router := chi.NewRouter()
	router.Route("/api/v1/comments", func(r chi.Router) {
		CommentRouter(r, services.NewCommentService(repo))
	})
	return router
}

func TestCreateComment(t *testing.T) {
	repo := newFakeCommentRepo()
	handler := newCommentRouter(repo)

	rec := postJSON(t, handler, "/api/v1/comments/comments/create", map[string]any{
		"blog_id": 2,
		"user_id": 5,
		"content": "Nice write-up",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CommentCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Comment created successfully.", resp.Message)
	assert.Equal(t, 1, resp.CommentID)

	stored := repo.comments[1]
	assert.Equal(t, 2, stored.BlogID)
	assert.Equal(t, 5, stored.UserID)
	assert.Nil(t, stored.ImageID)
}

func TestCreateCommentValidation(t *testing.T) {
	handler := newCommentRouter(newFakeCommentRepo())

	rec := postJSON(t, handler, "/api/v1/comments/comments/create", map[string]any{
		"blog_id":  "abc",
		"user_id":  5,
		"content":  "   ",
		"image_id": "not-a-number",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, len(resp.Errors))
	for i, fe := range resp.Errors {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"blog_id", "content", "image_id"}, fields)
}

func TestListCommentsEmptyBlogIsOK(t *testing.T) {
	handler := newCommentRouter(newFakeCommentRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments/comments?blog_id=9", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListCommentsRequiresBlogID(t *testing.T) {
	handler := newCommentRouter(newFakeCommentRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments/comments", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Blog ID must be a number")
}

func TestGetCommentNotFound(t *testing.T) {
	handler := newCommentRouter(newFakeCommentRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/comments/comments/99", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment not found")
}

func TestUpdateCommentRejectsUnknownFields(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.comments[1] = types.Comment{ID: 1, BlogID: 2}
	handler := newCommentRouter(repo)

	payload, _ := json.Marshal(map[string]any{"content": "edited", "blog_id": 3})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/comments/comments/1/update", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid fields provided")
	assert.Contains(t, rec.Body.String(), `"invalidFields":["blog_id"]`)
	assert.Empty(t, repo.patched)
}

func TestUpdateCommentNotFound(t *testing.T) {
	handler := newCommentRouter(newFakeCommentRepo())

	payload, _ := json.Marshal(map[string]any{"content": "edited"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/comments/comments/42/update", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment not found")
}

func TestDeleteCommentTwice(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.comments[1] = types.Comment{ID: 1}
	handler := newCommentRouter(repo)

	del := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/comments/comments/1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec := del()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Comment deleted successfully.")

	rec = del()
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
