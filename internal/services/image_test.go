package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuyoleni/nust-competion-api/types"
)

type fakeImageRepo struct {
	created []types.Image
	fail    error
}

func (f *fakeImageRepo) Create(_ context.Context, image types.Image) (types.Image, error) {
	if f.fail != nil {
		return types.Image{}, f.fail
	}
	image.ID = len(f.created) + 1
	f.created = append(f.created, image)
	return image, nil
}

type fakeObjectStore struct {
	objects map[string][]byte
	deleted []string
	putErr  error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStore) URL(key string) string {
	return "https://objects.example.com/bucket/" + key
}

func TestImageUpload(t *testing.T) {
	repo := &fakeImageRepo{}
	objects := newFakeObjectStore()
	service := NewImageService(repo, objects)

	image, err := service.Upload(context.Background(), "team.png", "image/png", []byte("png-bytes"), 4)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 4, image.UploaderID)
	assert.True(t, strings.HasPrefix(image.URL, "https://objects.example.com/bucket/"))
	assert.True(t, strings.HasSuffix(image.URL, "_team.png"))

	require.Len(t, objects.objects, 1)
	for key, data := range objects.objects {
		assert.True(t, strings.HasSuffix(key, "_team.png"))
		assert.Equal(t, []byte("png-bytes"), data)
	}
}

func TestImageUploadKeysAreUnique(t *testing.T) {
	repo := &fakeImageRepo{}
	objects := newFakeObjectStore()
	service := NewImageService(repo, objects)

	_, err := service.Upload(context.Background(), "team.png", "image/png", []byte("a"), 1)
	require.NoError(t, err)
	_, err = service.Upload(context.Background(), "team.png", "image/png", []byte("b"), 1)
	require.NoError(t, err)

	assert.Len(t, objects.objects, 2, "same filename must not collide")
}

func TestImageUploadPutFailure(t *testing.T) {
	repo := &fakeImageRepo{}
	objects := newFakeObjectStore()
	objects.putErr = errors.New("storage unavailable")
	service := NewImageService(repo, objects)

	_, err := service.Upload(context.Background(), "team.png", "image/png", []byte("a"), 1)
	require.Error(t, err)
	assert.Empty(t, repo.created, "no row without a stored object")
}

func TestImageUploadDeletesObjectWhenInsertFails(t *testing.T) {
	repo := &fakeImageRepo{fail: errors.New("db down")}
	objects := newFakeObjectStore()
	service := NewImageService(repo, objects)

	_, err := service.Upload(context.Background(), "team.png", "image/png", []byte("a"), 1)
	require.Error(t, err)

	assert.Empty(t, objects.objects, "orphaned object must be removed")
	require.Len(t, objects.deleted, 1)
}
