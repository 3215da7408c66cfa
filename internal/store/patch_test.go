package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchSpecBuildRejectsUnknownFields(t *testing.T) {
	spec := PatchSpec{Allowed: []string{"name", "email"}}

	_, err := spec.Build(map[string]any{
		"name":     "Ada",
		"password": "secret",
		"admin":    true,
	})

	var unknown *UnknownFieldsError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"admin", "password"}, unknown.Fields)
}

func TestPatchSpecBuildKeepsPresentZeroValues(t *testing.T) {
	spec := PatchSpec{Allowed: []string{"name", "phone"}}

	patch, err := spec.Build(map[string]any{"phone": ""})
	require.NoError(t, err)
	require.False(t, patch.Empty())

	query, args := patch.SQL("users", "user_id", 7)
	assert.Equal(t, "UPDATE users SET phone = $1 WHERE user_id = $2", query)
	assert.Equal(t, []any{"", 7}, args)
}

func TestPatchSpecBuildEmptyPayload(t *testing.T) {
	spec := PatchSpec{Allowed: []string{"content"}}

	patch, err := spec.Build(map[string]any{})
	require.NoError(t, err)
	assert.True(t, patch.Empty())
}

func TestPatchSQLOrdersColumnsBySpec(t *testing.T) {
	spec := PatchSpec{Allowed: []string{"title", "content", "image_id"}}

	patch, err := spec.Build(map[string]any{
		"image_id": float64(3),
		"title":    "Hello",
	})
	require.NoError(t, err)

	query, args := patch.SQL("blogs", "blog_id", 12)
	assert.Equal(t, "UPDATE blogs SET title = $1, image_id = $2 WHERE blog_id = $3", query)
	assert.Equal(t, []any{"Hello", float64(3), 12}, args)
}

func TestPatchSpecBuildCoercesBoolColumns(t *testing.T) {
	spec := PatchSpec{Allowed: []string{"is_admin"}, Bools: []string{"is_admin"}}

	cases := []struct {
		value any
		want  bool
	}{
		{true, true},
		{false, false},
		{float64(1), true},
		{float64(0), false},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
		{"", false},
	}
	for _, tc := range cases {
		patch, err := spec.Build(map[string]any{"is_admin": tc.value})
		require.NoError(t, err)

		_, args := patch.SQL("users", "user_id", 1)
		assert.Equal(t, tc.want, args[0], "value %#v", tc.value)
	}
}
