package filestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derin/uniportal/internal/storage"
)

func TestFilestoreRoundTrip(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	_, err = st.Get(ctx, "courses")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	assert.NoError(t, st.Set(ctx, "courses", []byte(`[{"id":"c1"}]`)))

	got, err := st.Get(ctx, "courses")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"c1"}]`), got)

	// Overwrite replaces the previous value.
	assert.NoError(t, st.Set(ctx, "courses", []byte(`[]`)))
	got, err = st.Get(ctx, "courses")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFilestoreDelete(t *testing.T) {
	st, err := New(t.TempDir())
	assert.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, st.Set(ctx, "currentUser", []byte(`{}`)))
	assert.NoError(t, st.Delete(ctx, "currentUser"))

	_, err = st.Get(ctx, "currentUser")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, st.Delete(ctx, "currentUser"))
}

func TestFilestoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	st, err := New(dir)
	assert.NoError(t, err)
	assert.NoError(t, st.Set(ctx, "assignments", []byte(`[]`)))
	assert.NoError(t, st.Close())

	st2, err := New(dir)
	assert.NoError(t, err)
	got, err := st2.Get(ctx, "assignments")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}
