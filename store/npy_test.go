package store_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubitkit/clifftab/store"
)

//----------------------------------------------------------------------------//
// Flat Array I/O Tests
//----------------------------------------------------------------------------//

// TestWriteInt32_EmptyPath verifies the empty-path sentinel on writers and
// readers.
func TestWriteInt32_EmptyPath(t *testing.T) {
	if _, err := store.WriteInt32("", []int32{1}); !errors.Is(err, store.ErrEmptyPath) {
		t.Errorf("WriteInt32(\"\") error = %v; want ErrEmptyPath", err)
	}
	if _, err := store.ReadInt32(""); !errors.Is(err, store.ErrEmptyPath) {
		t.Errorf("ReadInt32(\"\") error = %v; want ErrEmptyPath", err)
	}
}

// TestInt32_RoundTrip verifies a plain write/read cycle preserves content
// and that the writer reports the path it was given.
func TestInt32_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.npy")
	want := []int32{0, 5, -3, 11519}

	got, err := store.WriteInt32(path, want)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	back, err := store.ReadInt32(path)
	require.NoError(t, err)
	assert.Equal(t, want, back)
}

// TestInt32_RoundTripSnappy verifies the compressed cycle: the writer
// appends ".sz" and the reader picks the codec from the suffix.
func TestInt32_RoundTripSnappy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.npy")
	want := make([]int32, 4096)
	for i := range want {
		want[i] = int32(i % 24)
	}

	got, err := store.WriteInt32(path, want, store.WithSnappy())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(got, ".sz"), "written path %q", got)

	back, err := store.ReadInt32(got)
	require.NoError(t, err)
	assert.Equal(t, want, back)
}

// TestInt64_RoundTrip verifies the 64-bit writer/reader pair, plain and
// compressed.
func TestInt64_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := []int64{0, 20, 40, 230400}

	path, err := store.WriteInt64(filepath.Join(dir, "indptr.npy"), want)
	require.NoError(t, err)
	back, err := store.ReadInt64(path)
	require.NoError(t, err)
	assert.Equal(t, want, back)

	path, err = store.WriteInt64(filepath.Join(dir, "indptr2.npy"), want, store.WithSnappy())
	require.NoError(t, err)
	back, err = store.ReadInt64(path)
	require.NoError(t, err)
	assert.Equal(t, want, back)
}

// TestReadInt32_Missing verifies a missing file surfaces the underlying
// I/O error.
func TestReadInt32_Missing(t *testing.T) {
	_, err := store.ReadInt32(filepath.Join(t.TempDir(), "absent.npy"))
	assert.Error(t, err)
}
