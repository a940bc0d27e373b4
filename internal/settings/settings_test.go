package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()
	d := Defaults()
	assert.True(t, d.ShowAnimations)
	assert.True(t, d.ShowNebula)
	assert.True(t, d.HapticFeedback)
	assert.Equal(t, 150, d.StarCount())
	assert.NoError(t, d.Validate())
}

func TestValidateStarDensity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		density float64
		valid   bool
	}{
		{MinStarDensity, true},
		{MaxStarDensity, true},
		{175.5, true},
		{MinStarDensity - 0.1, false},
		{MaxStarDensity + 0.1, false},
		{0, false},
	}

	for _, tc := range testCases {
		s := Defaults()
		s.StarDensity = tc.density
		err := s.Validate()
		if tc.valid {
			assert.NoError(t, err, "density %v", tc.density)
		} else {
			assert.ErrorIs(t, err, ErrInvalidSettings, "density %v", tc.density)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)

	changed := got
	changed.HapticFeedback = false
	changed.StarDensity = 80
	require.NoError(t, store.Save(ctx, changed))

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, changed, got)

	invalid := changed
	invalid.StarDensity = 1000
	assert.ErrorIs(t, store.Save(ctx, invalid), ErrInvalidSettings)

	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, changed, got, "a rejected save must not change the stored settings")
}

func TestFileStoreMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested"), nil)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "fridok")
	store := NewFileStore(dir, nil)

	want := Settings{
		ShowAnimations: false,
		ShowNebula:     true,
		StarDensity:    220,
		HapticFeedback: false,
	}
	require.NoError(t, store.Save(ctx, want))
	assert.FileExists(t, store.Path())

	// A second store on the same directory sees the saved values.
	got, err := NewFileStore(dir, nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStorePartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("show_nebula: false\n"), 0o600))

	got, err := NewFileStore(dir, nil).Load(context.Background())
	require.NoError(t, err)

	want := Defaults()
	want.ShowNebula = false
	assert.Equal(t, want, got)
}

func TestFileStoreInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("star_density: 5000\n"), 0o600))

	got, err := NewFileStore(dir, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestFileStoreRejectsInvalidSave(t *testing.T) {
	t.Parallel()
	store := NewFileStore(t.TempDir(), nil)

	s := Defaults()
	s.StarDensity = 10
	assert.ErrorIs(t, store.Save(context.Background(), s), ErrInvalidSettings)
	assert.NoFileExists(t, store.Path())
}
