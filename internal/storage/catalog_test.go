package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCatalogMissingFileIsEmpty(t *testing.T) {
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.json"))
	require.NoError(t, err)
	assert.Empty(t, c.Movies())
}

func TestReplaceTagsPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	c, err := OpenCatalog(path)
	require.NoError(t, err)

	require.NoError(t, c.ReplaceTags("Deep Red (1975).mkv", []string{"giallo", " murder ", "giallo", ""}))
	require.NoError(t, c.ReplaceTags("Tenebrae.mkv", []string{"giallo"}))

	tags, ok := c.Tags("Deep Red (1975).mkv")
	require.True(t, ok)
	assert.Equal(t, []string{"giallo", "murder"}, tags) // trimmed, deduped, sorted

	// A fresh open sees exactly what was persisted.
	reloaded, err := OpenCatalog(path)
	require.NoError(t, err)

	movies := reloaded.Movies()
	require.Len(t, movies, 2)
	assert.Equal(t, "Deep Red (1975).mkv", movies[0].VideoId)
	assert.Equal(t, "Tenebrae.mkv", movies[1].VideoId)
}

func TestReplaceTagsOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	c, err := OpenCatalog(path)
	require.NoError(t, err)

	require.NoError(t, c.ReplaceTags("m.mkv", []string{"a", "b"}))
	require.NoError(t, c.ReplaceTags("m.mkv", []string{"c"}))

	tags, ok := c.Tags("m.mkv")
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, tags)
}

func TestOpenCatalogRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := OpenCatalog(path)
	assert.Error(t, err)
}

func TestTagsMissingMovie(t *testing.T) {
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.json"))
	require.NoError(t, err)

	_, ok := c.Tags("absent.mkv")
	assert.False(t, ok)
}
