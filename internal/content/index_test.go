package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	root := t.TempDir()
	writeTestUnit(t, root, "place", "overview.md", "---\ntitle: \"Principle 6: Rethink Place\"\norder: 6\n---\n\nPlace body.\n")
	writeTestUnit(t, root, "empty", "overview.md", "---\ntitle: \"Empty\"\n---\n\n\n")

	ix := BuildIndex(NewStore(root))
	require.Len(t, ix, 1)

	assert.True(t, ix.HasContentForSlug("place"))
	assert.False(t, ix.HasContentForSlug("empty"))
	assert.False(t, ix.HasContentForSlug("unknown"))

	title, ok := ix.GetTitleForSlug("place")
	require.True(t, ok)
	assert.Equal(t, "Principle 6: Rethink Place", title)

	body, ok := ix.GetContentForSlug("place")
	require.True(t, ok)
	assert.Equal(t, "Place body.", body)

	_, ok = ix.GetContentForSlug("unknown")
	assert.False(t, ok)
}

func TestIndexRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeTestUnit(t, root, "vocation", "overview.md", "---\ntitle: \"Vocation\"\n---\n\nVocation body.\n")

	ix := BuildIndex(NewStore(root))
	path := filepath.Join(t.TempDir(), "principle-content.json")
	require.NoError(t, WriteIndex(ix, path))

	loaded, err := ReadIndex(path)
	require.NoError(t, err)
	assert.Equal(t, ix, loaded)
}

func TestReadIndexMissingFile(t *testing.T) {
	_, err := ReadIndex(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
