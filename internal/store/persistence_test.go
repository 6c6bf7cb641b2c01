package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPersistence(dir)
	require.NoError(t, err)

	s := NewNewsStore(nil, p)
	_, err = s.CreateCategory("asia", "Tech")
	require.NoError(t, err)
	item, err := s.CreateNews("asia", NewsFields{Heading: "h", Category: "Tech", WebsiteLink: "https://example.org"})
	require.NoError(t, err)
	_, err = s.CreateNews(model.PartitionGlobal, NewsFields{Heading: "global item"})
	require.NoError(t, err)

	loaded, err := p.Load()
	require.NoError(t, err)
	restored := NewNewsStore(loaded, nil)

	asia, err := restored.ListNews("asia")
	require.NoError(t, err)
	require.Len(t, asia, 1)
	assert.Equal(t, item, asia[0])

	names, err := restored.ListCategories("asia")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech"}, names)

	global, err := restored.ListNews(model.PartitionGlobal)
	require.NoError(t, err)
	require.Len(t, global, 1)
	assert.Equal(t, "global item", global[0].Heading)
}

func TestLoadMissingFileYieldsEmptySnapshot(t *testing.T) {
	p, err := NewPersistence(t.TempDir())
	require.NoError(t, err)

	snap, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestDocumentLayoutMatchesLegacyFormat(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPersistence(dir)
	require.NoError(t, err)

	snap := Snapshot{
		model.PartitionGlobal: {Categories: []string{"World"}},
		"europe":              {Categories: []string{"Politics"}},
	}
	require.NoError(t, p.Save(snap))

	content, err := os.ReadFile(filepath.Join(dir, "db.json"))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(content, &doc))

	// global partition lives inline at the top level
	assert.Contains(t, doc, "news")
	assert.Contains(t, doc, "newsCategories")
	// every continent gets its own object even when empty
	for _, c := range model.Continents {
		assert.Contains(t, doc, string(c))
	}
	// empty collections are written as [], not null
	assert.Equal(t, "[]", string(doc["news"]))
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPersistence(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.json"), []byte("{not json"), 0644))

	_, err = p.Load()
	assert.Error(t, err)
}
