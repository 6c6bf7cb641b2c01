package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

const documentFile = "db.json"

// Persistence handles the disk I/O for the NewsStore. The whole
// multi-partition document is written as one JSON file: the global
// partition lives at the top level under "news"/"newsCategories", each
// continent under its own key.
type Persistence struct {
	path string
	mu   sync.Mutex // protects concurrent writes to the file
}

// NewPersistence initializes a persistence handler rooted at dir.
func NewPersistence(dir string) (*Persistence, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Persistence{path: filepath.Join(dir, documentFile)}, nil
}

// Save writes the snapshot to disk atomically: marshal, write to a
// temporary file, then rename over the previous document.
func (p *Persistence) Save(snap Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc := make(map[string]any, len(model.Continents)+2)
	global := snap[model.PartitionGlobal]
	doc["news"] = nonNilNews(global.News)
	doc["newsCategories"] = nonNilCategories(global.Categories)
	for _, c := range model.Continents {
		part := snap[c]
		doc[string(c)] = PartitionData{
			News:       nonNilNews(part.News),
			Categories: nonNilCategories(part.Categories),
		}
	}

	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tempPath := p.path + ".tmp"
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, p.path)
}

// Load reads the document back. A missing file is not an error: the
// portal starts with empty partitions on first run.
func (p *Persistence) Load() (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	content, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	snap := Snapshot{}
	var global PartitionData
	if raw, ok := doc["news"]; ok {
		if err := json.Unmarshal(raw, &global.News); err != nil {
			return nil, err
		}
	}
	if raw, ok := doc["newsCategories"]; ok {
		if err := json.Unmarshal(raw, &global.Categories); err != nil {
			return nil, err
		}
	}
	snap[model.PartitionGlobal] = global

	for _, c := range model.Continents {
		raw, ok := doc[string(c)]
		if !ok {
			continue
		}
		var part PartitionData
		if err := json.Unmarshal(raw, &part); err != nil {
			return nil, err
		}
		snap[c] = part
	}
	return snap, nil
}

// nonNilNews keeps empty collections as [] rather than null on disk.
func nonNilNews(items []model.NewsItem) []model.NewsItem {
	if items == nil {
		return []model.NewsItem{}
	}
	return items
}

func nonNilCategories(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
