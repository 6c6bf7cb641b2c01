package store

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

// NewsStore is the in-memory source of truth for news and categories
// across all partitions. Every mutation snapshots the whole store and
// writes it to disk before returning; a failed write is logged and the
// in-memory state stays authoritative.
type NewsStore struct {
	mu        sync.RWMutex
	data      map[model.Partition]*PartitionData
	persister *Persistence
}

// NewNewsStore initializes a store from loaded data (may be nil) and a
// persister (may be nil, e.g. in tests). Every known partition is
// guaranteed to exist afterwards.
func NewNewsStore(initial Snapshot, p *Persistence) *NewsStore {
	data := make(map[model.Partition]*PartitionData, len(model.Partitions))
	for _, part := range model.Partitions {
		pd := PartitionData{}
		if initial != nil {
			pd = initial[part]
		}
		data[part] = &PartitionData{News: pd.News, Categories: pd.Categories}
	}
	return &NewsStore{data: data, persister: p}
}

// ListNews returns the partition's news items ordered by timestamp
// descending. Items with equal timestamps keep their insertion order.
func (s *NewsStore) ListNews(p model.Partition) ([]model.NewsItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part, ok := s.data[p]
	if !ok {
		return nil, ErrUnknownPartition
	}
	items := make([]model.NewsItem, 0, len(part.News))
	items = append(items, part.News...)
	// RFC 3339 UTC strings sort chronologically as plain strings.
	slices.SortStableFunc(items, func(a, b model.NewsItem) int {
		return strings.Compare(b.Timestamp, a.Timestamp)
	})
	return items, nil
}

// ListCategories returns the partition's categories in insertion order.
func (s *NewsStore) ListCategories(p model.Partition) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part, ok := s.data[p]
	if !ok {
		return nil, ErrUnknownPartition
	}
	names := make([]string, 0, len(part.Categories))
	return append(names, part.Categories...), nil
}

// CreateNews stores a new item with a fresh server-assigned id and
// creation timestamp. The category field is passed through verbatim:
// referencing a category that does not (yet) exist is allowed.
func (s *NewsStore) CreateNews(p model.Partition, f NewsFields) (model.NewsItem, error) {
	s.mu.Lock()
	part, ok := s.data[p]
	if !ok {
		s.mu.Unlock()
		return model.NewsItem{}, ErrUnknownPartition
	}
	item := model.NewsItem{
		ID:          uuid.NewString(),
		Heading:     f.Heading,
		Content:     f.Content,
		Source:      f.Source,
		Category:    f.Category,
		WebsiteLink: f.WebsiteLink,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	part.News = append(part.News, item)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return item, nil
}

// UpdateNews shallow-merges the provided fields over the stored item.
// ID and timestamp are immutable and cannot appear in the update.
func (s *NewsStore) UpdateNews(p model.Partition, id string, u NewsUpdate) (model.NewsItem, error) {
	s.mu.Lock()
	part, ok := s.data[p]
	if !ok {
		s.mu.Unlock()
		return model.NewsItem{}, ErrUnknownPartition
	}
	idx := slices.IndexFunc(part.News, func(n model.NewsItem) bool { return n.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return model.NewsItem{}, ErrNewsNotFound
	}
	item := &part.News[idx]
	if u.Heading != nil {
		item.Heading = *u.Heading
	}
	if u.Content != nil {
		item.Content = *u.Content
	}
	if u.Source != nil {
		item.Source = *u.Source
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.WebsiteLink != nil {
		item.WebsiteLink = *u.WebsiteLink
	}
	updated := *item
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return updated, nil
}

// DeleteNews removes an item by id.
func (s *NewsStore) DeleteNews(p model.Partition, id string) error {
	s.mu.Lock()
	part, ok := s.data[p]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownPartition
	}
	idx := slices.IndexFunc(part.News, func(n model.NewsItem) bool { return n.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNewsNotFound
	}
	part.News = slices.Delete(part.News, idx, idx+1)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return nil
}

// CreateCategory appends a category name and returns the updated set.
// Empty names and duplicates within the partition are rejected; the
// same name may exist independently in other partitions.
func (s *NewsStore) CreateCategory(p model.Partition, name string) ([]string, error) {
	s.mu.Lock()
	part, ok := s.data[p]
	if !ok {
		s.mu.Unlock()
		return nil, ErrUnknownPartition
	}
	if name == "" || slices.Contains(part.Categories, name) {
		s.mu.Unlock()
		return nil, ErrInvalidCategory
	}
	part.Categories = append(part.Categories, name)
	updated := slices.Clone(part.Categories)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return updated, nil
}

// DeleteCategory removes a category name. The in-use check and the
// removal happen under one lock so a concurrent news creation cannot
// slip a reference past the guard.
func (s *NewsStore) DeleteCategory(p model.Partition, name string) error {
	s.mu.Lock()
	part, ok := s.data[p]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownPartition
	}
	for _, n := range part.News {
		if n.Category == name {
			s.mu.Unlock()
			return ErrCategoryInUse
		}
	}
	idx := slices.Index(part.Categories, name)
	if idx < 0 {
		s.mu.Unlock()
		return ErrCategoryNotFound
	}
	part.Categories = slices.Delete(part.Categories, idx, idx+1)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return nil
}

// Snapshot returns a deep copy of every partition's contents.
func (s *NewsStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked deep-copies the store. It MUST be called while
// holding s.mu (read or write).
func (s *NewsStore) snapshotLocked() Snapshot {
	snap := make(Snapshot, len(s.data))
	for p, part := range s.data {
		snap[p] = PartitionData{
			News:       slices.Clone(part.News),
			Categories: slices.Clone(part.Categories),
		}
	}
	return snap
}

// persist writes a snapshot to disk. Write failures are logged, never
// surfaced: the in-memory state stays authoritative for the rest of
// the process lifetime.
func (s *NewsStore) persist(snap Snapshot) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(snap); err != nil {
		slog.Error("saving news store", "error", err)
	}
}
