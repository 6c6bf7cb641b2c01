// Package store implements the partitioned news store: per-partition
// news collections and category sets, mirrored to a JSON document on
// every mutation.
package store

import (
	"errors"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

var (
	// ErrUnknownPartition is returned when a partition key is not part of the fixed enumeration.
	ErrUnknownPartition = errors.New("unknown partition")
	// ErrNewsNotFound is returned when a news item id does not exist in the partition.
	ErrNewsNotFound = errors.New("news item not found")
	// ErrCategoryNotFound is returned when a category name is absent from the partition.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when a category still has news items referencing it.
	ErrCategoryInUse = errors.New("category is in use")
	// ErrInvalidCategory is returned when a category name is empty or already present.
	ErrInvalidCategory = errors.New("invalid category")
)

// PartitionData holds one partition's collections. The JSON tags are
// the on-disk and wire format of the portal's document store.
type PartitionData struct {
	News       []model.NewsItem `json:"news"`
	Categories []string         `json:"newsCategories"`
}

// Snapshot is a deep copy of every partition, safe to persist or
// serve without holding the store lock.
type Snapshot map[model.Partition]PartitionData

// NewsFields carries the client-settable fields of a news item.
type NewsFields struct {
	Heading     string
	Content     string
	Source      string
	Category    string
	WebsiteLink string
}

// NewsUpdate is a partial update: nil fields are left untouched.
type NewsUpdate struct {
	Heading     *string
	Content     *string
	Source      *string
	Category    *string
	WebsiteLink *string
}
