// Package model defines the shared domain types for the news portal:
// partitions, news items, categories and accounts.
package model

// Partition identifies one independently scoped data region. Each
// partition owns its own news collection and category set.
type Partition string

// PartitionGlobal is the default region served from the portal's home page.
const PartitionGlobal Partition = "global"

// Continents lists the six regional partitions, in route-registration order.
var Continents = []Partition{
	"africa",
	"asia",
	"australia",
	"europe",
	"north-america",
	"south-america",
}

// Partitions lists every partition, global first.
var Partitions = append([]Partition{PartitionGlobal}, Continents...)

// ValidPartition reports whether s names a known partition (global included).
func ValidPartition(s string) bool {
	for _, p := range Partitions {
		if Partition(s) == p {
			return true
		}
	}
	return false
}

// ValidContinent reports whether s names one of the six regional
// partitions (global excluded).
func ValidContinent(s string) bool {
	for _, p := range Continents {
		if Partition(s) == p {
			return true
		}
	}
	return false
}

// RoleEditor is the super-admin role with access to every partition
// and to account management.
const RoleEditor = "editor"

// ValidRole reports whether s is a role an account may hold:
// editor or one of the continent names.
func ValidRole(s string) bool {
	if s == RoleEditor {
		return true
	}
	for _, p := range Continents {
		if Partition(s) == p {
			return true
		}
	}
	return false
}

// NewsItem is a single published article. ID and Timestamp are
// assigned by the server on creation and never change afterwards.
// Field names match the JSON wire format consumed by the frontend.
type NewsItem struct {
	ID          string `json:"id"`
	Heading     string `json:"heading"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	WebsiteLink string `json:"websiteLink,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC 3339, UTC
}

// Account is a stored login record. PasswordHash is a bcrypt hash and
// must never leave the users package through an API response.
type Account struct {
	ID           string
	PasswordHash string
	Role         string
}

// Info projects the account onto its publicly visible fields.
func (a Account) Info() AccountInfo {
	return AccountInfo{ID: a.ID, Role: a.Role}
}

// AccountInfo is the response shape for account listings.
type AccountInfo struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
