// Package access holds the single write-authorization rule for the
// portal. Reads are public and never consult this package.
package access

import "github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"

// Resource is something a write operation targets: the account table
// or one partition's news and categories.
type Resource struct {
	accounts  bool
	partition model.Partition
}

// Accounts is the account-management resource.
func Accounts() Resource {
	return Resource{accounts: true}
}

// PartitionResource targets one partition's news and categories.
func PartitionResource(p model.Partition) Resource {
	return Resource{partition: p}
}

// CanWrite decides whether a session role may mutate a resource.
// It is total and side-effect-free:
//   - the editor role may write everything, account management included
//   - a continent role may write only its own partition
//   - any other role, the empty role (anonymous) included, may write nothing
//
// The global partition has no role of its own, so only editors write it.
func CanWrite(role string, res Resource) bool {
	if role == model.RoleEditor {
		return true
	}
	if res.accounts {
		return false
	}
	return role != "" && model.Partition(role) == res.partition
}
