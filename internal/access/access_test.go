package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

func TestEditorWritesEverywhere(t *testing.T) {
	for _, p := range model.Partitions {
		assert.True(t, CanWrite(model.RoleEditor, PartitionResource(p)), "partition %s", p)
	}
	assert.True(t, CanWrite(model.RoleEditor, Accounts()))
}

func TestContinentRoleWritesOnlyItsOwnPartition(t *testing.T) {
	for _, role := range model.Continents {
		for _, p := range model.Partitions {
			want := p == role
			assert.Equal(t, want, CanWrite(string(role), PartitionResource(p)),
				"role %s partition %s", role, p)
		}
		assert.False(t, CanWrite(string(role), Accounts()), "role %s", role)
	}
}

func TestAnonymousWritesNothing(t *testing.T) {
	for _, p := range model.Partitions {
		assert.False(t, CanWrite("", PartitionResource(p)), "partition %s", p)
	}
	assert.False(t, CanWrite("", Accounts()))
}

func TestUnknownRoleWritesNothing(t *testing.T) {
	for _, role := range []string{"antarctica", "admin", "Editor", "global"} {
		for _, p := range model.Continents {
			assert.False(t, CanWrite(role, PartitionResource(p)), "role %s partition %s", role, p)
		}
		assert.False(t, CanWrite(role, Accounts()), "role %s", role)
	}
}

func TestGlobalPartitionIsEditorOnly(t *testing.T) {
	assert.True(t, CanWrite(model.RoleEditor, PartitionResource(model.PartitionGlobal)))
	for _, role := range model.Continents {
		assert.False(t, CanWrite(string(role), PartitionResource(model.PartitionGlobal)))
	}
}
