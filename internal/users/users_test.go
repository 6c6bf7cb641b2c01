package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

func TestCreateAndVerify(t *testing.T) {
	s := NewUserStore(nil, nil)

	info, err := s.Create("alice", "s3cret", model.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, model.AccountInfo{ID: "alice", Role: "editor"}, info)

	account, err := s.Verify("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.ID)
	assert.NotEqual(t, "s3cret", account.PasswordHash) // stored hashed
}

func TestVerifyFailuresAreIndistinguishable(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "s3cret", "europe")
	require.NoError(t, err)

	_, wrongPassword := s.Verify("alice", "nope")
	_, unknownUser := s.Verify("bob", "nope")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestCreateValidation(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("", "pw", "europe")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = s.Create("alice", "", "europe")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = s.Create("alice", "pw", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Create("alice", "pw", "europe")
	require.NoError(t, err)
	_, err = s.Create("alice", "pw2", "asia")
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestUpdateRenameAndRoleChange(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "pw", "europe")
	require.NoError(t, err)

	info, err := s.Update("alice", "alicia", "", "asia")
	require.NoError(t, err)
	assert.Equal(t, model.AccountInfo{ID: "alicia", Role: "asia"}, info)

	// old password still works after a rename without a password change
	_, err = s.Verify("alicia", "pw")
	assert.NoError(t, err)
}

func TestUpdateEmptyPasswordKeepsHash(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "original", "europe")
	require.NoError(t, err)

	_, err = s.Update("alice", "", "", "asia")
	require.NoError(t, err)

	_, err = s.Verify("alice", "original")
	assert.NoError(t, err)
}

func TestUpdatePasswordReset(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "original", "europe")
	require.NoError(t, err)

	_, err = s.Update("alice", "", "rotated", "")
	require.NoError(t, err)

	_, err = s.Verify("alice", "original")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Verify("alice", "rotated")
	assert.NoError(t, err)
}

func TestUpdateRenameCollision(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "pw", "europe")
	require.NoError(t, err)
	_, err = s.Create("bob", "pw", "asia")
	require.NoError(t, err)

	_, err = s.Update("bob", "alice", "", "")
	assert.ErrorIs(t, err, ErrDuplicateID)

	// renaming to your own id is not a collision
	_, err = s.Update("bob", "bob", "", "")
	assert.NoError(t, err)
}

func TestUpdateNotFound(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Update("ghost", "", "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteRefusesSelf(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "pw", model.RoleEditor)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete("alice", "alice"), ErrSelfDeletion)
	assert.Equal(t, 1, s.Count())

	require.NoError(t, s.Delete("alice", "someone-else"))
	assert.ErrorIs(t, s.Delete("alice", "someone-else"), ErrUserNotFound)
}

func TestListHidesHashes(t *testing.T) {
	s := NewUserStore(nil, nil)
	_, err := s.Create("alice", "pw", "europe")
	require.NoError(t, err)

	infos := s.List()
	require.Len(t, infos, 1)
	assert.Equal(t, model.AccountInfo{ID: "alice", Role: "europe"}, infos[0])
}
