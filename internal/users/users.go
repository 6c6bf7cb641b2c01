// Package users implements the credential store: account records with
// bcrypt password hashes and a role, persisted as a flat CSV table.
package users

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

var (
	// ErrMissingFields is returned when a required account field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrDuplicateID is returned when an account id is already taken.
	ErrDuplicateID = errors.New("user already exists")
	// ErrUserNotFound is returned when no account has the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrSelfDeletion is returned when an account tries to delete itself.
	ErrSelfDeletion = errors.New("cannot delete own account")
	// ErrInvalidCredentials is the single failure for Verify, identical
	// for unknown ids and wrong passwords so account existence does not leak.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when the id is unknown, so a failed
// Verify costs a bcrypt round either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-account"), bcrypt.DefaultCost)

// UserStore holds the account table in memory, in CSV order, and
// mirrors it to disk after every mutation.
type UserStore struct {
	mu        sync.RWMutex
	accounts  []model.Account
	persister *CSVFile
}

// NewUserStore initializes a store from loaded accounts (may be nil)
// and a persister (may be nil, e.g. in tests).
func NewUserStore(initial []model.Account, p *CSVFile) *UserStore {
	return &UserStore{accounts: slices.Clone(initial), persister: p}
}

// Count returns the number of stored accounts.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// List returns every account's public fields. Password hashes never
// leave this package through List.
func (s *UserStore) List() []model.AccountInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]model.AccountInfo, len(s.accounts))
	for i, a := range s.accounts {
		infos[i] = a.Info()
	}
	return infos
}

// Create hashes the password and stores a new account.
func (s *UserStore) Create(id, password, role string) (model.AccountInfo, error) {
	if id == "" || password == "" || role == "" {
		return model.AccountInfo{}, ErrMissingFields
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.AccountInfo{}, err
	}

	s.mu.Lock()
	if s.indexLocked(id) >= 0 {
		s.mu.Unlock()
		return model.AccountInfo{}, ErrDuplicateID
	}
	account := model.Account{ID: id, PasswordHash: string(hash), Role: role}
	s.accounts = append(s.accounts, account)
	table := slices.Clone(s.accounts)
	s.mu.Unlock()

	s.persist(table)
	return account.Info(), nil
}

// Update modifies an existing account. Empty arguments leave the
// corresponding field unchanged; in particular an empty password keeps
// the stored hash.
func (s *UserStore) Update(originalID, newID, password, role string) (model.AccountInfo, error) {
	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return model.AccountInfo{}, err
		}
		hash = string(h)
	}

	s.mu.Lock()
	idx := s.indexLocked(originalID)
	if idx < 0 {
		s.mu.Unlock()
		return model.AccountInfo{}, ErrUserNotFound
	}
	if newID != "" && newID != originalID && s.indexLocked(newID) >= 0 {
		s.mu.Unlock()
		return model.AccountInfo{}, ErrDuplicateID
	}
	account := &s.accounts[idx]
	if newID != "" {
		account.ID = newID
	}
	if role != "" {
		account.Role = role
	}
	if hash != "" {
		account.PasswordHash = hash
	}
	updated := account.Info()
	table := slices.Clone(s.accounts)
	s.mu.Unlock()

	s.persist(table)
	return updated, nil
}

// Delete removes an account. The acting identity may never delete
// itself while authenticated as itself.
func (s *UserStore) Delete(id, actingID string) error {
	if id == actingID {
		return ErrSelfDeletion
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrUserNotFound
	}
	s.accounts = slices.Delete(s.accounts, idx, idx+1)
	table := slices.Clone(s.accounts)
	s.mu.Unlock()

	s.persist(table)
	return nil
}

// Verify checks the submitted credentials and returns the matching
// account. Unknown ids still burn a bcrypt compare so the failure has
// the same shape and rough timing as a wrong password.
func (s *UserStore) Verify(id, password string) (model.Account, error) {
	s.mu.RLock()
	idx := s.indexLocked(id)
	var account model.Account
	if idx >= 0 {
		account = s.accounts[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return model.Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return model.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// indexLocked finds an account by id. It MUST be called while holding s.mu.
func (s *UserStore) indexLocked(id string) int {
	return slices.IndexFunc(s.accounts, func(a model.Account) bool { return a.ID == id })
}

// persist writes the account table to disk. Failures are logged, not
// surfaced: the in-memory table stays authoritative.
func (s *UserStore) persist(table []model.Account) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(table); err != nil {
		slog.Error("saving user table", "error", err)
	}
}
