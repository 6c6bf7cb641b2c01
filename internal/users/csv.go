package users

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
)

const tableFile = "users.csv"

var csvHeader = []string{"id", "passwordHash", "role"}

// CSVFile persists the account table as a flat delimited file with an
// id,passwordHash,role header row.
type CSVFile struct {
	path string
	mu   sync.Mutex // protects concurrent writes to the file
}

// NewCSVFile initializes a table file handler rooted at dir.
func NewCSVFile(dir string) (*CSVFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &CSVFile{path: filepath.Join(dir, tableFile)}, nil
}

// Save writes the whole table atomically via a temporary file. The
// file carries password hashes, so it is not world-readable.
func (f *CSVFile) Save(accounts []model.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tempPath := f.path + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return err
	}
	for _, a := range accounts {
		if err := w.Write([]string{a.ID, a.PasswordHash, a.Role}); err != nil {
			file.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(tempPath, f.path)
}

// Load reads the table back. A missing or empty file yields an empty
// table; a malformed row is an error for the caller to log.
func (f *CSVFile) Load() ([]model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, row := range rows[1:] { // skip header
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(csvHeader), len(row))
		}
		accounts = append(accounts, model.Account{ID: row[0], PasswordHash: row[1], Role: row[2]})
	}
	return accounts, nil
}
