// Package localstore reads the locally registered account records used by
// the offline account-recovery flow. Records live in a single durable JSON
// slot (one file per collection key) written by the signup flow; this
// package never writes to it.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/narabid/bidassist/internal/domain"
)

// UsersKey is the collection key of the registered-account slot. The file
// holding the slot is named after it.
const UsersKey = "bidassistance_users_v1"

// Store reads user records from a directory of JSON slots.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the slot directory used outside tests:
// $BIDASSIST_HOME or ~/.bidassist.
func DefaultDir() (string, error) {
	if dir := os.Getenv("BIDASSIST_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bidassist"), nil
}

// ReadUsers returns every record in the user slot, in slot order. A missing
// or unparsable slot reads as an empty list, never an error: the slot is
// owned by another writer and this reader must tolerate whatever it finds.
func (s *Store) ReadUsers() []domain.UserRecord {
	raw, err := os.ReadFile(filepath.Join(s.dir, UsersKey+".json"))
	if err != nil {
		return nil
	}
	var users []domain.UserRecord
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil
	}
	return users
}
