package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// LocalState is the only thing that survives a restart: the
// configured sheet endpoint and the logged-in user (password already
// stripped). Everything else is re-pulled from the sheet.
type LocalState struct {
	Endpoint string       `json:"endpoint"`
	User     *models.User `json:"user,omitempty"`
}

// StateFile persists LocalState as a small JSON file. Explicit
// load/save lifecycle, no ambient globals.
type StateFile struct {
	path string
}

// NewStateFile points at the given path (e.g. ./gonzacars-state.json).
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Load reads the persisted state. A missing or unreadable file means
// a fresh install: unconfigured and logged out.
func (f *StateFile) Load() LocalState {
	var st LocalState
	data, err := os.ReadFile(f.path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return LocalState{}
	}
	if st.User != nil {
		st.User.Password = "" // never trust a stray password on disk
	}
	return st
}

// Save writes the state atomically (write temp file, then rename).
func (f *StateFile) Save(st LocalState) error {
	if st.User != nil {
		st.User.Password = ""
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
