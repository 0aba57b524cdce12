package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store persists the session triple between invocations.
//
// Restore never performs network I/O. Set and Clear replace the full triple;
// implementations must not leave a partially written session observable.
type Store interface {
	// Restore reads the persisted session. Returns nil without error when no
	// complete session is stored.
	Restore() (*Session, error)

	// Set sanitizes the token and persists all three fields.
	Set(s Session) error

	// Clear removes the persisted session.
	Clear() error
}

// sessionFile is the on-disk TOML shape of a persisted session.
type sessionFile struct {
	Token  string `toml:"token"`
	UserID string `toml:"user_id"`
	Role   string `toml:"role"`
}

// FileStore persists sessions to a TOML file, by default under ~/.reel.
//
// Writes go through a temp file and rename so the triple is replaced
// atomically.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore persisting to the given path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session store path is required")
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the persisted session file.
func (f *FileStore) Path() string { return f.path }

// Restore reads the persisted session from disk.
func (f *FileStore) Restore() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var file sessionFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	role, err := ParseRole(file.Role)
	if err != nil {
		return nil, nil
	}

	s := Session{Token: SanitizeToken(file.Token), UserID: file.UserID, Role: role}
	if !s.Authenticated() {
		return nil, nil
	}

	return &s, nil
}

// Set persists the session triple, replacing any prior session.
func (f *FileStore) Set(s Session) error {
	s.Token = SanitizeToken(s.Token)
	if !s.Authenticated() {
		return fmt.Errorf("refusing to persist incomplete session")
	}
	if !s.Role.Valid() {
		return fmt.Errorf("refusing to persist unknown role %q", s.Role)
	}

	var buf bytes.Buffer
	file := sessionFile{Token: s.Token, UserID: s.UserID, Role: s.Role.String()}
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set session file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is not an error.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
