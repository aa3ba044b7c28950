package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store owns the on-disk vault file. All reads go through Load and all
// writes go through Persist; the file is replaced atomically so a crash
// mid-write can never leave a truncated container behind. Concurrent writers
// to the same path are not coordinated here; one process per vault.
type Store struct {
	path   string
	params *Params
}

func NewStore(path string, params *Params) *Store {
	if params == nil {
		params = DefaultParams()
	}
	return &Store{path: path, params: params}
}

// Path returns the vault file location.
func (s *Store) Path() string { return s.path }

// Exists reports whether a vault file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Init creates a new vault holding an empty record set. Fails with
// ErrVaultExists when a vault file is already present; it will not clobber
// an existing vault.
func (s *Store) Init(password []byte) error {
	if s.Exists() {
		return ErrVaultExists
	}
	return s.Persist(Contents{}, password)
}

// Load reads and decrypts the vault file.
func (s *Store) Load(password []byte) (Contents, error) {
	blob, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrVaultNotFound
		}
		return nil, err
	}
	return Decrypt(blob, password, s.params)
}

// Persist encrypts contents and atomically replaces the vault file. This is
// the only write path; every mutation must come back through here before it
// counts as saved.
func (s *Store) Persist(contents Contents, password []byte) error {
	blob, err := Encrypt(contents, password, s.params)
	if err != nil {
		return err
	}
	return atomicWriteFile(s.path, blob, 0600)
}

// Reset destroys the existing vault, if any, and reinitializes an empty one
// under the new password. The old master password is irrecoverably
// invalidated. Confirmation is the caller's job; by the time this runs the
// decision has been made.
func (s *Store) Reset(password []byte) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.Init(password)
}

// atomicWriteFile writes data to a temp file in the target's directory,
// syncs it, and renames it over path. The live file is either the old valid
// container or the new one, never a partial write.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "mypw-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if err := tmpFile.Chmod(perm); err != nil {
		return err
	}
	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
