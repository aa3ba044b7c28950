package vault

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "vault.enc"), testParams)
}

func TestInitCreatesEmptyVault(t *testing.T) {
	s := testStore(t)
	password := []byte("Secr3t!")

	require.NoError(t, s.Init(password))
	assert.True(t, s.Exists())

	contents, err := s.Load(password)
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestInitRefusesExistingVault(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Init([]byte("Secr3t!")))

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Init([]byte("other")), ErrVaultExists)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "existing vault must not be touched")
}

func TestLoadMissingVault(t *testing.T) {
	s := testStore(t)
	_, err := s.Load([]byte("Secr3t!"))
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestLoadWrongPassword(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Init([]byte("Secr3t!")))

	_, err := s.Load([]byte("wrong"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestPersistWriteThrough(t *testing.T) {
	s := testStore(t)
	password := []byte("Secr3t!")
	require.NoError(t, s.Init(password))

	contents, err := s.Load(password)
	require.NoError(t, err)
	contents.Upsert("Example", Entry{Username: "me@example.com", Password: "xYz1!"})
	require.NoError(t, s.Persist(contents, password))

	// A fresh store on the same path simulates a new process.
	reloaded, err := NewStore(s.Path(), testParams).Load(password)
	require.NoError(t, err)
	e, err := reloaded.Get("example")
	require.NoError(t, err)
	assert.Equal(t, Entry{Username: "me@example.com", Password: "xYz1!"}, e)
}

func TestPersistLeavesNoTempFiles(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Init([]byte("Secr3t!")))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(s.Path()), entries[0].Name())
}

func TestVaultFileIsSingleLineBase64(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Init([]byte("Secr3t!")))

	blob, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "\n")
	for _, r := range string(blob) {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=", string(r))
	}
}

func TestVaultFilePermissions(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Init([]byte("Secr3t!")))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestPersistDoesNotLeakPlaintext(t *testing.T) {
	s := testStore(t)
	password := []byte("Secr3t!")
	require.NoError(t, s.Init(password))

	contents := Contents{}
	contents.Upsert("github", Entry{Username: "octocat", Password: "hunter2"})
	require.NoError(t, s.Persist(contents, password))

	blob, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	for _, needle := range []string{"github", "octocat", "hunter2", "username", "password"} {
		assert.NotContains(t, strings.ToLower(string(blob)), needle)
	}
}

func TestResetDiscardsOldVault(t *testing.T) {
	s := testStore(t)
	oldPassword := []byte("OldPass")
	require.NoError(t, s.Init(oldPassword))

	contents, err := s.Load(oldPassword)
	require.NoError(t, err)
	contents.Upsert("github", Entry{Username: "octocat", Password: "pw"})
	require.NoError(t, s.Persist(contents, oldPassword))

	require.NoError(t, s.Reset([]byte("NewPass")))

	fresh, err := s.Load([]byte("NewPass"))
	require.NoError(t, err)
	assert.Empty(t, fresh)

	_, err = s.Load(oldPassword)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestResetWithoutExistingVault(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Reset([]byte("NewPass")))

	contents, err := s.Load([]byte("NewPass"))
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.enc")
	password := []byte("Secr3t!")

	require.NoError(t, NewStore(path, testParams).Init(password))

	// Session one: login, add an entry, persist.
	s1 := NewStore(path, testParams)
	contents, err := s1.Load(password)
	require.NoError(t, err)
	require.Empty(t, contents)
	contents.Upsert("Example", Entry{Username: "me@example.com", Password: "xYz1!"})
	require.NoError(t, s1.Persist(contents, password))

	// Session two: fresh load sees the entry under the normalized key.
	s2 := NewStore(path, testParams)
	contents, err = s2.Load(password)
	require.NoError(t, err)
	e, err := contents.Get("example")
	require.NoError(t, err)
	assert.Equal(t, Entry{Username: "me@example.com", Password: "xYz1!"}, e)

	_, err = s2.Load([]byte("wrong"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
