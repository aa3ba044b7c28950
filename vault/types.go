// Package vault implements the encrypted credential store: key derivation
// from a master password, the authenticated on-disk container, write-through
// CRUD over the decrypted record set, and password generation.
package vault

import "errors"

const (
	// KDFIterations is the PBKDF2 round count. Fixed on purpose: the container
	// format carries no parameter header, so every vault ever written must
	// decrypt under the same constant.
	KDFIterations = 480_000

	SaltSize = 16
	KeySize  = 32
	NonceLen = 24
)

var (
	ErrVaultExists      = errors.New("vault: already exists")
	ErrVaultNotFound    = errors.New("vault: not found")
	ErrDecryptionFailed = errors.New("vault: decryption failed")
	ErrEntryNotFound    = errors.New("vault: entry not found")
	ErrEmptyAlphabet    = errors.New("vault: no character classes selected")
	ErrInvalidLength    = errors.New("vault: password length must be positive")
	ErrInvalidSalt      = errors.New("vault: salt must be 16 bytes")
)

// Params configures key derivation. The iteration count exists as a knob so
// tests can run against cheap keys; production callers take the default.
type Params struct {
	Iterations int
}

func DefaultParams() *Params { return &Params{Iterations: KDFIterations} }

// Entry is one stored credential record.
type Entry struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Contents is the decrypted vault payload, keyed by lowercased service name.
type Contents map[string]Entry

// ListItem is one row of the password-free listing view.
type ListItem struct {
	Service  string
	Username string
}

// Zero securely wipes a byte slice from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
