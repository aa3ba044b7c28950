package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

func randBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeriveKey stretches a master password into a 32-byte symmetric key with
// PBKDF2-HMAC-SHA256. Deterministic for a given (password, salt, iterations)
// triple.
func DeriveKey(password, salt []byte, iterations int) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}
	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New), nil
}

// aeadSeal encrypts plaintext under key with XChaCha20-Poly1305 and a fresh
// random nonce. The 192-bit nonce space makes random nonces collision-safe,
// and every call derives from a fresh salt anyway, so the key is never reused.
func aeadSeal(key, plaintext []byte) (nonce, ct []byte, err error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, err
	}
	nonce, err = randBytes(NonceLen)
	if err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

func aeadOpen(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}
