package vault

import (
	"encoding/base64"
	"encoding/json"
)

// Container layout: base64(salt[16] ‖ nonce[24] ‖ ciphertext+tag).

// Encrypt serializes contents and seals them under a key derived from the
// master password and a salt generated fresh for this call. Re-salting on
// every encryption gives a new key and nonce per save, so no (key, nonce)
// pair ever repeats across the vault's history.
func Encrypt(contents Contents, password []byte, params *Params) ([]byte, error) {
	if params == nil {
		params = DefaultParams()
	}
	salt, err := randBytes(SaltSize)
	if err != nil {
		return nil, err
	}
	key, err := DeriveKey(password, salt, params.Iterations)
	if err != nil {
		return nil, err
	}
	defer Zero(key)

	plaintext, err := json.Marshal(contents)
	if err != nil {
		return nil, err
	}
	defer Zero(plaintext)

	nonce, ct, err := aeadSeal(key, plaintext)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, 0, SaltSize+NonceLen+len(ct))
	raw = append(raw, salt...)
	raw = append(raw, nonce...)
	raw = append(raw, ct...)

	blob := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(blob, raw)
	return blob, nil
}

// Decrypt reverses Encrypt. Every failure mode, a malformed container, a
// wrong master password, tampered ciphertext, or an undecodable payload,
// comes back as the same opaque ErrDecryptionFailed so the error reveals
// nothing about which check rejected the blob.
func Decrypt(blob, password []byte, params *Params) (Contents, error) {
	if params == nil {
		params = DefaultParams()
	}
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(blob)))
	n, err := base64.StdEncoding.Decode(raw, blob)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	raw = raw[:n]
	if len(raw) < SaltSize+NonceLen {
		return nil, ErrDecryptionFailed
	}

	salt := raw[:SaltSize]
	nonce := raw[SaltSize : SaltSize+NonceLen]
	ct := raw[SaltSize+NonceLen:]

	key, err := DeriveKey(password, salt, params.Iterations)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer Zero(key)

	plaintext, err := aeadOpen(key, nonce, ct)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer Zero(plaintext)

	var contents Contents
	if err := json.Unmarshal(plaintext, &contents); err != nil {
		return nil, ErrDecryptionFailed
	}
	if contents == nil {
		contents = Contents{}
	}
	return contents, nil
}
