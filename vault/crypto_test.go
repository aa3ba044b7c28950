package vault

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIterations = 1000

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xab}, SaltSize)

	k1, err := DeriveKey([]byte("hunter2"), salt, testIterations)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("hunter2"), salt, testIterations)
	require.NoError(t, err)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKeySaltChangesKey(t *testing.T) {
	s1 := bytes.Repeat([]byte{0x01}, SaltSize)
	s2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1, err := DeriveKey([]byte("hunter2"), s1, testIterations)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("hunter2"), s2, testIterations)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestDeriveKeyPasswordChangesKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	k1, err := DeriveKey([]byte("hunter2"), salt, testIterations)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("hunter3"), salt, testIterations)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestDeriveKeyRejectsBadSalt(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 32} {
		_, err := DeriveKey([]byte("hunter2"), make([]byte, n), testIterations)
		assert.ErrorIs(t, err, ErrInvalidSalt, "salt length %d", n)
	}
}

func TestAEADRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	plaintext := []byte(`{"github":{"username":"me","password":"pw"}}`)

	nonce, ct, err := aeadSeal(key, plaintext)
	require.NoError(t, err)
	require.Len(t, nonce, NonceLen)

	got, err := aeadOpen(key, nonce, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestAEADRejectsWrongKey(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, KeySize)
	nonce, ct, err := aeadSeal(key, []byte("payload"))
	require.NoError(t, err)

	other := bytes.Repeat([]byte{0x43}, KeySize)
	_, err = aeadOpen(other, nonce, ct)
	assert.Error(t, err)
}

func TestZero(t *testing.T) {
	b := []byte("sensitive")
	Zero(b)
	assert.Equal(t, make([]byte, len(b)), b)
}
