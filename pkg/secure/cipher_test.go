package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestCipher_EncryptDecrypt(t *testing.T) {
	c, err := NewCipher(testKey)
	require.NoError(t, err)

	encrypted, err := c.Encrypt("EAAB-long-lived-token")
	require.NoError(t, err)
	assert.NotEqual(t, "EAAB-long-lived-token", encrypted)

	again, err := c.Encrypt("EAAB-long-lived-token")
	require.NoError(t, err)
	assert.NotEqual(t, encrypted, again, "nonce deve variar")

	decrypted, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "EAAB-long-lived-token", decrypted)
}

func TestCipher_EmptyValue(t *testing.T) {
	c, err := NewCipher(testKey)
	require.NoError(t, err)

	encrypted, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)

	decrypted, err := c.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestCipher_Errors(t *testing.T) {
	_, err := NewCipher("curta")
	assert.Error(t, err)

	c, _ := NewCipher(testKey)
	other, _ := NewCipher("abcdef0123456789abcdef0123456789")

	encrypted, err := c.Encrypt("segredo")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = c.Decrypt("não-é-base64!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = c.Decrypt("YWJj")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
