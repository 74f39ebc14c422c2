package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("", 4)

	assert.ErrorIs(t, err, ErrPasswordRequired)
	assert.Empty(t, hash)
}

func TestHashPassword_TooLongPassword(t *testing.T) {
	longPassword := string(make([]byte, 65))

	hash, err := HashPassword(longPassword, 4)

	assert.ErrorIs(t, err, ErrPasswordMaxLen64)
	assert.Empty(t, hash)
}

func TestHashPassword_ValidPassword(t *testing.T) {
	hash, err := HashPassword("adminpass", 4)
	assert.NoError(t, err)

	assert.Contains(t, hash, "$2a$")

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte("adminpass"))
	assert.NoError(t, err)
}

func TestHashPassword_BcryptError(t *testing.T) {
	hash, err := HashPassword("adminpass", 32)

	assert.ErrorIs(t, err, ErrPasswordGenerate)
	assert.Empty(t, hash)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("adminpass", 4)
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash("adminpass", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
}
