package authentication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hashed)

	assert.True(t, CheckPassword("secret1", hashed))
	assert.False(t, CheckPassword("secret2", hashed))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret1")
	assert.NoError(t, err)
	second, err := HashPassword("secret1")
	assert.NoError(t, err)

	// Salt is embedded, so hashing is non-deterministic.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret1", first))
	assert.True(t, CheckPassword("secret1", second))
}

func TestHashPasswordCost(t *testing.T) {
	hashed, err := HashPassword("secret1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)
}

func TestCheckPasswordRejectsRawComparison(t *testing.T) {
	// A stored plaintext (never hashed) must not verify.
	assert.False(t, CheckPassword("secret1", "secret1"))
}
