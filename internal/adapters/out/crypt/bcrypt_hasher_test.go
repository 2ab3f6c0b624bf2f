package crypt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/adapters/out/crypt"
)

func TestBcryptHasher_Hash_ProducesVerifiableHash(t *testing.T) {
	hasher := crypt.NewBcryptHasher()

	hash, err := hasher.Hash("baker")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NoError(t, hasher.Verify(hash, "baker"))
}

func TestBcryptHasher_Hash_SaltsEachHash(t *testing.T) {
	hasher := crypt.NewBcryptHasher()

	first, err := hasher.Hash("baker")
	require.NoError(t, err)
	second, err := hasher.Hash("baker")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Verify(first, "baker"))
	assert.NoError(t, hasher.Verify(second, "baker"))
}

func TestBcryptHasher_Verify_WrongPassword_ReturnsError(t *testing.T) {
	hasher := crypt.NewBcryptHasher()

	hash, err := hasher.Hash("baker")
	require.NoError(t, err)

	assert.Error(t, hasher.Verify(hash, "barista"))
}

func TestBcryptHasher_Verify_MalformedHash_ReturnsError(t *testing.T) {
	hasher := crypt.NewBcryptHasher()

	assert.Error(t, hasher.Verify("not-a-hash", "baker"))
}
