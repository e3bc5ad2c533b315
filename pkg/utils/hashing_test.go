package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("field-notes-42")
	assert.NoError(t, err)
	assert.NotEqual(t, "field-notes-42", hash)

	assert.NoError(t, ComparePasswords(hash, "field-notes-42"))
	assert.Error(t, ComparePasswords(hash, "wrong-password"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-input")
	assert.NoError(t, err)
	second, err := HashPassword("same-input")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
