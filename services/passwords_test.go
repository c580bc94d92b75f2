package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSecretPasswordTable(t *testing.T) {
	secret := ResolveSecret("1", 1, "fallback")
	assert.Equal(t, "Alpha123", secret.Value)
	assert.True(t, secret.CaseSensitive)

	secret = ResolveSecret("4", 4, "fallback")
	assert.Equal(t, "Delta456", secret.Value)
	assert.True(t, secret.CaseSensitive)
}

func TestResolveSecretFinalKeyword(t *testing.T) {
	tests := map[string]string{
		"1": "mainframe",
		"2": "database",
		"3": "security",
		"4": "networks",
	}
	for groupCode, keyword := range tests {
		secret := ResolveSecret(groupCode, 5, "fallback")
		assert.Equal(t, keyword, secret.Value)
		assert.False(t, secret.CaseSensitive)
	}
}

func TestResolveSecretFallback(t *testing.T) {
	// Unknown group falls through to the catalog answer.
	secret := ResolveSecret("9", 1, "cyberstart")
	assert.Equal(t, "cyberstart", secret.Value)
	assert.False(t, secret.CaseSensitive)

	// Challenge order outside the table does too.
	secret = ResolveSecret("1", 7, "extra")
	assert.Equal(t, "extra", secret.Value)
	assert.False(t, secret.CaseSensitive)
}

func TestSecretMatches(t *testing.T) {
	exact := Secret{Value: "Alpha123", CaseSensitive: true}
	assert.True(t, exact.Matches("Alpha123"))
	assert.False(t, exact.Matches("alpha123"))
	assert.False(t, exact.Matches("Alpha1234"))

	folded := Secret{Value: "mainframe", CaseSensitive: false}
	assert.True(t, folded.Matches("MAINFRAME"))
	assert.True(t, folded.Matches("MainFrame"))
	assert.False(t, folded.Matches("main frame"))
}
