package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVerificationCode(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateVerificationCode()
		assert.Regexp(t, re, code)
		seen[code] = true
	}
	// 50 draws from a million-value space collapsing to one value would
	// mean the source is broken
	assert.Greater(t, len(seen), 1)
}

func TestNormalizeBookName(t *testing.T) {
	assert.Equal(t, "cebuano.pdf", NormalizeBookName("Cebuano.PDF "))
	assert.Equal(t, "cebuano.pdf", NormalizeBookName("cebuano.pdf"))
	assert.Equal(t, "bikol.pdf", NormalizeBookName("  BIKOL.pdf"))
	assert.Equal(t, "", NormalizeBookName("   "))
}
