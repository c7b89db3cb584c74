package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// GenerateVerificationCode generates a 6-digit email verification code
// from the crypto source, so codes are not guessable from send time.
func GenerateVerificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// The crypto source should never fail; fall back to the clock
		n = big.NewInt(time.Now().UnixNano() % 1000000)
	}
	return fmt.Sprintf("%06d", n)
}

// NormalizeBookName canonicalizes a handout filename for lookups so
// "Cebuano.PDF " and "cebuano.pdf" land on the same row.
func NormalizeBookName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
