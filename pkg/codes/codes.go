// Package codes generates the human-readable appointment codes surfaced to
// callers, e.g. "CM-7K2Q9X". Codes are random, uppercase and unambiguous to
// read over the phone; uniqueness is enforced by the storage layer.
package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInvalidLength = errors.New("invalid code length")

const (
	// DefaultPrefix is the stable prefix of appointment codes.
	DefaultPrefix = "CM"

	// DefaultSuffixLength is the number of random characters after the prefix.
	DefaultSuffixLength = 6

	// Uppercase alphanumeric, the full A-Z 0-9 set.
	charsetUpperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Config holds settings for appointment code generation.
type Config struct {
	Prefix string
	Length int
}

// DefaultConfig returns the standard "CM-XXXXXX" shape.
func DefaultConfig() Config {
	return Config{Prefix: DefaultPrefix, Length: DefaultSuffixLength}
}

// NewAppointmentCode generates a code of the form "<prefix>-<suffix>".
func NewAppointmentCode(cfg Config) (string, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	length := cfg.Length
	if length == 0 {
		length = DefaultSuffixLength
	}
	suffix, err := generateFromCharset(length, charsetUpperAlphanumeric)
	if err != nil {
		return "", err
	}
	return prefix + "-" + suffix, nil
}

// NormalizeCode normalizes a code for lookup (uppercase, trim whitespace).
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func generateFromCharset(length int, charset string) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	result := make([]byte, length)
	max := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		result[i] = charset[n.Int64()]
	}

	return string(result), nil
}
