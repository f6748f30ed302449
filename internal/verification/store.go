// Package verification abstracts the phone verification-code capability.
// Codes live behind an injected Store so the application never holds them as
// shared global state; tests and development use the in-memory store, a
// durable implementation can be swapped in without touching callers.
package verification

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var (
	ErrCodeNotFound = errors.New("no verification code for this phone")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// Store keeps one active code per phone number.
type Store interface {
	// Put records a code for the phone, replacing any previous one.
	Put(phone, code string, ttl time.Duration) error
	// Consume checks the code and removes it on success. A wrong code does
	// not consume the stored one.
	Consume(phone, code string) error
}

// GenerateCode returns a random 6-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
