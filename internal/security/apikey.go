package security

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// API keys are presented as "<key id>.<secret>". The key id locates the
// stored record; the secret is verified against its bcrypt hash.

var ErrMalformedAPIKey = errors.New("malformed api key")

// GenerateAPIKey returns a new key id, the plaintext secret (shown to the
// tenant exactly once) and the bcrypt hash to store.
func GenerateAPIKey() (id, secret, secretHash string, err error) {
	id = uuid.NewString()

	raw := make([]byte, 24)
	if _, err = rand.Read(raw); err != nil {
		return "", "", "", fmt.Errorf("generate api key secret: %w", err)
	}
	secret = hex.EncodeToString(raw)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", "", fmt.Errorf("hash api key secret: %w", err)
	}
	return id, secret, string(hash), nil
}

// SplitAPIKey parses a presented key into its id and secret parts.
func SplitAPIKey(presented string) (id, secret string, err error) {
	parts := strings.SplitN(presented, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedAPIKey
	}
	return parts[0], parts[1], nil
}

// VerifyAPIKey checks a presented secret against the stored bcrypt hash.
func VerifyAPIKey(secretHash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(secret)) == nil
}
