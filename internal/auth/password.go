package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Encoding identifies the storage format of a persisted credential.
// Three formats exist historically: bcrypt (current), a bare SHA-256 hex
// digest, and plaintext from the earliest data.
type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingBcrypt
	EncodingSHA256
	EncodingPlaintext
)

// DetectEncoding classifies a stored credential string. Detection order is
// fixed: bcrypt marker first, then digest shape, then plaintext. Anything
// that is neither empty, bcrypt, nor a 64-char hex digest is plaintext.
func DetectEncoding(encoded string) Encoding {
	switch {
	case encoded == "":
		return EncodingNone
	case strings.HasPrefix(encoded, "$2a$"),
		strings.HasPrefix(encoded, "$2b$"),
		strings.HasPrefix(encoded, "$2y$"):
		return EncodingBcrypt
	case isSHA256Digest(encoded):
		return EncodingSHA256
	default:
		return EncodingPlaintext
	}
}

func isSHA256Digest(s string) bool {
	if len(s) != hex.EncodedLen(sha256.Size) {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// PasswordHasher produces bcrypt hashes and verifies passwords against
// any of the historical encodings.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash encodes password with bcrypt. Output differs between calls for the
// same input because of salting.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored credential under
// whichever encoding the credential uses. Malformed input never panics or
// errors; it simply fails every check. An empty stored credential is
// always false.
func (h *PasswordHasher) Verify(password, encoded string) bool {
	switch DetectEncoding(encoded) {
	case EncodingBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
	case EncodingSHA256:
		sum := sha256.Sum256([]byte(password))
		digest := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(encoded))) == 1
	case EncodingPlaintext:
		return subtle.ConstantTimeCompare([]byte(password), []byte(encoded)) == 1
	default:
		return false
	}
}
