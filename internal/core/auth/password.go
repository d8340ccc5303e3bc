// Package auth holds the credential primitives: the bcrypt password hasher
// and the JWT token issuer. Both are pure computation over process-wide
// configuration; neither touches the store.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted one-way hash of plaintext. Two calls with
// the same input produce different strings; both verify.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. It fails
// closed: a malformed hash yields false, never an error or a panic. bcrypt's
// comparison is constant-time with respect to the mismatch position.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
