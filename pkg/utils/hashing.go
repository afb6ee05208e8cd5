package utils

import (
	"golang.org/x/crypto/bcrypt"
)

func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(hash), err
}

// SecretMatches reports whether secret hashes to hash. Malformed hashes
// never match.
func SecretMatches(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
