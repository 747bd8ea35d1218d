package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. The salt is randomized per
// call, so hashing the same plaintext twice yields different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. Any bcrypt failure,
// including a corrupt stored hash, counts as a non-match.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
