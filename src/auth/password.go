package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword runs the plaintext through bcrypt at the default cost. The
// cost factor is what makes brute-forcing stolen hashes expensive.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A corrupt or malformed stored hash fails closed.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
