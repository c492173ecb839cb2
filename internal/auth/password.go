package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the fixed work factor for stored password hashes.
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from a plaintext password.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches the stored digest.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
