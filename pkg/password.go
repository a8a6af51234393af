package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash suitable for the users.password_hash column.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func ComparePassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
