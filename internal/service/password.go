package service

import (
	"golang.org/x/crypto/bcrypt"
)

// hashPassword returns nil for an empty password. A nil hash at rest means
// the record can never pass the deletion gate.
func hashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, nil
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
