package serviceimpl

import (
	"golang.org/x/crypto/bcrypt"

	"taskmanager-api/domain/services"
)

// BcryptHasher ใช้ bcrypt ซึ่งมี salt อยู่ใน digest และ compare แบบ constant-time
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) services.PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
