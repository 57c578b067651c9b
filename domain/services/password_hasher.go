package services

// PasswordHasher hashes and verifies passwords with a salted adaptive hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
