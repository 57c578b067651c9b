package services

// TokenService issues and validates signed, time-limited bearer tokens whose
// subject is the username.
type TokenService interface {
	Issue(subject string) (string, error)
	Validate(token string) (string, error)
}
