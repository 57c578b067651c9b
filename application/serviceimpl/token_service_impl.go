package serviceimpl

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager-api/domain/services"
)

// JWTService signs HS256 tokens with a process-wide secret that is set once
// at construction and never changes.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock เปลี่ยนนาฬิกาที่ใช้ทั้งตอน issue และ validate
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

var _ services.TokenService = (*JWTService)(nil)

func (s *JWTService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}

	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", services.ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", services.ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", services.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", services.ErrInvalidToken
	}

	return claims.Subject, nil
}
