// Package token issues and validates the compact signed tokens used as
// bearer credentials.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claim set plus the admin flag.
type Claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin"`
}

// Service signs and validates HS256 JWTs with a process-wide secret.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewService(secret, issuer string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue produces a signed token whose subject is the user's email.
func (s *Service) Issue(subject string, admin bool) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Admin: admin,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Validate reports whether tok is well-formed, carries a valid HS256
// signature and has not expired. It is total: empty, malformed, tampered
// and expired tokens all yield false, and the caller cannot tell the
// failure causes apart.
func (s *Service) Validate(tok string) bool {
	if tok == "" {
		return false
	}
	_, err := s.parse(tok)
	return err == nil
}

// Claims returns the validated claim set of tok.
func (s *Service) Claims(tok string) (Claims, error) {
	claims, err := s.parse(tok)
	if err != nil {
		return Claims{}, err
	}
	return *claims, nil
}

// Subject decodes the subject of a token assumed already validated.
// It fails only on structurally invalid input.
func (s *Service) Subject(tok string) (string, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *Service) parse(tok string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims, nil
}
