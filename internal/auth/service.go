package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"tenant-admin-api/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = apperrors.Unauthorized("Invalid credentials")
	ErrTokenExpired       = apperrors.Unauthorized("Token expired")
	ErrInvalidToken       = apperrors.Unauthorized("Invalid token")
)

const DefaultTokenTTL = 1440 * time.Minute

type AuthService struct {
	secret      []byte
	ttl         time.Duration
	credentials map[string]Credential

	// Now is the clock used for issuing and validating tokens.
	Now func() time.Time
}

func NewAuthService(secret string, ttl time.Duration, credentials []Credential) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	table := make(map[string]Credential, len(credentials))
	for _, c := range credentials {
		table[c.Email] = c
	}
	return &AuthService{
		secret:      []byte(secret),
		ttl:         ttl,
		credentials: table,
		Now:         time.Now,
	}
}

func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	cred, ok := s.credentials[email]
	if !ok || subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(cred)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        cred.Role,
		Email:       cred.Email,
	}, nil
}

func (s *AuthService) IssueToken(cred Credential) (string, error) {
	now := s.Now()
	claims := Claims{
		Role:   cred.Role,
		UserID: cred.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cred.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry of an access token.
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
