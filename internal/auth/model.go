package auth

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Credential is one entry of the login table. Passwords are compared as
// plaintext; this table is independent of the users table.
type Credential struct {
	Email    string
	Password string
	Role     string
	UserID   int
}

// DefaultCredentials is the built-in login table.
func DefaultCredentials() []Credential {
	return []Credential{
		{Email: "admin@example.com", Password: "admin123", Role: RoleAdmin, UserID: 1},
		{Email: "viewer@example.com", Password: "viewer123", Role: RoleViewer, UserID: 2},
	}
}

// Claims is the access token payload: sub, role, user_id, exp.
type Claims struct {
	Role   string `json:"role"`
	UserID int    `json:"user_id"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string { return c.Subject }

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	Email       string `json:"email"`
}
