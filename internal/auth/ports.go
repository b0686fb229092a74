package auth

type AuthServicePort interface {
	Login(email, password string) (*LoginResponse, error)
	Verify(token string) (*Claims, error)
}

var _ AuthServicePort = (*AuthService)(nil)
