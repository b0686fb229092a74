package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

type mockAuthService struct {
	LoginFn  func(email, password string) (*LoginResponse, error)
	VerifyFn func(token string) (*Claims, error)
}

func (m *mockAuthService) Login(email, password string) (*LoginResponse, error) {
	if m.LoginFn == nil {
		return nil, assertErr("Login not implemented")
	}
	return m.LoginFn(email, password)
}

func (m *mockAuthService) Verify(token string) (*Claims, error) {
	if m.VerifyFn == nil {
		return nil, assertErr("Verify not implemented")
	}
	return m.VerifyFn(token)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func newTestService(t *testing.T, now time.Time) *AuthService {
	t.Helper()
	svc := NewAuthService(testSecret, DefaultTokenTTL, DefaultCredentials())
	svc.Now = func() time.Time { return now }
	return svc
}

func setupAuthRouter(svc AuthServicePort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, nil)
	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func requireContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q to contain %q", s, sub)
	}
}
