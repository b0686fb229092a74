// Package testhelpers holds fixtures shared by package tests: an isolated
// in-memory SQLite database and signed bearer tokens.
package testhelpers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tenant-admin-api/internal/auth"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const Secret = "test-secret"

// NewDB opens an in-memory database unique to the running test and migrates
// the given models.
func NewDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}
	return db
}

// Verifier returns the token service used by route tests.
func Verifier() *auth.AuthService {
	return auth.NewAuthService(Secret, time.Hour, auth.DefaultCredentials())
}

// Token signs a valid token for role.
func Token(t *testing.T, role string) string {
	t.Helper()
	tok, err := Verifier().IssueToken(auth.Credential{Email: role + "@example.com", Role: role, UserID: 1})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// Do sends a request with an optional JSON body and bearer token.
func Do(r http.Handler, method, path, token string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
