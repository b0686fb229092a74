package user

import (
	"context"
	"testing"

	"tenant-admin-api/internal/testhelpers"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewDB(t, &User{})
	return &UserService{DB: db}, db
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	cleanup := func() { _ = db.Close() }
	return gdb, mock, cleanup
}

func mustCreate(t *testing.T, svc *UserService, email, role string) *User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), UserCreate{Email: email, Password: "secret1", Role: role})
	if err != nil {
		t.Fatalf("create %s: %v", email, err)
	}
	return u
}
