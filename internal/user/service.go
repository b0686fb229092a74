package user

import (
	"context"
	"errors"

	"tenant-admin-api/internal/apperrors"
	"tenant-admin-api/internal/auth"
	"tenant-admin-api/internal/util"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = apperrors.NotFound("User not found")
	ErrEmailTaken   = apperrors.Conflict("A user with this email already exists")
	ErrLastAdmin    = apperrors.BadRequest("Cannot delete the last admin user")
)

type UserService struct {
	DB *gorm.DB
}

func (s *UserService) CreateUser(ctx context.Context, input UserCreate) (*User, error) {
	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := User{Email: input.Email, PasswordHash: hash, Role: input.Role}
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, input UserUpdate) (*User, error) {
	db := s.DB.WithContext(ctx)
	u, err := find(db, id)
	if err != nil {
		return nil, err
	}

	u.Email = input.Email
	u.Role = input.Role
	if input.Password != "" {
		hash, err := util.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := db.Save(u).Error; err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// DeleteUser refuses to remove the only remaining admin. The count and the
// delete share one transaction.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := find(tx, id)
		if err != nil {
			return err
		}

		if u.Role == auth.RoleAdmin {
			admins, err := countAdmins(tx)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		return tx.Delete(&User{}, u.ID).Error
	})
}

// SeedAdmin creates an admin row from cred when the table has no admin.
// It reports whether a row was written.
func (s *UserService) SeedAdmin(ctx context.Context, cred auth.Credential) (bool, error) {
	db := s.DB.WithContext(ctx)
	admins, err := countAdmins(db)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		return false, nil
	}

	_, err = s.CreateUser(ctx, UserCreate{Email: cred.Email, Password: cred.Password, Role: auth.RoleAdmin})
	if err != nil {
		return false, err
	}
	return true, nil
}

func find(db *gorm.DB, id int) (*User, error) {
	var u User
	if err := db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func countAdmins(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&User{}).Where("role = ?", auth.RoleAdmin).Count(&n).Error
	return n, err
}
