package user

import "context"

type UserServiceAPI interface {
	CreateUser(ctx context.Context, input UserCreate) (*User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id int, input UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int) error
}

var _ UserServiceAPI = (*UserService)(nil)
