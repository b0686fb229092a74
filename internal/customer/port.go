package customer

import "context"

type CustomerServiceAPI interface {
	CreateCustomer(ctx context.Context, input CustomerInput) (*Customer, error)
	GetAllCustomers(ctx context.Context) ([]Customer, error)
	GetCustomer(ctx context.Context, id int) (*Customer, error)
	UpdateCustomer(ctx context.Context, id int, input CustomerInput) (*Customer, error)
	DeleteCustomer(ctx context.Context, id int) error
}

var _ CustomerServiceAPI = (*CustomerService)(nil)
