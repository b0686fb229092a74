package customer

import (
	"context"
	"errors"

	"tenant-admin-api/internal/apperrors"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = apperrors.NotFound("Customer not found")
	ErrEmailTaken       = apperrors.Conflict("A customer with this email already exists")
)

// Tables whose rows belong to a customer and are removed with it.
var dependentTables = []string{"source_configs", "pipelines"}

type CustomerService struct {
	DB *gorm.DB
}

func (s *CustomerService) CreateCustomer(ctx context.Context, input CustomerInput) (*Customer, error) {
	c := Customer{
		Name:     input.Name,
		Email:    input.Email,
		Timezone: input.Timezone,
	}
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]Customer, error) {
	customers := []Customer{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return Find(s.DB.WithContext(ctx), id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, input CustomerInput) (*Customer, error) {
	db := s.DB.WithContext(ctx)
	c, err := Find(db, id)
	if err != nil {
		return nil, err
	}

	c.Name = input.Name
	c.Email = input.Email
	c.Timezone = input.Timezone
	if err := db.Save(c).Error; err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return c, nil
}

// DeleteCustomer removes the customer together with its source config and
// pipeline rows in one transaction.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := Find(tx, id); err != nil {
			return err
		}
		for _, table := range dependentTables {
			if err := tx.Exec("DELETE FROM "+table+" WHERE customer_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&Customer{}, id).Error
	})
}

// Find loads a customer by id on db, which may be a transaction.
func Find(db *gorm.DB, id int) (*Customer, error) {
	var c Customer
	if err := db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}
