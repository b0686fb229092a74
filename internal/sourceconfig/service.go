package sourceconfig

import (
	"context"
	"errors"
	"fmt"

	"tenant-admin-api/internal/apperrors"
	"tenant-admin-api/internal/customer"

	"gorm.io/gorm"
)

var ErrSourceConfigNotFound = apperrors.NotFound("Source config not found")

type SourceConfigService struct {
	DB        *gorm.DB
	Encryptor Encryptor
}

// UpsertSourceConfig creates the customer's config or overwrites every field
// of the existing row in place.
func (s *SourceConfigService) UpsertSourceConfig(ctx context.Context, customerID int, input SourceConfigInput) (*SourceConfig, error) {
	sealed, err := s.Encryptor.Encrypt(input.DBPassword)
	if err != nil {
		return nil, fmt.Errorf("encrypt db_password: %w", err)
	}

	var cfg SourceConfig
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := customer.Find(tx, customerID); err != nil {
			return err
		}

		err := tx.Where("customer_id = ?", customerID).First(&cfg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cfg = SourceConfig{CustomerID: customerID}
		} else if err != nil {
			return err
		}

		cfg.DBHost = input.DBHost
		cfg.DBPort = input.DBPort
		cfg.DBUsername = input.DBUsername
		cfg.DBPassword = sealed
		cfg.DBName = input.DBName
		return tx.Save(&cfg).Error
	})
	if err != nil {
		return nil, err
	}

	cfg.DBPassword = input.DBPassword
	return &cfg, nil
}

func (s *SourceConfigService) GetSourceConfig(ctx context.Context, customerID int) (*SourceConfig, error) {
	var cfg SourceConfig
	if err := s.DB.WithContext(ctx).Where("customer_id = ?", customerID).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSourceConfigNotFound
		}
		return nil, err
	}

	plain, err := s.Encryptor.Decrypt(cfg.DBPassword)
	if err != nil {
		return nil, fmt.Errorf("decrypt db_password for customer %d: %w", customerID, err)
	}
	cfg.DBPassword = plain
	return &cfg, nil
}
