package sourceconfig

import "context"

type SourceConfigServiceAPI interface {
	UpsertSourceConfig(ctx context.Context, customerID int, input SourceConfigInput) (*SourceConfig, error)
	GetSourceConfig(ctx context.Context, customerID int) (*SourceConfig, error)
}

// Encryptor seals db_password values before they reach the table.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

var _ SourceConfigServiceAPI = (*SourceConfigService)(nil)
