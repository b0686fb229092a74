package sourceconfig

import "time"

// SourceConfig holds connection settings for a customer's source database.
// DBPassword is ciphertext in the table and plaintext everywhere else.
type SourceConfig struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int       `gorm:"not null;index" json:"customer_id"`
	DBHost     string    `gorm:"size:255;not null" json:"db_host"`
	DBPort     int       `gorm:"not null" json:"db_port"`
	DBUsername string    `gorm:"size:255;not null" json:"db_username"`
	DBPassword string    `gorm:"type:text" json:"db_password"`
	DBName     string    `gorm:"size:255;not null" json:"db_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SourceConfigInput struct {
	DBHost     string `json:"db_host" binding:"required"`
	DBPort     int    `json:"db_port" binding:"required,min=1,max=65535"`
	DBUsername string `json:"db_username" binding:"required"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name" binding:"required"`
}

func (SourceConfig) TableName() string {
	return "source_configs"
}
