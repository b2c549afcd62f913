package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. Only the SHA-256 digest of a token is stored.
type CredentialModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index:idx_credentials_account_kind"`
	TokenHash   string    `gorm:"type:char(64);uniqueIndex:idx_credentials_token_hash;not null"`
	Kind        string    `gorm:"type:varchar(20);not null;index:idx_credentials_account_kind"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	Blacklisted bool      `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
