// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are generated in Go (UUIDv7).
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email                string    `gorm:"type:varchar(320);uniqueIndex:idx_accounts_email;not null"`
	Name                 string    `gorm:"type:varchar(100)"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	Role                 string    `gorm:"type:varchar(20);not null"`
	Active               bool      `gorm:"not null"`
	Provider             string    `gorm:"type:varchar(20);not null"`
	ProviderUserID       string    `gorm:"type:varchar(255)"`
	ProviderAccessGrant  string    `gorm:"type:text"`
	ProviderRefreshGrant string    `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Credentials []CredentialModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
