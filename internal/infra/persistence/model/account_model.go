// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is the GORM mapping for the accounts table. OpenID is a
// pointer so unbound accounts store NULL and stay outside the unique index.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Mobile       string    `gorm:"size:16;not null;uniqueIndex:uidx_accounts_mobile"`
	PasswordHash string    `gorm:"size:128"`
	OpenID       *string   `gorm:"column:open_id;size:64;uniqueIndex:uidx_accounts_open_id"`
	Name         string    `gorm:"size:64;not null"`
	Avatar       string    `gorm:"size:256"`
	LastActiveAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name.
func (AccountModel) TableName() string {
	return "accounts"
}
