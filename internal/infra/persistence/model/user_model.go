// Package model contains the GORM-specific persistence structs. They mirror
// database tables and stay separate from the pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// PasswordHash never crosses into the domain entity; the repository exposes it
// only through the credential lookup used by the login flow.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(40);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	AvatarURL    string    `gorm:"type:text"`
	DarkMode     bool      `gorm:"not null;default:true"`
	UserGroup    string    `gorm:"type:varchar(20);not null;default:'default';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
