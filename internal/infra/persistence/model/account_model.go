// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"

	"chaincast/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Provider     string    `gorm:"type:varchar(20);not null;default:'local'"`
	IsVerified   bool      `gorm:"not null;default:false"`
	TokenVersion int       `gorm:"not null;default:0"`

	OTP       string     `gorm:"column:otp;type:varchar(10)"`
	OTPExpiry *time.Time `gorm:"column:otp_expiry"`

	ResetTokenHash   string     `gorm:"type:varchar(64);index"`
	ResetTokenExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *AccountModel) ToDomain() *entity.Account {
	return &entity.Account{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Provider:         entity.ProviderType(m.Provider),
		IsVerified:       m.IsVerified,
		TokenVersion:     m.TokenVersion,
		OTP:              m.OTP,
		OTPExpiry:        m.OTPExpiry,
		ResetTokenHash:   m.ResetTokenHash,
		ResetTokenExpiry: m.ResetTokenExpiry,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromAccountDomain maps a domain entity to its persistence model.
func FromAccountDomain(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:               account.ID,
		Name:             account.Name,
		Email:            account.Email,
		PasswordHash:     account.PasswordHash,
		Provider:         account.Provider.String(),
		IsVerified:       account.IsVerified,
		TokenVersion:     account.TokenVersion,
		OTP:              account.OTP,
		OTPExpiry:        account.OTPExpiry,
		ResetTokenHash:   account.ResetTokenHash,
		ResetTokenExpiry: account.ResetTokenExpiry,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
}
