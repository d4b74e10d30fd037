package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByPhoneNumber struct {
	PhoneNumber string
}

func (s ByPhoneNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("phone_number = ?", s.PhoneNumber)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ActiveUsers struct{}

func (s ActiveUsers) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

// Token Specs

type ByTokenHash struct {
	Hash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.Hash)
}
