package model

import (
	"time"

	"github.com/google/uuid"
)

type Provider struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Color       string    `gorm:"type:varchar(16)"`
	Icon        string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Provider) TableName() string {
	return "providers"
}

type BundleCategory struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (BundleCategory) TableName() string {
	return "bundle_categories"
}

// Bundle rows are append-only from the client's perspective. The
// (provider_id, category_id) pair is intentionally NOT unique per bundle
// name: seeding re-checks emptiness per call and tolerates duplicates.
type Bundle struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProviderId uuid.UUID `gorm:"type:uuid;not null;index:idx_bundles_slot"`
	CategoryId uuid.UUID `gorm:"type:uuid;not null;index:idx_bundles_slot"`
	Name       string    `gorm:"type:varchar(100);not null"`
	DataAmount string    `gorm:"type:varchar(50);not null"`
	Duration   string    `gorm:"type:varchar(100);not null"`
	Price      float64   `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Bundle) TableName() string {
	return "bundles"
}
