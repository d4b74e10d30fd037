package specification

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ForBundleSlot filters bundles to one (provider, category) pair.
type ForBundleSlot struct {
	ProviderID uuid.UUID
	CategoryID uuid.UUID
}

func (s ForBundleSlot) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("provider_id = ? AND category_id = ?", s.ProviderID, s.CategoryID)
}

// OrderByNameAsc is the canonical ordering for provider and category lists.
type OrderByNameAsc struct{}

func (s OrderByNameAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// OrderByPriceAsc is the canonical ordering for bundle lists.
type OrderByPriceAsc struct{}

func (s OrderByPriceAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("price ASC")
}
