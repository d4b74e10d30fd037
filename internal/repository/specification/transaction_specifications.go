package specification

import "gorm.io/gorm"

type ByReference struct {
	Reference string
}

func (s ByReference) Apply(db *gorm.DB) *gorm.DB {
	// Qualified so the spec stays valid under the history join
	return db.Where("transactions.id = ?", s.Reference)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// NewestFirst orders transactions for the history view.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("transaction_date DESC")
}
