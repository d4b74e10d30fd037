// FILE: internal/entity/catalog_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a telecom operator offering bundles. Reference data, read-only
// to the purchase pipeline.
type Provider struct {
	Id          uuid.UUID
	Name        string
	Color       string
	Icon        string
	Description string
	CreatedAt   time.Time
}

type BundleCategory struct {
	Id          uuid.UUID
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
}

// Bundle is a purchasable allotment of data with a price and validity window.
type Bundle struct {
	Id         uuid.UUID
	ProviderId uuid.UUID
	CategoryId uuid.UUID
	Name       string
	DataAmount string
	Duration   string
	Price      float64
	CreatedAt  time.Time
}
