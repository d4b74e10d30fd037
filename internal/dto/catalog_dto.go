// FILE: internal/dto/catalog_dto.go
package dto

import "github.com/google/uuid"

type ProviderResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

type BundleResponse struct {
	Id         uuid.UUID `json:"id"`
	ProviderId uuid.UUID `json:"provider_id"`
	CategoryId uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	DataAmount string    `json:"data_amount"`
	Duration   string    `json:"duration"`
	Price      float64   `json:"price"`
}
