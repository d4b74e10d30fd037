package mapper

import (
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ProviderToEntity(p *model.Provider) *entity.Provider {
	if p == nil {
		return nil
	}
	return &entity.Provider{
		Id:          p.Id,
		Name:        p.Name,
		Color:       p.Color,
		Icon:        p.Icon,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *CatalogMapper) ProviderToModel(p *entity.Provider) *model.Provider {
	if p == nil {
		return nil
	}
	return &model.Provider{
		Id:          p.Id,
		Name:        p.Name,
		Color:       p.Color,
		Icon:        p.Icon,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func (m *CatalogMapper) ProvidersToEntities(providers []*model.Provider) []*entity.Provider {
	entities := make([]*entity.Provider, len(providers))
	for i, p := range providers {
		entities[i] = m.ProviderToEntity(p)
	}
	return entities
}

func (m *CatalogMapper) CategoryToEntity(c *model.BundleCategory) *entity.BundleCategory {
	if c == nil {
		return nil
	}
	return &entity.BundleCategory{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CatalogMapper) CategoryToModel(c *entity.BundleCategory) *model.BundleCategory {
	if c == nil {
		return nil
	}
	return &model.BundleCategory{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *CatalogMapper) CategoriesToEntities(categories []*model.BundleCategory) []*entity.BundleCategory {
	entities := make([]*entity.BundleCategory, len(categories))
	for i, c := range categories {
		entities[i] = m.CategoryToEntity(c)
	}
	return entities
}

func (m *CatalogMapper) BundleToEntity(b *model.Bundle) *entity.Bundle {
	if b == nil {
		return nil
	}
	return &entity.Bundle{
		Id:         b.Id,
		ProviderId: b.ProviderId,
		CategoryId: b.CategoryId,
		Name:       b.Name,
		DataAmount: b.DataAmount,
		Duration:   b.Duration,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
	}
}

func (m *CatalogMapper) BundleToModel(b *entity.Bundle) *model.Bundle {
	if b == nil {
		return nil
	}
	return &model.Bundle{
		Id:         b.Id,
		ProviderId: b.ProviderId,
		CategoryId: b.CategoryId,
		Name:       b.Name,
		DataAmount: b.DataAmount,
		Duration:   b.Duration,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
	}
}

func (m *CatalogMapper) BundlesToEntities(bundles []*model.Bundle) []*entity.Bundle {
	entities := make([]*entity.Bundle, len(bundles))
	for i, b := range bundles {
		entities[i] = m.BundleToEntity(b)
	}
	return entities
}
