package service

import (
	"context"
	"encoding/json"
	"time"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/pkg/logger"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ICatalogService interface {
	ListProviders(ctx context.Context) ([]*dto.ProviderResponse, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	ListBundles(ctx context.Context, providerId, categoryId uuid.UUID) ([]*dto.BundleResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	log        logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		rdb:        rdb,
		log:        log,
	}
}

const (
	cacheKeyProviders  = "catalog:providers"
	cacheKeyCategories = "catalog:categories"
	catalogCacheTTL    = 5 * time.Minute
)

// defaultBundleTiers are written the first time a provider/category slot is
// browsed with no bundles on record. Ordered by ascending price.
type bundleTier struct {
	DataAmount string
	Duration   string
	Price      float64
}

var defaultBundleTiers = []bundleTier{
	{DataAmount: "1GB", Duration: "Valid for 24 hours", Price: 2.00},
	{DataAmount: "2GB", Duration: "Valid for 24 hours", Price: 3.50},
	{DataAmount: "5GB", Duration: "Valid for 30 hours", Price: 7.95},
	{DataAmount: "10GB", Duration: "Valid for 30 hours", Price: 12.00},
}

// catalog reads degrade to an empty list instead of failing; the selection
// screens render whatever they are given.
func (s *catalogService) ListProviders(ctx context.Context) ([]*dto.ProviderResponse, error) {
	var cached []*dto.ProviderResponse
	if s.readCache(ctx, cacheKeyProviders, &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	providers, err := uow.ProviderRepository().FindAll(ctx, specification.OrderByNameAsc{})
	if err != nil {
		s.log.Error("catalog", "Failed to list providers", map[string]interface{}{"error": err.Error()})
		return []*dto.ProviderResponse{}, nil
	}

	result := make([]*dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		result = append(result, &dto.ProviderResponse{
			Id:          p.Id,
			Name:        p.Name,
			Color:       p.Color,
			Icon:        p.Icon,
			Description: p.Description,
		})
	}

	s.writeCache(ctx, cacheKeyProviders, result)
	return result, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	var cached []*dto.CategoryResponse
	if s.readCache(ctx, cacheKeyCategories, &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderByNameAsc{})
	if err != nil {
		s.log.Error("catalog", "Failed to list categories", map[string]interface{}{"error": err.Error()})
		return []*dto.CategoryResponse{}, nil
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, &dto.CategoryResponse{
			Id:          c.Id,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}

	s.writeCache(ctx, cacheKeyCategories, result)
	return result, nil
}

func (s *catalogService) ListBundles(ctx context.Context, providerId, categoryId uuid.UUID) ([]*dto.BundleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	slot := specification.ForBundleSlot{ProviderID: providerId, CategoryID: categoryId}

	bundles, err := uow.BundleRepository().FindAll(ctx, slot, specification.OrderByPriceAsc{})
	if err != nil {
		s.log.Error("catalog", "Failed to list bundles", map[string]interface{}{
			"error":       err.Error(),
			"provider_id": providerId.String(),
			"category_id": categoryId.String(),
		})
		return []*dto.BundleResponse{}, nil
	}

	if len(bundles) == 0 {
		bundles = s.seedBundles(ctx, providerId, categoryId)
	}

	result := make([]*dto.BundleResponse, 0, len(bundles))
	for _, b := range bundles {
		result = append(result, &dto.BundleResponse{
			Id:         b.Id,
			ProviderId: b.ProviderId,
			CategoryId: b.CategoryId,
			Name:       b.Name,
			DataAmount: b.DataAmount,
			Duration:   b.Duration,
			Price:      b.Price,
		})
	}
	return result, nil
}

// seedBundles materialises the default tiers for an empty slot. The write is
// best effort: if persistence fails the tiers are still returned so the
// bundle screen never comes up empty.
func (s *catalogService) seedBundles(ctx context.Context, providerId, categoryId uuid.UUID) []*entity.Bundle {
	now := time.Now()
	seeded := make([]*entity.Bundle, 0, len(defaultBundleTiers))
	for _, tier := range defaultBundleTiers {
		seeded = append(seeded, &entity.Bundle{
			Id:         uuid.New(),
			ProviderId: providerId,
			CategoryId: categoryId,
			Name:       tier.DataAmount,
			DataAmount: tier.DataAmount,
			Duration:   tier.Duration,
			Price:      tier.Price,
			CreatedAt:  now,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		s.log.Warn("catalog", "Failed to begin bundle seeding", map[string]interface{}{"error": err.Error()})
		return seeded
	}
	defer uow.Rollback()

	if err := uow.BundleRepository().CreateBatch(ctx, seeded); err != nil {
		s.log.Warn("catalog", "Failed to persist seeded bundles", map[string]interface{}{
			"error":       err.Error(),
			"provider_id": providerId.String(),
			"category_id": categoryId.String(),
		})
		return seeded
	}
	if err := uow.Commit(); err != nil {
		s.log.Warn("catalog", "Failed to commit seeded bundles", map[string]interface{}{"error": err.Error()})
	}
	return seeded
}

func (s *catalogService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *catalogService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Cache misses and write failures are invisible to callers.
	if err := s.rdb.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
		s.log.Debug("catalog", "Failed to cache catalog payload", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
