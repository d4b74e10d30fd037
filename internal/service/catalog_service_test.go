package service

import (
	"context"
	"testing"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/contract"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeBundleRepo struct {
	contract.BundleRepository

	bundles []*entity.Bundle
	batches [][]*entity.Bundle
}

func (f *fakeBundleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bundle, error) {
	return f.bundles, nil
}

func (f *fakeBundleRepo) CreateBatch(ctx context.Context, bundles []*entity.Bundle) error {
	f.batches = append(f.batches, bundles)
	f.bundles = append(f.bundles, bundles...)
	return nil
}

type fakeCatalogUow struct {
	fakeUnitOfWork
	bundleRepo *fakeBundleRepo
}

func (f *fakeCatalogUow) BundleRepository() contract.BundleRepository {
	return f.bundleRepo
}

type fakeCatalogUowFactory struct {
	uow *fakeCatalogUow
}

func (f *fakeCatalogUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newCatalogFixture(existing []*entity.Bundle) (*fakeCatalogUow, ICatalogService) {
	uow := &fakeCatalogUow{bundleRepo: &fakeBundleRepo{bundles: existing}}
	svc := NewCatalogService(&fakeCatalogUowFactory{uow: uow}, nil, nopLogger{})
	return uow, svc
}

func TestListBundlesSeedsEmptySlot(t *testing.T) {
	uow, svc := newCatalogFixture(nil)

	providerId := uuid.New()
	categoryId := uuid.New()

	res, err := svc.ListBundles(context.Background(), providerId, categoryId)
	assert.NoError(t, err)
	assert.Len(t, res, 4)
	assert.Len(t, uow.bundleRepo.batches, 1, "seed tiers must be persisted")

	// The default tiers, ascending by price.
	assert.Equal(t, "1GB", res[0].DataAmount)
	assert.Equal(t, 2.00, res[0].Price)
	assert.Equal(t, "Valid for 24 hours", res[0].Duration)

	assert.Equal(t, "2GB", res[1].DataAmount)
	assert.Equal(t, 3.50, res[1].Price)

	assert.Equal(t, "5GB", res[2].DataAmount)
	assert.Equal(t, 7.95, res[2].Price)
	assert.Equal(t, "Valid for 30 hours", res[2].Duration)

	assert.Equal(t, "10GB", res[3].DataAmount)
	assert.Equal(t, 12.00, res[3].Price)

	for i := 1; i < len(res); i++ {
		assert.Less(t, res[i-1].Price, res[i].Price)
	}

	// Every seeded row belongs to the requested slot.
	for _, b := range res {
		assert.Equal(t, providerId, b.ProviderId)
		assert.Equal(t, categoryId, b.CategoryId)
	}
}

func TestListBundlesSkipsSeedingWhenPopulated(t *testing.T) {
	existing := []*entity.Bundle{
		{Id: uuid.New(), Name: "500MB", DataAmount: "500MB", Duration: "Valid for 24 hours", Price: 1.00},
	}
	uow, svc := newCatalogFixture(existing)

	res, err := svc.ListBundles(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Empty(t, uow.bundleRepo.batches)
	assert.Equal(t, "500MB", res[0].DataAmount)
}
