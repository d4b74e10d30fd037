package implementation

import (
	"context"
	"errors"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/mapper"
	"bundle-store-be/internal/model"
	"bundle-store-be/internal/repository/contract"
	"bundle-store-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// --- Provider ---

type ProviderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewProviderRepository(db *gorm.DB) contract.ProviderRepository {
	return &ProviderRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *ProviderRepositoryImpl) Create(ctx context.Context, provider *entity.Provider) error {
	modelProvider := r.mapper.ProviderToModel(provider)
	if err := r.db.WithContext(ctx).Create(modelProvider).Error; err != nil {
		return err
	}
	*provider = *r.mapper.ProviderToEntity(modelProvider)
	return nil
}

func (r *ProviderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Provider, error) {
	var modelProvider model.Provider
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProvider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ProviderToEntity(&modelProvider), nil
}

func (r *ProviderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Provider, error) {
	var modelProviders []*model.Provider
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProviders).Error; err != nil {
		return nil, err
	}

	return r.mapper.ProvidersToEntities(modelProviders), nil
}

func (r *ProviderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Provider{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- BundleCategory ---

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.BundleCategory) error {
	modelCategory := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(modelCategory).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(modelCategory)
	return nil
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BundleCategory, error) {
	var modelCategory model.BundleCategory
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.CategoryToEntity(&modelCategory), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BundleCategory, error) {
	var modelCategories []*model.BundleCategory
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelCategories).Error; err != nil {
		return nil, err
	}

	return r.mapper.CategoriesToEntities(modelCategories), nil
}

func (r *CategoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.BundleCategory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Bundle ---

type BundleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewBundleRepository(db *gorm.DB) contract.BundleRepository {
	return &BundleRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *BundleRepositoryImpl) Create(ctx context.Context, bundle *entity.Bundle) error {
	modelBundle := r.mapper.BundleToModel(bundle)
	if err := r.db.WithContext(ctx).Create(modelBundle).Error; err != nil {
		return err
	}
	*bundle = *r.mapper.BundleToEntity(modelBundle)
	return nil
}

func (r *BundleRepositoryImpl) CreateBatch(ctx context.Context, bundles []*entity.Bundle) error {
	if len(bundles) == 0 {
		return nil
	}
	modelBundles := make([]*model.Bundle, len(bundles))
	for i, b := range bundles {
		modelBundles[i] = r.mapper.BundleToModel(b)
	}
	if err := r.db.WithContext(ctx).Create(&modelBundles).Error; err != nil {
		return err
	}
	for i, mb := range modelBundles {
		*bundles[i] = *r.mapper.BundleToEntity(mb)
	}
	return nil
}

func (r *BundleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bundle, error) {
	var modelBundle model.Bundle
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelBundle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.BundleToEntity(&modelBundle), nil
}

func (r *BundleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bundle, error) {
	var modelBundles []*model.Bundle
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelBundles).Error; err != nil {
		return nil, err
	}

	return r.mapper.BundlesToEntities(modelBundles), nil
}

func (r *BundleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Bundle{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
