package contract

import (
	"context"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/specification"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.BundleCategory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BundleCategory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BundleCategory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
