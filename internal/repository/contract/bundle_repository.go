package contract

import (
	"context"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/specification"
)

type BundleRepository interface {
	Create(ctx context.Context, bundle *entity.Bundle) error
	CreateBatch(ctx context.Context, bundles []*entity.Bundle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bundle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bundle, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
