package contract

import (
	"context"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/specification"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Provider, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Provider, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
