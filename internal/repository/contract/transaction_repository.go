package contract

import (
	"context"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/specification"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateStatus moves a pending transaction to its terminal state.
	UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) error

	// FindAllWithDetails joins bundle and provider names for history rendering.
	FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)

	CreateEvent(ctx context.Context, event *entity.TransactionEvent) error
	FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.TransactionEvent, error)
}
