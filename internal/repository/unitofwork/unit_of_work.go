package unitofwork

import (
	"context"

	"bundle-store-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProviderRepository() contract.ProviderRepository
	CategoryRepository() contract.CategoryRepository
	BundleRepository() contract.BundleRepository
	TransactionRepository() contract.TransactionRepository
}
