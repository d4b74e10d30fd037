package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/pkg/database"
	"bundle-store-be/pkg/payment"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TransactionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Catalog Repositories", func(t *testing.T) {
		count, err := uow.ProviderRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Provider count: %d", count)

		count, err = uow.BundleRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Bundle count: %d", count)
	})

	t.Run("Check Transactional Purchase Flow", func(t *testing.T) {
		ctx := context.Background()

		hash := "not-a-real-hash"
		user := &entity.User{
			Id:           uuid.New(),
			PhoneNumber:  "+25261" + uuid.New().String()[:8],
			FullName:     "Integration Test User",
			PasswordHash: &hash,
			Status:       entity.UserStatusActive,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		provider := &entity.Provider{Id: uuid.New(), Name: "Integration Provider", Color: "#000000"}
		err = uow.ProviderRepository().Create(ctx, provider)
		assert.NoError(t, err)

		category := &entity.BundleCategory{Id: uuid.New(), Name: "Integration Category"}
		err = uow.CategoryRepository().Create(ctx, category)
		assert.NoError(t, err)

		bundle := &entity.Bundle{
			Id:         uuid.New(),
			ProviderId: provider.Id,
			CategoryId: category.Id,
			Name:       "1GB",
			DataAmount: "1GB",
			Duration:   "Valid for 24 hours",
			Price:      2.00,
		}
		err = uow.BundleRepository().Create(ctx, bundle)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		ref := payment.NewReference()
		tx := &entity.Transaction{
			Id:              ref,
			UserId:          user.Id,
			BundleId:        bundle.Id,
			ProviderId:      provider.Id,
			Amount:          2.00,
			PaymentMethod:   "evc",
			PhoneNumber:     user.PhoneNumber,
			Status:          entity.TransactionStatusPending,
			TransactionDate: time.Now(),
		}
		err = uow.TransactionRepository().Create(ctx, tx)
		assert.NoError(t, err)

		err = uow.TransactionRepository().UpdateStatus(ctx, ref, entity.TransactionStatusCompleted)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Joined read used by history and receipts
		stored, err := uow.TransactionRepository().FindOneWithDetails(ctx,
			specification.ByReference{Reference: ref},
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, stored) {
			assert.Equal(t, entity.TransactionStatusCompleted, stored.Status)
			assert.Equal(t, "1GB", stored.BundleName)
			assert.Equal(t, "Integration Provider", stored.ProviderName)
		}

		t.Log("Successfully recorded a purchase inside a Transaction")
	})
}
