package service

import (
	"context"
	"errors"
	"testing"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/contract"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/pkg/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeTransactionRepo records calls so tests can assert on what reached the
// persistence layer.
type fakeTransactionRepo struct {
	contract.TransactionRepository

	created       []*entity.Transaction
	statusUpdates map[string]entity.TransactionStatus
	findOneResult *entity.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	f.created = append(f.created, tx)
	return nil
}

func (f *fakeTransactionRepo) UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[string]entity.TransactionStatus{}
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeTransactionRepo) FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	return f.findOneResult, nil
}

func (f *fakeTransactionRepo) FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	if f.findOneResult == nil {
		return nil, nil
	}
	return []*entity.Transaction{f.findOneResult}, nil
}

type fakeUnitOfWork struct {
	unitofwork.UnitOfWork

	txRepo     *fakeTransactionRepo
	began      bool
	committed  bool
	rolledBack bool
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { f.began = true; return nil }
func (f *fakeUnitOfWork) Commit() error                   { f.committed = true; return nil }
func (f *fakeUnitOfWork) Rollback() error                 { f.rolledBack = true; return nil }

func (f *fakeUnitOfWork) TransactionRepository() contract.TransactionRepository {
	return f.txRepo
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

func newCheckoutFixture(gateway payment.Gateway) (*fakeUnitOfWork, IPurchaseService) {
	uow := &fakeUnitOfWork{txRepo: &fakeTransactionRepo{}}
	svc := NewPurchaseService(&fakeUowFactory{uow: uow}, gateway, noopPublisher{}, nil)
	return uow, svc
}

func validCheckoutRequest() *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		ProviderId:    uuid.New().String(),
		ProviderName:  "Somtel",
		BundleId:      uuid.New().String(),
		BundleName:    "1GB",
		DataAmount:    "1GB",
		Duration:      "Valid for 24 hours",
		Price:         2.00,
		PhoneNumber:   "+252611231234",
		PaymentMethod: "evc",
	}
}

func TestCheckoutRejectsUnknownMethodBeforePersistence(t *testing.T) {
	uow, svc := newCheckoutFixture(payment.NewSimulator(0))

	req := validCheckoutRequest()
	req.PaymentMethod = "cash"

	_, err := svc.Checkout(context.Background(), uuid.New(), req)
	assert.Error(t, err)
	assert.False(t, uow.began, "nothing should touch the database for an unknown method")
	assert.Empty(t, uow.txRepo.created)
}

func TestCheckoutRejectsIncompleteDraft(t *testing.T) {
	uow, svc := newCheckoutFixture(payment.NewSimulator(0))

	req := validCheckoutRequest()
	req.PhoneNumber = ""

	_, err := svc.Checkout(context.Background(), uuid.New(), req)
	assert.Error(t, err)
	assert.False(t, uow.began)
}

func TestCheckoutSuccess(t *testing.T) {
	uow, svc := newCheckoutFixture(payment.NewSimulator(0))

	res, err := svc.Checkout(context.Background(), uuid.New(), validCheckoutRequest())
	assert.NoError(t, err)
	assert.True(t, uow.committed)

	// Exactly one record, recorded as pending then completed.
	assert.Len(t, uow.txRepo.created, 1)
	created := uow.txRepo.created[0]
	assert.Equal(t, entity.TransactionStatusPending, created.Status)
	assert.Equal(t, entity.TransactionStatusCompleted, uow.txRepo.statusUpdates[created.Id])

	assert.Equal(t, "completed", res.Status)
	assert.NotEmpty(t, res.TransactionId)
	assert.Len(t, res.TransactionId, payment.ReferenceLength)

	// Receipt mirrors the draft.
	assert.Equal(t, "1GB", res.Receipt.DataAmount)
	assert.Equal(t, "$2.00", res.Receipt.AmountDisplay)
	assert.Equal(t, "Somtel", res.Receipt.ProviderName)
	assert.Equal(t, "EVC Plus", res.Receipt.PaymentMethodLabel)
}

func TestCheckoutDeclinedRollsBack(t *testing.T) {
	gateway := &payment.Simulator{
		FailFunc: func(req payment.ChargeRequest) error {
			return errors.New("insufficient balance")
		},
	}
	uow, svc := newCheckoutFixture(gateway)

	res, err := svc.Checkout(context.Background(), uuid.New(), validCheckoutRequest())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.NotNil(t, res)
	assert.Equal(t, "failed", res.Status)

	assert.False(t, uow.committed, "a declined charge must not be committed")
	assert.Empty(t, uow.txRepo.statusUpdates)
}

func TestGetReceiptUnknownTransaction(t *testing.T) {
	uow, svc := newCheckoutFixture(payment.NewSimulator(0))
	uow.txRepo.findOneResult = nil

	_, err := svc.GetReceipt(context.Background(), uuid.New(), "ZZZZZZZZZ")
	assert.Error(t, err)
}

func TestGetReceiptRendersStoredTransaction(t *testing.T) {
	uow, svc := newCheckoutFixture(payment.NewSimulator(0))
	uow.txRepo.findOneResult = &entity.Transaction{
		Id:            "K3N9P72QX",
		Amount:        2.00,
		PaymentMethod: "evc",
		PhoneNumber:   "+252611231234",
		Status:        entity.TransactionStatusCompleted,
		BundleName:    "1GB",
		DataAmount:    "1GB",
		ProviderName:  "Somtel",
	}

	res, err := svc.GetReceipt(context.Background(), uuid.New(), "K3N9P72QX")
	assert.NoError(t, err)
	assert.Equal(t, "K3N9P72QX", res.TransactionId)
	assert.Equal(t, "Receipt\n\nBundle: 1GB\nAmount: $2.00\nProvider: Somtel\nTransaction ID: K3N9P72QX", res.ShareText)
}

func TestListPaymentMethods(t *testing.T) {
	_, svc := newCheckoutFixture(payment.NewSimulator(0))

	methods := svc.ListPaymentMethods()
	assert.Len(t, methods, 3)
	assert.Equal(t, "evc", methods[0].Id)
	assert.Equal(t, "EVC Plus", methods[0].Name)
	assert.Equal(t, "edahab", methods[1].Id)
	assert.Equal(t, "wallet", methods[2].Id)
}
