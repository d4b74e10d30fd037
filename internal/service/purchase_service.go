package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/pkg/events"
	pktNats "bundle-store-be/pkg/nats"
	"bundle-store-be/pkg/payment"
	"bundle-store-be/pkg/purchase"

	"github.com/google/uuid"
)

var ErrPaymentDeclined = errors.New("payment declined")

type IPurchaseService interface {
	ListPaymentMethods() []*dto.PaymentMethodResponse
	Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	GetReceipt(ctx context.Context, userId uuid.UUID, transactionId string) (*dto.ReceiptResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.TransactionHistoryItem, error)
}

type purchaseService struct {
	uowFactory       unitofwork.RepositoryFactory
	gateway          payment.Gateway
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewPurchaseService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payment.Gateway,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IPurchaseService {
	return &purchaseService{
		uowFactory:       uowFactory,
		gateway:          gateway,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *purchaseService) ListPaymentMethods() []*dto.PaymentMethodResponse {
	methods := payment.Methods()
	result := make([]*dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		result = append(result, &dto.PaymentMethodResponse{
			Id:   string(m),
			Name: m.Label(),
			Icon: m.Icon(),
		})
	}
	return result
}

func (s *purchaseService) Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	// 1. Method validation happens before anything touches the database.
	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	draft := req.ToDraft()
	draft.PaymentMethod = method
	if err := draft.ValidateStage(purchase.StageReceipt); err != nil {
		return nil, err
	}

	bundleId, err := uuid.Parse(req.BundleId)
	if err != nil {
		return nil, errors.New("invalid bundle id")
	}
	providerId, err := uuid.Parse(req.ProviderId)
	if err != nil {
		return nil, errors.New("invalid provider id")
	}

	// 2. Record the pending transaction and charge inside one transaction:
	// a declined charge rolls the row back, so failed attempts leave nothing
	// behind and a successful purchase produces exactly one record.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	tx := &entity.Transaction{
		Id:              payment.NewReference(),
		UserId:          userId,
		BundleId:        bundleId,
		ProviderId:      providerId,
		Amount:          draft.Price,
		PaymentMethod:   string(method),
		PhoneNumber:     draft.PhoneNumber,
		Status:          entity.TransactionStatusPending,
		TransactionDate: now,
		CreatedAt:       now,
	}

	if err := uow.TransactionRepository().Create(ctx, tx); err != nil {
		return nil, err
	}

	chargeErr := s.gateway.Charge(ctx, payment.ChargeRequest{
		Reference:   tx.Id,
		Method:      method,
		PhoneNumber: draft.PhoneNumber,
		Amount:      draft.Price,
	})
	if chargeErr != nil {
		// Rollback happens via defer; the caller only learns the outcome.
		return &dto.CheckoutResponse{
			TransactionId: tx.Id,
			Status:        string(entity.TransactionStatusFailed),
			Date:          now,
		}, fmt.Errorf("%w: %v", ErrPaymentDeclined, chargeErr)
	}

	if err := uow.TransactionRepository().UpdateStatus(ctx, tx.Id, entity.TransactionStatusCompleted); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// 3. Notify downstream consumers. The purchase already succeeded, so
	// publishing failures are logged and swallowed.
	msgPayload := dto.PublishTransactionMessage{
		TransactionId: tx.Id,
		EventType:     "TRANSACTION_COMPLETED",
	}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			fmt.Printf("[WARN] Failed to publish transaction message: %v\n", err)
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "TRANSACTION_COMPLETED",
			Data: map[string]interface{}{
				"transaction_id": tx.Id,
				"user_id":        userId,
				"amount":         draft.Price,
				"method":         string(method),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish TRANSACTION_COMPLETED event: %v\n", err)
		}
	}

	draft = draft.WithFallbacks()
	receipt := purchase.Receipt{
		TransactionID: tx.Id,
		BundleName:    draft.BundleName,
		DataAmount:    draft.DataAmount,
		Amount:        draft.Price,
		ProviderName:  draft.ProviderName,
		PhoneNumber:   draft.PhoneNumber,
		Method:        method,
		Date:          now,
	}

	return &dto.CheckoutResponse{
		TransactionId: tx.Id,
		Status:        string(entity.TransactionStatusCompleted),
		Date:          now,
		Receipt:       receiptToResponse(receipt),
	}, nil
}

func (s *purchaseService) GetReceipt(ctx context.Context, userId uuid.UUID, transactionId string) (*dto.ReceiptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx, err := uow.TransactionRepository().FindOneWithDetails(ctx,
		specification.ByReference{Reference: transactionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, errors.New("transaction not found")
	}

	receipt := purchase.Receipt{
		TransactionID: tx.Id,
		BundleName:    tx.BundleName,
		DataAmount:    tx.DataAmount,
		Amount:        tx.Amount,
		ProviderName:  tx.ProviderName,
		PhoneNumber:   tx.PhoneNumber,
		Method:        payment.Method(tx.PaymentMethod),
		Date:          tx.TransactionDate,
	}
	resp := receiptToResponse(receipt)
	return &resp, nil
}

func (s *purchaseService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.TransactionHistoryItem, error) {
	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	txs, err := uow.TransactionRepository().FindAllWithDetails(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionHistoryItem, 0, len(txs))
	for _, tx := range txs {
		result = append(result, &dto.TransactionHistoryItem{
			Id:              tx.Id,
			BundleName:      tx.BundleName,
			DataAmount:      tx.DataAmount,
			ProviderName:    tx.ProviderName,
			Amount:          tx.Amount,
			AmountDisplay:   purchase.FormatAmount(tx.Amount),
			PaymentMethod:   tx.PaymentMethod,
			Status:          string(tx.Status),
			TransactionDate: tx.TransactionDate,
		})
	}
	return result, nil
}

func receiptToResponse(r purchase.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		TransactionId:      r.TransactionID,
		BundleName:         r.BundleName,
		DataAmount:         r.DataAmount,
		Amount:             r.Amount,
		AmountDisplay:      purchase.FormatAmount(r.Amount),
		ProviderName:       r.ProviderName,
		PhoneNumber:        r.PhoneNumber,
		PaymentMethod:      string(r.Method),
		PaymentMethodLabel: r.MethodLabel(),
		Date:               r.Date,
		ShareText:          r.ShareText(),
	}
}
