package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/pkg/logger"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/pkg/payment"
	"bundle-store-be/pkg/purchase"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the purchase event worker. For every recorded
// transaction it writes an audit row and pre-renders the shareable receipt
// into redis so the receipt screen reads hot.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	workerLog  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	rdb *redis.Client,
	workerLog logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		rdb:        rdb,
		workerLog:  workerLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishTransactionMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.workerLog.Info("purchase-worker", "Processing transaction event", map[string]interface{}{
		"transaction_id": payload.TransactionId,
		"event_type":     payload.EventType,
	})

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	tx, err := uow.TransactionRepository().FindOneWithDetails(ctx, specification.ByReference{Reference: payload.TransactionId})
	if err != nil {
		log.Printf("[ERROR] Failed to get transaction %s: %v", payload.TransactionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if tx == nil {
		// Rolled back before the worker got to it. Nothing to audit.
		log.Printf("[ERROR] Transaction not found: %s", payload.TransactionId)
		msg.Ack()
		return
	}

	event := &entity.TransactionEvent{
		Id:            uuid.New(),
		TransactionId: tx.Id,
		EventType:     payload.EventType,
		Payload: map[string]interface{}{
			"status":        string(tx.Status),
			"amount":        tx.Amount,
			"method":        tx.PaymentMethod,
			"provider_name": tx.ProviderName,
			"bundle_name":   tx.BundleName,
		},
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.TransactionRepository().CreateEvent(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to write audit event for %s: %v", tx.Id, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit audit event for %s: %v", tx.Id, err)
		msg.Nack()
		return
	}

	cs.cacheShareText(ctx, tx)
	msg.Ack()
}

func (cs *consumerService) cacheShareText(ctx context.Context, tx *entity.Transaction) {
	if cs.rdb == nil {
		return
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
	key := "receipt:" + tx.Id
	if err := cs.rdb.Set(ctx, key, receipt.ShareText(), 24*time.Hour).Err(); err != nil {
		cs.workerLog.Warn("purchase-worker", "Failed to cache receipt share text", map[string]interface{}{
			"transaction_id": tx.Id,
			"error":          err.Error(),
		})
	}
}
