package mapper

import (
	"encoding/json"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/model"

	"gorm.io/datatypes"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:              t.Id,
		UserId:          t.UserId,
		BundleId:        t.BundleId,
		ProviderId:      t.ProviderId,
		Amount:          t.Amount,
		PaymentMethod:   t.PaymentMethod,
		PhoneNumber:     t.PhoneNumber,
		Status:          entity.TransactionStatus(t.Status),
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:              t.Id,
		UserId:          t.UserId,
		BundleId:        t.BundleId,
		ProviderId:      t.ProviderId,
		Amount:          t.Amount,
		PaymentMethod:   t.PaymentMethod,
		PhoneNumber:     t.PhoneNumber,
		Status:          string(t.Status),
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *TransactionMapper) ToEntities(txs []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(txs))
	for i, t := range txs {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TransactionMapper) EventToModel(e *entity.TransactionEvent) *model.TransactionEvent {
	if e == nil {
		return nil
	}
	var payload datatypes.JSON
	if e.Payload != nil {
		if raw, err := json.Marshal(e.Payload); err == nil {
			payload = datatypes.JSON(raw)
		}
	}
	return &model.TransactionEvent{
		Id:            e.Id,
		TransactionId: e.TransactionId,
		EventType:     e.EventType,
		Payload:       payload,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *TransactionMapper) EventToEntity(e *model.TransactionEvent) *entity.TransactionEvent {
	if e == nil {
		return nil
	}
	var payload map[string]interface{}
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &payload)
	}
	return &entity.TransactionEvent{
		Id:            e.Id,
		TransactionId: e.TransactionId,
		EventType:     e.EventType,
		Payload:       payload,
		CreatedAt:     e.CreatedAt,
	}
}
