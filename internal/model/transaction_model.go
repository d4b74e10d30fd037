package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Transaction struct {
	Id              string    `gorm:"type:varchar(16);primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	BundleId        uuid.UUID `gorm:"type:uuid;not null"`
	ProviderId      uuid.UUID `gorm:"type:uuid;not null"`
	Amount          float64   `gorm:"type:numeric(10,2);not null"`
	PaymentMethod   string    `gorm:"type:varchar(20);not null"`
	PhoneNumber     string    `gorm:"type:varchar(32);not null"`
	Status          string    `gorm:"type:transaction_status;not null;default:'pending'"`
	TransactionDate time.Time `gorm:"not null;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionEvent struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionId string         `gorm:"type:varchar(16);not null;index"`
	EventType     string         `gorm:"type:varchar(50);not null;index"`
	Payload       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"default:now();not null;index"`
}

func (TransactionEvent) TableName() string {
	return "transaction_events"
}
