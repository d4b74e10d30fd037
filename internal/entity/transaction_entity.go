// FILE: internal/entity/transaction_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a purchase record. Its Id is the opaque reference printed on
// the receipt, not a uuid. Status is terminal once completed or failed, and
// rows are only ever mutated by the user who created them.
type Transaction struct {
	Id              string
	UserId          uuid.UUID
	BundleId        uuid.UUID
	ProviderId      uuid.UUID
	Amount          float64
	PaymentMethod   string
	PhoneNumber     string
	Status          TransactionStatus
	TransactionDate time.Time
	CreatedAt       time.Time

	// Joined display fields, populated by history/receipt reads.
	BundleName   string
	DataAmount   string
	ProviderName string
}

// TransactionEvent is an audit row written by the purchase event worker.
type TransactionEvent struct {
	Id            uuid.UUID
	TransactionId string
	EventType     string
	Payload       map[string]interface{}
	CreatedAt     time.Time
}
