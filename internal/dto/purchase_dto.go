// FILE: internal/dto/purchase_dto.go
package dto

import (
	"time"

	"bundle-store-be/pkg/payment"
	"bundle-store-be/pkg/purchase"
)

// CheckoutRequest is the full parameter bag the client carried through the
// selection flow, plus the payment method chosen on the final screen.
type CheckoutRequest struct {
	Version       int     `json:"version"`
	ProviderId    string  `json:"provider_id" validate:"required"`
	ProviderName  string  `json:"provider_name" validate:"required"`
	BundleId      string  `json:"bundle_id" validate:"required"`
	BundleName    string  `json:"bundle_name" validate:"required"`
	DataAmount    string  `json:"data_amount" validate:"required"`
	Duration      string  `json:"duration" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	PhoneNumber   string  `json:"phone_number" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

func (r CheckoutRequest) ToDraft() purchase.Draft {
	return purchase.Draft{
		Version:       r.Version,
		ProviderID:    r.ProviderId,
		ProviderName:  r.ProviderName,
		BundleID:      r.BundleId,
		BundleName:    r.BundleName,
		DataAmount:    r.DataAmount,
		Duration:      r.Duration,
		Price:         r.Price,
		PhoneNumber:   r.PhoneNumber,
		PaymentMethod: payment.Method(r.PaymentMethod),
	}
}

type PaymentMethodResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ReceiptResponse struct {
	TransactionId      string    `json:"transaction_id"`
	BundleName         string    `json:"bundle_name"`
	DataAmount         string    `json:"data_amount"`
	Amount             float64   `json:"amount"`
	AmountDisplay      string    `json:"amount_display"`
	ProviderName       string    `json:"provider_name"`
	PhoneNumber        string    `json:"phone_number"`
	PaymentMethod      string    `json:"payment_method"`
	PaymentMethodLabel string    `json:"payment_method_label"`
	Date               time.Time `json:"date"`
	ShareText          string    `json:"share_text"`
}

type CheckoutResponse struct {
	TransactionId string          `json:"transaction_id"`
	Status        string          `json:"status"`
	Date          time.Time       `json:"date"`
	Receipt       ReceiptResponse `json:"receipt"`
}

type TransactionHistoryItem struct {
	Id              string    `json:"id"`
	BundleName      string    `json:"bundle_name"`
	DataAmount      string    `json:"data_amount"`
	ProviderName    string    `json:"provider_name"`
	Amount          float64   `json:"amount"`
	AmountDisplay   string    `json:"amount_display"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	TransactionDate time.Time `json:"transaction_date"`
}

// PublishTransactionMessage rides the in-process event topic between the
// purchase service and the event worker.
type PublishTransactionMessage struct {
	TransactionId string `json:"transaction_id"`
	EventType     string `json:"event_type"`
}
