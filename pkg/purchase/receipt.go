package purchase

import (
	"fmt"
	"time"

	"bundle-store-be/pkg/payment"
)

// Receipt is the rendered outcome of a completed purchase, as shown on the
// receipt screen and in transaction history.
type Receipt struct {
	TransactionID string         `json:"transaction_id"`
	BundleName    string         `json:"bundle_name"`
	DataAmount    string         `json:"data_amount"`
	Amount        float64        `json:"amount"`
	ProviderName  string         `json:"provider_name"`
	PhoneNumber   string         `json:"phone_number"`
	Method        payment.Method `json:"payment_method"`
	Date          time.Time      `json:"date"`
}

// MethodLabel is the display name for the payment channel, e.g. "EVC Plus".
func (r Receipt) MethodLabel() string {
	return r.Method.Label()
}

// FormatAmount renders the charged amount with two-place precision.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// ShareText builds the payload handed to the platform share sheet.
func (r Receipt) ShareText() string {
	return fmt.Sprintf("Receipt\n\nBundle: %s\nAmount: %s\nProvider: %s\nTransaction ID: %s",
		r.DataAmount, FormatAmount(r.Amount), r.ProviderName, r.TransactionID)
}
