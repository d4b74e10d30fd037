package purchase

import (
	"testing"
	"time"

	"bundle-store-be/pkg/payment"

	"github.com/stretchr/testify/assert"
)

func TestReceiptShareText(t *testing.T) {
	r := Receipt{
		TransactionID: "K3N9P72QX",
		BundleName:    "1GB",
		DataAmount:    "1GB",
		Amount:        2.00,
		ProviderName:  "Somtel",
		PhoneNumber:   "+252611231234",
		Method:        payment.MethodEVC,
		Date:          time.Now(),
	}

	want := "Receipt\n\nBundle: 1GB\nAmount: $2.00\nProvider: Somtel\nTransaction ID: K3N9P72QX"
	assert.Equal(t, want, r.ShareText())
	assert.Equal(t, "EVC Plus", r.MethodLabel())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$2.00", FormatAmount(2))
	assert.Equal(t, "$3.50", FormatAmount(3.5))
	assert.Equal(t, "$7.95", FormatAmount(7.95))
	assert.Equal(t, "$12.00", FormatAmount(12))
}
