package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{input: "evc", want: MethodEVC},
		{input: "edahab", want: MethodEdahab},
		{input: "wallet", want: MethodWallet},
		{input: "EVC", wantErr: true},
		{input: "mpesa", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethodLabels(t *testing.T) {
	assert.Equal(t, "EVC Plus", MethodEVC.Label())
	assert.Equal(t, "Edahab", MethodEdahab.Label())
	assert.Equal(t, "Premier Wallet", MethodWallet.Label())
}

func TestMethodsOrder(t *testing.T) {
	assert.Equal(t, []Method{MethodEVC, MethodEdahab, MethodWallet}, Methods())
}
