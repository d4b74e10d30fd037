package payment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]{9}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewReference()
		assert.True(t, pattern.MatchString(ref), "unexpected reference %q", ref)
		assert.False(t, seen[ref], "duplicate reference %q", ref)
		seen[ref] = true
	}
}

func TestSimulatorApproves(t *testing.T) {
	g := NewSimulator(0)
	err := g.Charge(context.Background(), ChargeRequest{
		Reference:   NewReference(),
		Method:      MethodEVC,
		PhoneNumber: "+252611231234",
		Amount:      2.00,
	})
	assert.NoError(t, err)
}

func TestSimulatorFailFunc(t *testing.T) {
	declined := errors.New("insufficient balance")
	g := &Simulator{
		FailFunc: func(req ChargeRequest) error {
			return declined
		},
	}

	err := g.Charge(context.Background(), ChargeRequest{Method: MethodWallet, Amount: 7.95})
	assert.ErrorIs(t, err, declined)
}

func TestSimulatorHonorsContext(t *testing.T) {
	g := NewSimulator(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Charge(ctx, ChargeRequest{Method: MethodEVC, Amount: 2.00})
	assert.ErrorIs(t, err, context.Canceled)
}
