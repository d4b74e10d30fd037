package payment

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"
)

// ChargeRequest carries everything the gateway needs to process one charge.
type ChargeRequest struct {
	Reference   string
	Method      Method
	PhoneNumber string
	Amount      float64
}

// Gateway processes a single charge. The production build ships only the
// Simulator; a real mobile-money integration would implement this too.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) error
}

// Simulator approves every charge after a fixed processing delay.
type Simulator struct {
	Delay time.Duration

	// FailFunc forces a decline when set. Used by tests and sandbox configs.
	FailFunc func(ChargeRequest) error
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{Delay: delay}
}

func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) error {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.FailFunc != nil {
		return s.FailFunc(req)
	}
	return nil
}

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ReferenceLength is the size of the opaque transaction reference shown on receipts.
const ReferenceLength = 9

// NewReference generates an opaque, collision-resistant transaction reference.
func NewReference() string {
	buf := make([]byte, ReferenceLength)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is broken
			panic(err)
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return string(buf)
}
