package payment

import "fmt"

// Method identifies one of the supported mobile-money channels.
type Method string

const (
	MethodEVC    Method = "evc"
	MethodEdahab Method = "edahab"
	MethodWallet Method = "wallet"
)

var methodLabels = map[Method]string{
	MethodEVC:    "EVC Plus",
	MethodEdahab: "Edahab",
	MethodWallet: "Premier Wallet",
}

var methodIcons = map[Method]string{
	MethodEVC:    "💳",
	MethodEdahab: "📱",
	MethodWallet: "👛",
}

// Methods returns the enumerated set in display order.
func Methods() []Method {
	return []Method{MethodEVC, MethodEdahab, MethodWallet}
}

// ParseMethod validates a raw method code coming from a client request.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("unsupported payment method: %q", s)
	}
	return m, nil
}

func (m Method) Valid() bool {
	_, ok := methodLabels[m]
	return ok
}

// Label returns the human-readable name shown on receipts.
func (m Method) Label() string {
	return methodLabels[m]
}

// Icon returns the glyph the method picker renders next to the label.
func (m Method) Icon() string {
	return methodIcons[m]
}
