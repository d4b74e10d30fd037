package purchase

import (
	"fmt"
	"strconv"
	"strings"

	"bundle-store-be/pkg/payment"
)

// SchemaVersion is bumped whenever the draft gains or renames a field, so
// clients carrying an older shape can be rejected at the stage boundary.
const SchemaVersion = 1

// Draft is the in-flight parameter set describing an in-progress purchase.
// It is built incrementally along the selection flow: provider fields first,
// bundle fields at bundle selection, the phone number at confirmation and the
// payment method at checkout.
type Draft struct {
	Version       int            `json:"version"`
	ProviderID    string         `json:"provider_id"`
	ProviderName  string         `json:"provider_name"`
	BundleID      string         `json:"bundle_id"`
	BundleName    string         `json:"bundle_name"`
	DataAmount    string         `json:"data_amount"`
	Duration      string         `json:"duration"`
	Price         float64        `json:"price"`
	PhoneNumber   string         `json:"phone_number"`
	PaymentMethod payment.Method `json:"payment_method,omitempty"`
}

func NewDraft() Draft {
	return Draft{Version: SchemaVersion}
}

// Field names a single draft attribute. The string values double as the wire
// names used in error messages.
type Field string

const (
	FieldProviderID    Field = "provider_id"
	FieldProviderName  Field = "provider_name"
	FieldBundleID      Field = "bundle_id"
	FieldBundleName    Field = "bundle_name"
	FieldDataAmount    Field = "data_amount"
	FieldDuration      Field = "duration"
	FieldPrice         Field = "price"
	FieldPhoneNumber   Field = "phone_number"
	FieldPaymentMethod Field = "payment_method"
)

var allFields = []Field{
	FieldProviderID, FieldProviderName,
	FieldBundleID, FieldBundleName, FieldDataAmount, FieldDuration, FieldPrice,
	FieldPhoneNumber, FieldPaymentMethod,
}

func (d Draft) value(f Field) string {
	switch f {
	case FieldProviderID:
		return d.ProviderID
	case FieldProviderName:
		return d.ProviderName
	case FieldBundleID:
		return d.BundleID
	case FieldBundleName:
		return d.BundleName
	case FieldDataAmount:
		return d.DataAmount
	case FieldDuration:
		return d.Duration
	case FieldPrice:
		if d.Price == 0 {
			return ""
		}
		return strconv.FormatFloat(d.Price, 'f', 2, 64)
	case FieldPhoneNumber:
		return d.PhoneNumber
	case FieldPaymentMethod:
		return string(d.PaymentMethod)
	}
	return ""
}

func (d *Draft) setValue(f Field, v string) {
	switch f {
	case FieldProviderID:
		d.ProviderID = v
	case FieldProviderName:
		d.ProviderName = v
	case FieldBundleID:
		d.BundleID = v
	case FieldBundleName:
		d.BundleName = v
	case FieldDataAmount:
		d.DataAmount = v
	case FieldDuration:
		d.Duration = v
	case FieldPrice:
		p, _ := strconv.ParseFloat(v, 64)
		d.Price = p
	case FieldPhoneNumber:
		d.PhoneNumber = v
	case FieldPaymentMethod:
		d.PaymentMethod = payment.Method(v)
	}
}

// Has reports whether the field has been attached to the draft.
func (d Draft) Has(f Field) bool {
	return d.value(f) != ""
}

// ErrFieldOverwritten is returned when a forwarding step tries to change a
// field that an earlier step already set. Only the phone number is editable,
// and only until the purchase is confirmed.
type ErrFieldOverwritten struct {
	Field Field
	Old   string
	New   string
}

func (e ErrFieldOverwritten) Error() string {
	return fmt.Sprintf("draft field %s already set to %q, refusing overwrite with %q", e.Field, e.Old, e.New)
}

// Apply merges the fields a forwarding step adds into the draft it received.
// Enrichment is append-only: a set field must arrive unchanged or not at all.
func (d Draft) Apply(next Draft) (Draft, error) {
	if next.Version != 0 && next.Version != SchemaVersion {
		return Draft{}, fmt.Errorf("unsupported draft version %d, want %d", next.Version, SchemaVersion)
	}
	merged := d
	merged.Version = SchemaVersion
	for _, f := range allFields {
		nv := next.value(f)
		if nv == "" {
			continue
		}
		ov := d.value(f)
		if ov == "" || ov == nv {
			merged.setValue(f, nv)
			continue
		}
		if f == FieldPhoneNumber {
			// The user may edit the delivery number on the confirm screen.
			merged.PhoneNumber = nv
			continue
		}
		return Draft{}, ErrFieldOverwritten{Field: f, Old: ov, New: nv}
	}
	return merged, nil
}

// Stage is one step of the purchase flow, in order.
type Stage int

const (
	StageProviderSelect Stage = iota
	StageCategorySelect
	StageBundleSelect
	StageConfirm
	StagePayment
	StageReceipt
)

var stageNames = map[Stage]string{
	StageProviderSelect: "provider-select",
	StageCategorySelect: "category-select",
	StageBundleSelect:   "bundle-select",
	StageConfirm:        "confirm",
	StagePayment:        "payment",
	StageReceipt:        "receipt",
}

func (s Stage) String() string {
	return stageNames[s]
}

// requiredOnEntry lists the fields a draft must already carry when it reaches
// the given stage. Each stage inherits everything earlier stages require.
var requiredOnEntry = map[Stage][]Field{
	StageProviderSelect: nil,
	StageCategorySelect: {FieldProviderID, FieldProviderName},
	StageBundleSelect:   {FieldProviderID, FieldProviderName},
	StageConfirm: {
		FieldProviderID, FieldProviderName,
		FieldBundleID, FieldBundleName, FieldDataAmount, FieldDuration, FieldPrice,
	},
	StagePayment: {
		FieldProviderID, FieldProviderName,
		FieldBundleID, FieldBundleName, FieldDataAmount, FieldDuration, FieldPrice,
		FieldPhoneNumber,
	},
	StageReceipt: {
		FieldProviderID, FieldProviderName,
		FieldBundleID, FieldBundleName, FieldDataAmount, FieldDuration, FieldPrice,
		FieldPhoneNumber, FieldPaymentMethod,
	},
}

// MissingFields returns the required fields the draft does not carry yet.
func (d Draft) MissingFields(s Stage) []Field {
	var missing []Field
	for _, f := range requiredOnEntry[s] {
		if !d.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// ValidateStage rejects a draft that reaches a stage without the fields the
// stage depends on. Render paths should prefer WithFallbacks; this is for
// boundaries where proceeding would persist bad data.
func (d Draft) ValidateStage(s Stage) error {
	missing := d.MissingFields(s)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return fmt.Errorf("draft missing required fields at %s: %s", s, strings.Join(names, ", "))
}

// Display fallbacks for drafts that arrive with holes, e.g. via a deep link
// straight into the confirm screen. Rendering must not fail on absence.
const (
	FallbackBundleName   = "Data Bundle"
	FallbackDataAmount   = "N/A"
	FallbackDuration     = "N/A"
	FallbackProviderName = "Unknown Provider"
)

// WithFallbacks fills absent display fields with their placeholders.
func (d Draft) WithFallbacks() Draft {
	out := d
	if out.BundleName == "" {
		out.BundleName = FallbackBundleName
	}
	if out.DataAmount == "" {
		out.DataAmount = FallbackDataAmount
	}
	if out.Duration == "" {
		out.Duration = FallbackDuration
	}
	if out.ProviderName == "" {
		out.ProviderName = FallbackProviderName
	}
	return out
}
