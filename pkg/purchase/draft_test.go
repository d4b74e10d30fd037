package purchase

import (
	"errors"
	"testing"

	"bundle-store-be/pkg/payment"

	"github.com/stretchr/testify/assert"
)

func providerDraft() Draft {
	return Draft{
		Version:      SchemaVersion,
		ProviderID:   "prov-1",
		ProviderName: "Somtel",
	}
}

func fullDraft() Draft {
	return Draft{
		Version:       SchemaVersion,
		ProviderID:    "prov-1",
		ProviderName:  "Somtel",
		BundleID:      "bun-1",
		BundleName:    "1GB",
		DataAmount:    "1GB",
		Duration:      "Valid for 24 hours",
		Price:         2.00,
		PhoneNumber:   "+252611231234",
		PaymentMethod: payment.MethodEVC,
	}
}

func TestDraftApplyAppendsFields(t *testing.T) {
	d := providerDraft()

	merged, err := d.Apply(Draft{
		BundleID:   "bun-1",
		BundleName: "1GB",
		DataAmount: "1GB",
		Duration:   "Valid for 24 hours",
		Price:      2.00,
	})
	assert.NoError(t, err)

	// Earlier fields survive intact.
	assert.Equal(t, "prov-1", merged.ProviderID)
	assert.Equal(t, "Somtel", merged.ProviderName)
	assert.Equal(t, "1GB", merged.BundleName)
	assert.Equal(t, 2.00, merged.Price)
}

func TestDraftApplyPreservesEveryEarlierField(t *testing.T) {
	d := fullDraft()

	// An empty enrichment must change nothing.
	merged, err := d.Apply(Draft{})
	assert.NoError(t, err)
	assert.Equal(t, d, merged)

	// Re-sending identical values is also fine.
	merged, err = d.Apply(fullDraft())
	assert.NoError(t, err)
	assert.Equal(t, d, merged)
}

func TestDraftApplyRefusesOverwrite(t *testing.T) {
	d := providerDraft()

	_, err := d.Apply(Draft{ProviderName: "Hormuud"})
	assert.Error(t, err)

	var overwrite ErrFieldOverwritten
	assert.True(t, errors.As(err, &overwrite))
	assert.Equal(t, FieldProviderName, overwrite.Field)
	assert.Equal(t, "Somtel", overwrite.Old)
	assert.Equal(t, "Hormuud", overwrite.New)
}

func TestDraftApplyAllowsPhoneEdit(t *testing.T) {
	d := fullDraft()

	merged, err := d.Apply(Draft{PhoneNumber: "+252615550000"})
	assert.NoError(t, err)
	assert.Equal(t, "+252615550000", merged.PhoneNumber)

	// Everything else is untouched.
	assert.Equal(t, d.BundleName, merged.BundleName)
	assert.Equal(t, d.PaymentMethod, merged.PaymentMethod)
}

func TestDraftApplyRejectsUnknownVersion(t *testing.T) {
	d := providerDraft()

	_, err := d.Apply(Draft{Version: SchemaVersion + 1, BundleID: "bun-1"})
	assert.Error(t, err)
}

func TestDraftValidateStage(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		stage   Stage
		wantErr bool
	}{
		{name: "empty draft enters provider select", draft: NewDraft(), stage: StageProviderSelect, wantErr: false},
		{name: "empty draft cannot enter category select", draft: NewDraft(), stage: StageCategorySelect, wantErr: true},
		{name: "provider draft enters bundle select", draft: providerDraft(), stage: StageBundleSelect, wantErr: false},
		{name: "provider draft cannot confirm", draft: providerDraft(), stage: StageConfirm, wantErr: true},
		{name: "full draft reaches receipt", draft: fullDraft(), stage: StageReceipt, wantErr: false},
		{
			name: "missing phone blocks payment",
			draft: func() Draft {
				d := fullDraft()
				d.PhoneNumber = ""
				return d
			}(),
			stage:   StagePayment,
			wantErr: true,
		},
		{
			name: "missing method blocks receipt",
			draft: func() Draft {
				d := fullDraft()
				d.PaymentMethod = ""
				return d
			}(),
			stage:   StageReceipt,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.ValidateStage(tt.stage)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDraftMissingFields(t *testing.T) {
	d := providerDraft()
	missing := d.MissingFields(StageConfirm)
	assert.ElementsMatch(t, []Field{
		FieldBundleID, FieldBundleName, FieldDataAmount, FieldDuration, FieldPrice,
	}, missing)
}

func TestDraftWithFallbacks(t *testing.T) {
	d := Draft{Version: SchemaVersion, Price: 5.00}

	out := d.WithFallbacks()
	assert.Equal(t, FallbackBundleName, out.BundleName)
	assert.Equal(t, FallbackDataAmount, out.DataAmount)
	assert.Equal(t, FallbackDuration, out.Duration)
	assert.Equal(t, FallbackProviderName, out.ProviderName)

	// Present fields are never replaced.
	full := fullDraft().WithFallbacks()
	assert.Equal(t, "1GB", full.BundleName)
	assert.Equal(t, "Somtel", full.ProviderName)
}
