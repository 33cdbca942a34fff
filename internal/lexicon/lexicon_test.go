package lexicon

import (
	"testing"

	"decline-mail-web/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestReasonLabel(t *testing.T) {
	tests := []struct {
		code   string
		custom string
		want   string
	}{
		{domain.ReasonBudget, "", "予算の都合"},
		{domain.ReasonTiming, "", "導入時期が合わない"},
		{domain.ReasonAlternative, "", "他社サービスを選定"},
		{domain.ReasonOtherService, "", "他社サービスを選定"},
		{domain.ReasonFeature, "", "機能が要件に合わない"},
		{domain.ReasonInternal, "", "社内事情"},
		{domain.ReasonOther, "", "その他"},
		{domain.ReasonCustom, "既存ツールとの連携が難しいため", "既存ツールとの連携が難しいため"},
		{"unknown-code-xyz", "", "unknown-code-xyz"},
		{"unknown-code-xyz", "ignored", "unknown-code-xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonLabel(tt.code, tt.custom))
		})
	}
}

func TestToneDescription_DefaultsToFormal(t *testing.T) {
	formal := ToneDescription(domain.ToneFormal)

	assert.Equal(t, formal, ToneDescription(""))
	assert.Equal(t, formal, ToneDescription("casual"))
	assert.NotEqual(t, formal, ToneDescription(domain.ToneFriendly))
	assert.NotEqual(t, formal, ToneDescription(domain.ToneBusiness))
}

func TestListings(t *testing.T) {
	reasons := Reasons()
	assert.Equal(t, domain.ReasonBudget, reasons[0].Code)
	assert.Equal(t, domain.ReasonCustom, reasons[len(reasons)-1].Code)
	for _, r := range reasons[:len(reasons)-1] {
		assert.True(t, IsKnownReason(r.Code), r.Code)
	}

	tones := Tones()
	assert.Len(t, tones, 3)
	assert.Equal(t, domain.ToneFormal, tones[0].Code)
}
