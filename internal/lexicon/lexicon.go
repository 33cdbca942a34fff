// Package lexicon は、お断り理由と文体のコードを日本語の表現に対応付ける静的な辞書です。
package lexicon

import "decline-mail-web/internal/domain"

// Entry はコードと表示ラベルの組です。
type Entry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var reasonLabels = map[string]string{
	domain.ReasonBudget:       "予算の都合",
	domain.ReasonTiming:       "導入時期が合わない",
	domain.ReasonAlternative:  "他社サービスを選定",
	domain.ReasonOtherService: "他社サービスを選定",
	domain.ReasonFeature:      "機能が要件に合わない",
	domain.ReasonInternal:     "社内事情",
	domain.ReasonOther:        "その他",
}

// reasonOrder は画面のタブ順です。別名 (other-service) は含めません。
var reasonOrder = []string{
	domain.ReasonBudget,
	domain.ReasonTiming,
	domain.ReasonAlternative,
	domain.ReasonFeature,
	domain.ReasonInternal,
	domain.ReasonOther,
}

var toneDescriptions = map[string]string{
	domain.ToneFormal:   "非常に丁寧でフォーマルな敬語を用いた、改まった文体",
	domain.ToneFriendly: "丁寧さを保ちつつも、親しみやすく柔らかい文体",
	domain.ToneBusiness: "簡潔で要点を押さえた、ビジネスライクな文体",
}

var toneLabels = map[string]string{
	domain.ToneFormal:   "フォーマル",
	domain.ToneFriendly: "フレンドリー",
	domain.ToneBusiness: "ビジネス",
}

var toneOrder = []string{domain.ToneFormal, domain.ToneFriendly, domain.ToneBusiness}

// ReasonLabel は理由コードに対応する表現を返します。
// "custom" の場合は customText をそのまま、未知のコードはコード自体をそのまま返します。
func ReasonLabel(code, customText string) string {
	if code == domain.ReasonCustom {
		return customText
	}
	if label, ok := reasonLabels[code]; ok {
		return label
	}
	return code
}

// IsKnownReason は辞書に登録された理由コードかを返します。
func IsKnownReason(code string) bool {
	_, ok := reasonLabels[code]
	return ok
}

// ToneDescription は文体の説明句を返します。未知または空の場合は formal の説明を返します。
func ToneDescription(tone string) string {
	if desc, ok := toneDescriptions[tone]; ok {
		return desc
	}
	return toneDescriptions[domain.ToneFormal]
}

// Reasons は選択肢として提示する理由の一覧を返します。
func Reasons() []Entry {
	out := make([]Entry, 0, len(reasonOrder)+1)
	for _, code := range reasonOrder {
		out = append(out, Entry{Code: code, Label: reasonLabels[code]})
	}
	return append(out, Entry{Code: domain.ReasonCustom, Label: "カスタム"})
}

// Tones は選択肢として提示する文体の一覧を返します。
func Tones() []Entry {
	out := make([]Entry, 0, len(toneOrder))
	for _, code := range toneOrder {
		out = append(out, Entry{Code: code, Label: toneLabels[code]})
	}
	return out
}
