package domain

import "strings"

// 理由コード。未知のコードもそのまま受け付けます。
const (
	ReasonBudget       = "budget"
	ReasonTiming       = "timing"
	ReasonAlternative  = "alternative"
	ReasonOtherService = "other-service" // 旧フォームでの alternative の別名
	ReasonFeature      = "feature"
	ReasonInternal     = "internal"
	ReasonOther        = "other"
	ReasonCustom       = "custom"
)

// 文体 (トーン)
const (
	ToneFormal   = "formal"
	ToneFriendly = "friendly"
	ToneBusiness = "business"
)

// DeclineRequest は、お断りメール1通分の生成指示を表します。
// 値として受け渡し、生成後に変更しないことを前提としています。
type DeclineRequest struct {
	// CompanyName は提案元 (宛先) の会社名です。
	CompanyName string `json:"companyName"`
	// ContactName は提案元の担当者名です。
	ContactName string `json:"contactName"`
	// ServiceName は提案されたサービス名です。空の場合は「貴サービス」と表記します。
	ServiceName string `json:"serviceName"`
	// ReasonCode はお断り理由のコードです。(例: "budget", "timing", "custom")
	ReasonCode string `json:"reason"`
	// CustomReason は ReasonCode が "custom" のときの自由記述の理由です。
	CustomReason string `json:"customReason,omitempty"`
	// ReceivedEmail は受信した提案メールの本文です。プロンプトの文脈としてのみ使用します。
	ReceivedEmail string `json:"receivedEmail,omitempty"`
	// AdditionalMessage は本文に差し込む追加メッセージです。
	AdditionalMessage string `json:"additionalMessage"`
	// SenderName は送信者の名前です。
	SenderName string `json:"myName"`
	// SenderCompany は送信者の会社名です。
	SenderCompany string `json:"myCompany"`
	// Tone は文体の指定です。空の場合は formal として扱います。
	Tone string `json:"tone,omitempty"`
	// Variation は再生成ごとに変化させるシード値で、AI 生成時の temperature にのみ影響します。
	Variation float64 `json:"variation"`
}

// Normalize は全てのテキスト項目の前後の空白を取り除いたコピーを返します。
func (r DeclineRequest) Normalize() DeclineRequest {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.ContactName = strings.TrimSpace(r.ContactName)
	r.ServiceName = strings.TrimSpace(r.ServiceName)
	r.ReasonCode = strings.TrimSpace(r.ReasonCode)
	r.CustomReason = strings.TrimSpace(r.CustomReason)
	r.ReceivedEmail = strings.TrimSpace(r.ReceivedEmail)
	r.AdditionalMessage = strings.TrimSpace(r.AdditionalMessage)
	r.SenderName = strings.TrimSpace(r.SenderName)
	r.SenderCompany = strings.TrimSpace(r.SenderCompany)
	r.Tone = strings.TrimSpace(r.Tone)
	return r
}

// Validate は必須項目がすべて入力されているかを検証します。
// 不足している項目がある場合は、項目ごとのメッセージを持つ *ValidationError を返します。
func (r DeclineRequest) Validate() error {
	var fields []FieldError
	check := func(value, field, message string) {
		if strings.TrimSpace(value) == "" {
			fields = append(fields, FieldError{Field: field, Message: message})
		}
	}

	check(r.CompanyName, "companyName", "会社名を入力してください。")
	check(r.ContactName, "contactName", "担当者名を入力してください。")
	check(r.ReasonCode, "reason", "お断り理由を選択してください。")
	if strings.TrimSpace(r.ReasonCode) == ReasonCustom {
		check(r.CustomReason, "customReason", "カスタム理由を入力してください。")
	}
	check(r.SenderCompany, "myCompany", "あなたの会社名を入力してください。")
	check(r.SenderName, "myName", "あなたの名前を入力してください。")

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// NextVariation は Variation だけを 1 進めたコピーを返します。再生成に使用します。
func (r DeclineRequest) NextVariation() DeclineRequest {
	r.Variation++
	return r
}

// HasService はサービス名が指定されているかを返します。
func (r DeclineRequest) HasService() bool {
	return strings.TrimSpace(r.ServiceName) != ""
}
