package domain

// NotificationRequest は Slack 等の通知コンポーネントで共有されるデータ構造です。
// テンプレート生成へのフォールバックを運用者に伝えるために使用します。
type NotificationRequest struct {
	// RequestID は生成リクエストごとに払い出される識別子です。
	RequestID string `json:"request_id"`

	// CompanyName は宛先の会社名です。
	CompanyName string `json:"company_name"`

	// ReasonCode は選択されたお断り理由のコードです。
	ReasonCode string `json:"reason_code"`

	// ExecutionMode は実行された操作です。(例: "generate", "regenerate")
	ExecutionMode string `json:"execution_mode"`
}
