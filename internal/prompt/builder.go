// Package prompt は、お断りメール生成用の指示文を組み立てます。
package prompt

import (
	"fmt"
	"strings"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/lexicon"
)

// SystemInstruction は AI に渡す固定のシステム指示です。
const SystemInstruction = "あなたはビジネスメールの専門家です。丁寧で誠実、かつ相手を傷つけないお断りメールを作成することが得意です。"

// SignatureDelimiter は署名を囲む罫線です。テンプレート生成と同じものを指定します。
const SignatureDelimiter = "────────────────────────"

const (
	genericService   = "貴サービス"
	noServiceNote    = "(サービス名の記載なし)"
	noAdditionalNote = "(特になし)"
	targetLength     = "800-1000文字程度"
)

// ServicePart は件名・本文で使うサービスの表記を返します。
func ServicePart(req domain.DeclineRequest) string {
	if req.HasService() {
		return "「" + strings.TrimSpace(req.ServiceName) + "」"
	}
	return genericService
}

// Subject は件名の文字列 (「件名: 」を除く) を返します。
func Subject(req domain.DeclineRequest) string {
	return ServicePart(req) + "に関するご提案について"
}

// Build はリクエストから AI 向けの指示文を組み立てます。
// Variation は参照しないため、同じ入力からは常に同じ文字列が得られます。
func Build(req domain.DeclineRequest) string {
	var sb strings.Builder

	sb.WriteString("あなたはビジネスメールの専門家です。以下の情報を元に、丁寧で誠実なお断りメールを作成してください。\n\n")

	service := req.ServiceName
	if !req.HasService() {
		service = noServiceNote
	}
	sb.WriteString("【相手の情報】\n")
	fmt.Fprintf(&sb, "- 会社名: %s\n", req.CompanyName)
	fmt.Fprintf(&sb, "- 担当者名: %s\n", req.ContactName)
	fmt.Fprintf(&sb, "- サービス名: %s\n\n", service)

	sb.WriteString("【お断りの理由】\n")
	sb.WriteString(lexicon.ReasonLabel(req.ReasonCode, req.CustomReason))
	sb.WriteString("\n\n")

	if strings.TrimSpace(req.ReceivedEmail) != "" {
		sb.WriteString("【受信した提案メール】\n")
		sb.WriteString(req.ReceivedEmail)
		sb.WriteString("\n\n")
	}

	additional := req.AdditionalMessage
	if strings.TrimSpace(additional) == "" {
		additional = noAdditionalNote
	}
	sb.WriteString("【追加メッセージ】\n")
	sb.WriteString(additional)
	sb.WriteString("\n\n")

	sb.WriteString("【送信者情報】\n")
	fmt.Fprintf(&sb, "- 会社名: %s\n", req.SenderCompany)
	fmt.Fprintf(&sb, "- 名前: %s\n\n", req.SenderName)

	sb.WriteString("【文体】\n")
	sb.WriteString(lexicon.ToneDescription(req.Tone))
	sb.WriteString("で作成してください。\n\n")

	sb.WriteString("【要件】\n")
	for i, item := range requirements(req) {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}

	sb.WriteString("\n【出力形式】\n")
	sb.WriteString("件名から署名まで、そのままコピーして使える完成形のメールとして出力してください。")

	return sb.String()
}

// requirements は、任意項目の有無に関わらず常に同じ順序で列挙する要件です。
func requirements(req domain.DeclineRequest) []string {
	return []string{
		fmt.Sprintf("件名は「%s」とする", Subject(req)),
		"冒頭で感謝の気持ちを伝える",
		"今回は見送る旨を明確に伝える",
		"お断りの理由を丁寧に説明する（具体的すぎず、相手を傷つけない表現で）",
		"相手の労力に対する感謝とお詫びを含める",
		"追加メッセージがある場合は自然に組み込む",
		"今後の関係性を大切にする姿勢を示す",
		"最後に相手の発展を祈る言葉で締める",
		fmt.Sprintf("署名は「%s」で囲む", SignatureDelimiter),
		"全体的にビジネスメールとして適切な丁寧語を使用",
		targetLength,
	}
}
