// Package fallback は、AI を使わずに定型文だけでお断りメールを組み立てます。
// ネットワークに依存しないため、AI 生成に失敗した場合の最終手段として使用します。
package fallback

import (
	"strings"

	"decline-mail-web/internal/domain"
	"decline-mail-web/internal/prompt"
)

// Delimiter は署名ブロックの上下に置く罫線です。
const Delimiter = prompt.SignatureDelimiter

const (
	// GenericReasonDetail は理由コードが表に無い場合に使う文です。
	GenericReasonDetail = "社内で検討を重ねました結果、今回は見送らせていただくことになりました。"
	// GenericAdditional は追加メッセージが無い場合に使う文です。
	GenericAdditional = "今後も情報交換などの機会がございましたら、ぜひよろしくお願いいたします。"
)

var reasonDetails = map[string]string{
	domain.ReasonBudget:       "社内で検討を重ねました結果、現在の予算状況を鑑み、今回は見送らせていただくことになりました。",
	domain.ReasonTiming:       "社内で検討を重ねました結果、現時点での導入時期が合わないため、今回は見送らせていただくことになりました。",
	domain.ReasonAlternative:  "社内で慎重に検討を重ねました結果、他社のサービスを採用することとなりました。",
	domain.ReasonOtherService: "社内で慎重に検討を重ねました結果、他社のサービスを採用することとなりました。",
	domain.ReasonFeature:      "社内で検討を重ねました結果、現在の要件とのマッチングを考慮し、今回は見送らせていただくことになりました。",
	domain.ReasonInternal:     "社内事情により、今回は導入を見送らせていただくことになりました。",
}

// ReasonDetail は理由コードに対応する定型文を返します。
func ReasonDetail(code string) string {
	if detail, ok := reasonDetails[code]; ok {
		return detail
	}
	return GenericReasonDetail
}

// Generate はリクエストからメール本文を組み立てます。
// 入力が同じであれば常に同じ文字列を返し、失敗することはありません。
func Generate(req domain.DeclineRequest) string {
	servicePart := prompt.ServicePart(req)

	additional := GenericAdditional
	if msg := strings.TrimSpace(req.AdditionalMessage); msg != "" {
		additional = msg
	}

	lines := []string{
		"件名: " + prompt.Subject(req),
		"",
		req.CompanyName,
		req.ContactName + " 様",
		"",
		"お世話になっております。",
		req.SenderCompany + "の" + req.SenderName + "です。",
		"",
		"先日は" + servicePart + "についてご丁寧にご説明いただき、誠にありがとうございました。",
		"貴重なお時間を割いていただきましたこと、心より感謝申し上げます。",
		"",
		ReasonDetail(req.ReasonCode),
		"",
		req.ContactName + "様には大変お手数をおかけいたしましたこと、深くお詫び申し上げます。",
		"",
		additional,
		"",
		"末筆ながら、貴社の益々のご発展をお祈り申し上げます。",
		"今後ともどうぞよろしくお願いいたします。",
		"",
		Delimiter,
		req.SenderCompany,
		req.SenderName,
		Delimiter,
	}

	return strings.Join(lines, "\n")
}
