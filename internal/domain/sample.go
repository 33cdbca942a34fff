package domain

// samples はフォーム入力例として提供するサンプルデータです。
var samples = []DeclineRequest{
	{
		CompanyName:       "株式会社テックソリューションズ",
		ContactName:       "山田太郎",
		ServiceName:       "クラウド営業支援システム",
		ReasonCode:        ReasonBudget,
		AdditionalMessage: "今後も情報交換させていただければ幸いです",
		SenderName:        "鈴木一郎",
		SenderCompany:     "株式会社サンプル商事",
		Tone:              ToneFormal,
	},
	{
		CompanyName:       "マーケティングラボ株式会社",
		ContactName:       "佐藤花子",
		ServiceName:       "MAツール",
		ReasonCode:        ReasonAlternative,
		AdditionalMessage: "貴社の今後のご発展を心よりお祈り申し上げます",
		SenderName:        "田中次郎",
		SenderCompany:     "株式会社デジタルマーケティング",
		Tone:              ToneBusiness,
	},
	{
		CompanyName:       "株式会社ビジネスイノベーション",
		ContactName:       "高橋健一",
		ServiceName:       "SFA/CRMシステム",
		ReasonCode:        ReasonTiming,
		AdditionalMessage: "将来的に検討の機会がございましたら、改めてご連絡させていただきます",
		SenderName:        "伊藤美咲",
		SenderCompany:     "株式会社グローバルエンタープライズ",
		Tone:              ToneFriendly,
	},
}

// Samples はサンプルデータのコピーを返します。
func Samples() []DeclineRequest {
	out := make([]DeclineRequest, len(samples))
	copy(out, samples)
	return out
}
