package handlers

import (
	"decline-mail-web/internal/pipeline"
)

// maxRequestBodyBytes はリクエストボディの上限です。受信メール全文を貼り付けても収まる大きさにしています。
const maxRequestBodyBytes = 256 << 10

// Handler は JSON API のハンドラー群です。
type Handler struct {
	pipeline pipeline.Pipeline
}

// NewHandler は生成パイプラインを受け取り、新しいハンドラーを初期化します。
func NewHandler(p pipeline.Pipeline) *Handler {
	return &Handler{pipeline: p}
}
