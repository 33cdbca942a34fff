package pipeline

import (
	"context"
	"log/slog"

	"decline-mail-web/internal/domain"
)

// notifyFallback はテンプレート生成への切り替えを通知します。
// 通知自体の失敗は生成結果に影響させません。
func (p *DeclinePipeline) notifyFallback(ctx context.Context, e *declineExecution, cause error) {
	if p.notifier == nil {
		return
	}

	req := domain.NotificationRequest{
		RequestID:     e.requestID,
		CompanyName:   e.req.CompanyName,
		ReasonCode:    e.req.ReasonCode,
		ExecutionMode: e.mode,
	}

	if err := p.notifier.NotifyFallback(ctx, cause, req); err != nil {
		slog.ErrorContext(ctx, "Failed to send fallback notification", "request_id", e.requestID, "error", err)
	}
}
