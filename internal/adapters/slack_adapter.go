package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"decline-mail-web/internal/domain"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-notifier/pkg/slack"
)

const (
	slackUsername = "decline-mail"
	// FallbackAlertTitle はフォールバック通知のヘッダーです。
	FallbackAlertTitle = "⚠️ AI生成に失敗したため、テンプレートでメールを作成しました"
)

// --- インターフェース定義 ---

// FallbackNotifier は AI 生成がテンプレート生成に切り替わったことを運用者に知らせます。
type FallbackNotifier interface {
	NotifyFallback(ctx context.Context, cause error, req domain.NotificationRequest) error
}

// --- 具象アダプター ---

type SlackAdapter struct {
	slackClient *slack.Client
}

// NewSlackAdapter は Slack クライアントを初期化します。webhookURL が空の場合は通知をスキップするアダプターを返します。
func NewSlackAdapter(httpClient httpkit.Requester, webhookURL string) (*SlackAdapter, error) {
	if webhookURL == "" {
		return &SlackAdapter{}, nil
	}
	client, err := slack.NewClient(httpClient, webhookURL, slack.WithUsername(slackUsername))
	if err != nil {
		return nil, fmt.Errorf("Slackクライアントの初期化に失敗しました: %w", err)
	}

	return &SlackAdapter{slackClient: client}, nil
}

// NotifyFallback は AI 生成の失敗内容と実行メタデータを Slack に送信します。
func (a *SlackAdapter) NotifyFallback(ctx context.Context, cause error, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.DebugContext(ctx, "Slack client not configured, skipping fallback notification", "request_id", req.RequestID)
		return nil
	}

	content := buildFallbackContent(cause, req)

	if err := a.slackClient.SendTextWithHeader(ctx, FallbackAlertTitle, content); err != nil {
		return fmt.Errorf("Slackへの通知に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Fallback notification sent to Slack", "request_id", req.RequestID)
	return nil
}

// buildFallbackContent は Slack の mrkdwn 形式で通知本文を組み立てます。
func buildFallbackContent(cause error, req domain.NotificationRequest) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*リクエストID:* `%s`\n", req.RequestID))
	sb.WriteString(fmt.Sprintf("*実行モード:* `%s`\n", req.ExecutionMode))
	sb.WriteString(fmt.Sprintf("*宛先:* %s\n", req.CompanyName))
	if req.ReasonCode != "" {
		sb.WriteString(fmt.Sprintf("*理由コード:* `%s`\n", req.ReasonCode))
	}

	sb.WriteString("\n*エラー内容:*\n")
	sb.WriteString(fmt.Sprintf("```\n%v\n```", cause))
	return sb.String()
}
