package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"decline-mail-web/internal/adapters"
	"decline-mail-web/internal/app"
	"decline-mail-web/internal/config"
	"decline-mail-web/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shouni/go-http-kit/httpkit"
)

// Slack 通知のリトライ設定。通知はリクエスト処理中に同期的に送られるため、待ち時間を短く抑えます。
// AI 生成は Do を直接使うためリトライの対象外です。
const (
	notifyMaxRetries      = 1
	notifyInitialInterval = 500 * time.Millisecond
	notifyMaxInterval     = 2 * time.Second
)

// BuildContainer は外部サービスとの接続を準備し、依存関係を組み立てます。
func BuildContainer(ctx context.Context, cfg *config.Config) (*app.Container, error) {
	// 1. 基盤クライアントの初期化
	c := &app.Container{
		Config:     cfg,
		HTTPClient: newHTTPClient(cfg),
	}

	// 2. メトリクス
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.New(c.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	// 3. アダプターの初期化
	c.Remote = buildRemote(ctx, c)
	slack, err := adapters.NewSlackAdapter(c.HTTPClient, cfg.SlackWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Slack adapter: %w", err)
	}

	// 4. パイプラインの構築
	c.Pipeline = buildPipeline(c.Remote, slack, recorder)

	return c, nil
}

// BuildOfflineContainer は CLI 向けに、通知もメトリクス登録も行わないコンテナを組み立てます。
// offline が true の場合は AI を呼ばずテンプレート生成のみを行います。
func BuildOfflineContainer(ctx context.Context, cfg *config.Config, offline bool) *app.Container {
	c := &app.Container{
		Config:     cfg,
		HTTPClient: newHTTPClient(cfg),
	}
	if !offline {
		c.Remote = buildRemote(ctx, c)
	}
	c.Pipeline = buildPipeline(c.Remote, nil, metrics.Noop{})
	return c
}

// newHTTPClient は共有の httpkit クライアントを生成します。
// 既定では SSRF 対策付きのクライアントとなり、ループバックやプライベート IP への接続は拒否されます。
func newHTTPClient(cfg *config.Config) *httpkit.Client {
	return httpkit.New(cfg.HTTPTimeout,
		httpkit.WithMaxRetries(notifyMaxRetries),
		httpkit.WithInitialInterval(notifyInitialInterval),
		httpkit.WithMaxInterval(notifyMaxInterval),
		httpkit.WithSkipNetworkValidation(cfg.AllowPrivateNetwork),
	)
}

// buildRemote は AI 生成アダプターを初期化します。テンプレート専用モードでは nil を返します。
func buildRemote(ctx context.Context, c *app.Container) adapters.RemoteGenerator {
	cfg := c.Config
	if cfg.TemplateOnly {
		slog.InfoContext(ctx, "Template-only mode enabled, completion API will not be called")
		return nil
	}
	return adapters.NewCompletionAdapter(adapters.CompletionConfig{
		APIKey:  cfg.CompletionAPIKey,
		BaseURL: cfg.CompletionBaseURL,
		Model:   cfg.CompletionModel,
	}, c.HTTPClient)
}
