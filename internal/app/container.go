package app

import (
	"decline-mail-web/internal/adapters"
	"decline-mail-web/internal/config"
	"decline-mail-web/internal/pipeline"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shouni/go-http-kit/httpkit"
)

// Container はアプリケーションの依存関係（DIコンテナ）を保持します。
type Container struct {
	Config *config.Config

	// External Adapters
	// HTTPClient は AI 生成と Slack 通知で共有する外向きクライアントです。
	HTTPClient *httpkit.Client
	// Remote はテンプレート専用モードでは nil です。
	Remote adapters.RemoteGenerator

	// Business Logic
	Pipeline pipeline.Pipeline

	// Observability
	Registry *prometheus.Registry
}

// TemplateOnly は AI を呼ばない構成かどうかを返します。
func (c *Container) TemplateOnly() bool {
	return c.Remote == nil
}
