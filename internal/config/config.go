package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/shouni/go-utils/envutil"
)

const (
	DefaultCompletionBaseURL = "https://api.openai.com/v1"
	DefaultCompletionModel   = "gpt-4o-mini"
	// DefaultHTTPTimeout は AI の応答 (最大 1500 トークン) を考慮したタイムアウト
	DefaultHTTPTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	ServiceURL      string
	Port            string
	ShutdownTimeout time.Duration

	// Completion API Settings
	CompletionAPIKey  string
	CompletionBaseURL string // OpenAI 互換 API のベース URL (例: "https://api.openai.com/v1")
	CompletionModel   string
	HTTPTimeout       time.Duration
	// TemplateOnly が true の場合、AI を呼ばずにテンプレート生成のみを行います。
	TemplateOnly bool
	// AllowPrivateNetwork が true の場合、外向き HTTP でループバックやプライベート IP への接続を許可します (ローカル LLM 等)。
	AllowPrivateNetwork bool

	SlackWebhookURL string

	// AllowedOrigins は CORS で許可するオリジンの一覧です。
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// LoadConfig は .env と環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	apiKey := envutil.GetEnv("COMPLETION_API_KEY", "")
	if apiKey == "" {
		apiKey = envutil.GetEnv("OPENAI_API_KEY", "")
	}

	return &Config{
		ServiceURL:      envutil.GetEnv("SERVICE_URL", "http://localhost:8080"),
		Port:            envutil.GetEnv("PORT", "8080"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		CompletionAPIKey:  apiKey,
		CompletionBaseURL: envutil.GetEnv("COMPLETION_BASE_URL", DefaultCompletionBaseURL),
		CompletionModel:   envutil.GetEnv("COMPLETION_MODEL", DefaultCompletionModel),
		HTTPTimeout:       getDurationEnv("COMPLETION_TIMEOUT", DefaultHTTPTimeout),
		TemplateOnly:      envutil.GetEnvAsBool("TEMPLATE_ONLY", false),

		AllowPrivateNetwork: envutil.GetEnvAsBool("ALLOW_PRIVATE_NETWORK", false),

		SlackWebhookURL: envutil.GetEnv("SLACK_WEBHOOK_URL", ""),

		AllowedOrigins: parseCommaSeparatedList(envutil.GetEnv("ALLOWED_ORIGINS", "*")),

		LogLevel:  envutil.GetEnv("LOG_LEVEL", "info"),
		LogFormat: envutil.GetEnv("LOG_FORMAT", "json"),
	}
}
