package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"decline-mail-web/internal/domain"

	"github.com/shouni/go-utils/envutil"
	"github.com/shouni/netarmor/securenet"
)

// --- 環境変数 ---

// getDurationEnv は time.ParseDuration 形式の環境変数を読み込みます。未設定・不正値・0 以下は fallback を返します。
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(envutil.GetEnv(key, ""))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration env value, using default", "key", key, "value", raw)
		return fallback
	}
	return d
}

// parseCommaSeparatedList はカンマ区切りの文字列を、空要素を除いたスライスに変換します。
func parseCommaSeparatedList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}

// --- バリデーション ---

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if !IsSecureURL(cfg.ServiceURL) {
		return fmt.Errorf("security error: SERVICE_URL ('%s') must be HTTPS in production", cfg.ServiceURL)
	}

	if cfg.TemplateOnly {
		return nil
	}

	if cfg.CompletionAPIKey == "" {
		return fmt.Errorf("%w: COMPLETION_API_KEY (or OPENAI_API_KEY) is not set; set TEMPLATE_ONLY=true to run without AI", domain.ErrConfiguration)
	}

	if !IsSecureURL(cfg.CompletionBaseURL) {
		return fmt.Errorf("security error: COMPLETION_BASE_URL ('%s') must be HTTPS", cfg.CompletionBaseURL)
	}

	if cfg.CompletionModel == "" {
		return fmt.Errorf("%w: COMPLETION_MODEL is empty", domain.ErrConfiguration)
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}
