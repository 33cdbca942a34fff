// Package logger は slog のデフォルトハンドラーを設定します。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel はログレベル文字列を slog.Level に変換します。未知の値は Info として扱います。
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler は format に応じたハンドラーを生成します。
// "text" の場合は tint による色付きの人間向け出力、それ以外は JSON 出力です。
func NewHandler(w io.Writer, level, format string) slog.Handler {
	lvl := ParseLevel(level)
	if strings.EqualFold(format, "text") {
		return tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
}

// Setup は w に出力するロガーを slog のデフォルトに設定します。w が nil の場合は標準出力を使います。
func Setup(w io.Writer, level, format string) {
	if w == nil {
		w = os.Stdout
	}
	slog.SetDefault(slog.New(NewHandler(w, level, format)))
}
