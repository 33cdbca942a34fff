package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"decline-mail-web/internal/cli"
	"decline-mail-web/internal/config"
	"decline-mail-web/internal/logger"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	if err := run(context.Background()); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. 設定のロード (検証はサブコマンドごとに行う)
	cfg := config.LoadConfig()

	// 2. ロガーの初期化。generate の出力と混ざらないよう標準エラーに書き出す
	logger.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	// 3. コマンドの実行
	return cli.NewRootCmd(cfg).ExecuteContext(ctx)
}
