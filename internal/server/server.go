package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decline-mail-web/internal/builder"
	"decline-mail-web/internal/config"
)

const (
	// 設定が 0 の場合のシャットダウン猶予
	fallbackShutdownTimeout = 30 * time.Second
	readHeaderTimeout       = 10 * time.Second
)

// Run は設定を検証してお断りメール API を起動し、シグナルまたは ctx の終了で停止させます。
func Run(ctx context.Context, cfg *config.Config) error {
	if err := config.ValidateEssentialConfig(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	container, err := builder.BuildContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application container: %w", err)
	}

	h, err := builder.BuildHandlers(container)
	if err != nil {
		return fmt.Errorf("failed to build handlers: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, h),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("📨 Decline mail API listening",
			"port", cfg.Port,
			"service_url", cfg.ServiceURL,
			"template_only", container.TemplateOnly(),
			"model", cfg.CompletionModel,
			"slack_alerts", cfg.SlackWebhookURL != "",
		)
		listenErr <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("decline mail API stopped unexpectedly: %w", err)
	case s := <-sig:
		slog.Info("Received signal, draining in-flight generations", "signal", s.String())
	case <-ctx.Done():
		slog.Info("Context cancelled, draining in-flight generations")
	}

	return shutdown(srv, cfg.ShutdownTimeout)
}

// shutdown は生成中のリクエストの完了を待ってからサーバーを停止します。猶予を過ぎた場合は強制的に閉じます。
func shutdown(srv *http.Server, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = fallbackShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("In-flight generations did not finish in time, closing connections", "timeout", timeout, "error", err)
		if closeErr := srv.Close(); closeErr != nil {
			return fmt.Errorf("could not stop server: shutdown error: %v, close error: %v", err, closeErr)
		}
		return fmt.Errorf("could not stop server gracefully: %w", err)
	}

	slog.Info("Decline mail API stopped")
	return nil
}
