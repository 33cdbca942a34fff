package builder

import (
	"fmt"
	"net/http"

	"decline-mail-web/internal/app"
	"decline-mail-web/internal/server/handlers"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AppHandlers は生成されたすべての HTTP ハンドラーを保持する構造体です。
// server パッケージはこの構造体を受け取ってルーティングを行います。
type AppHandlers struct {
	API     *handlers.Handler
	Metrics http.Handler
}

// BuildHandlers は各ハンドラーの依存関係をすべて組み立て、AppHandlers 構造体を返します。
func BuildHandlers(c *app.Container) (*AppHandlers, error) {
	if c.Pipeline == nil {
		return nil, fmt.Errorf("pipeline is not initialized")
	}

	metricsHandler := http.NotFoundHandler()
	if c.Registry != nil {
		metricsHandler = promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{})
	}

	return &AppHandlers{
		API:     handlers.NewHandler(c.Pipeline),
		Metrics: metricsHandler,
	}, nil
}
