package server

import (
	"net/http"

	"decline-mail-web/internal/builder"
	"decline-mail-web/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(cfg *config.Config, h *builder.AppHandlers) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r, cfg)
	setupRoutes(r, h)

	return r
}

func setupCommonMiddleware(r *chi.Mux, cfg *config.Config) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(newCORS(cfg.AllowedOrigins).Handler)
}

// newCORS はブラウザから API を直接呼び出せるよう CORS を設定します。
func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
}

func setupRoutes(r chi.Router, h *builder.AppHandlers) {
	r.Get("/healthz", h.API.Healthz)
	r.Handle("/metrics", h.Metrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.API.HandleGenerate)
		r.Post("/regenerate", h.API.HandleRegenerate)
		r.Get("/reasons", h.API.Reasons)
		r.Get("/samples", h.API.Samples)
	})
}
