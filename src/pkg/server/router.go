package server

import (
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric"
    httpmiddleware "github.com/IntelliLead/GroupIdHandlers/src/pkg/middleware"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/webhook"
    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"
    "net/http"
)

type RouterConfig struct {
    Webhook *webhook.Handler
    Emitter metric.Emitter
    // MetricsHandler is mounted on /metrics when set.
    MetricsHandler http.Handler
    Log            *zap.SugaredLogger
}

func NewRouter(cfg RouterConfig) http.Handler {
    r := chi.NewRouter()

    r.Use(middleware.RealIP)
    r.Use(httpmiddleware.RequestLogger(cfg.Log))
    r.Use(middleware.Recoverer)
    if cfg.Emitter != nil {
        r.Use(httpmiddleware.HttpMetricMiddleware(cfg.Emitter, cfg.Log))
    }

    r.Get("/", webhook.Home)
    r.Get("/webhook", cfg.Webhook.Verify)
    r.Post("/webhook", cfg.Webhook.Callback)
    if cfg.MetricsHandler != nil {
        r.Handle("/metrics", cfg.MetricsHandler)
    }

    return r
}
