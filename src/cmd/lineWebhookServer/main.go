package main

import (
    "context"
    "errors"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/bootstrap"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/server"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"
)

func main() {
    cfg, log, err := bootstrap.LoadConfig()
    if err != nil {
        os.Exit(1)
    }
    defer log.Sync()

    // --------------------
    // initialize resources
    // --------------------
    routerConfig := server.RouterConfig{Log: log}
    var emitter metric.Emitter = metric.NopEmitter{}
    if cfg.MetricsEnabled {
        emitter = metric.NewPrometheusEmitter(prometheus.DefaultRegisterer, enum.HandlerNameLineWebhookServer)
        routerConfig.Emitter = emitter
        routerConfig.MetricsHandler = promhttp.Handler()
    }

    routerConfig.Webhook, err = bootstrap.NewWebhookHandler(cfg, emitter, log)
    if err != nil {
        log.Fatal("Error creating webhook handler: ", err)
    }

    srv := &http.Server{
        Addr:              ":" + cfg.Port,
        Handler:           server.NewRouter(routerConfig),
        ReadHeaderTimeout: 10 * time.Second,
    }

    // --------------------
    // serve until interrupted
    // --------------------
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    go func() {
        log.Infof("Listening on %s", srv.Addr)
        err := srv.ListenAndServe()
        if err != nil && !errors.Is(err, http.ErrServerClosed) {
            log.Fatal("Error serving HTTP: ", err)
        }
    }()

    <-ctx.Done()
    log.Info("Shutting down")

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    err = srv.Shutdown(shutdownCtx)
    if err != nil {
        log.Error("Error shutting down HTTP server: ", err)
    }
}
