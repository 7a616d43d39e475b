package middleware

import (
    "context"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric"
    enum2 "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric/enum"
    "github.com/aws/aws-lambda-go/events"
    chimiddleware "github.com/go-chi/chi/v5/middleware"
    "go.uber.org/zap"
    "net/http"
)

type LambdaHandler func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// MetricMiddleware emits a response-class metric for every 4xx/5xx Lambda response, and a 5XXError on panic before re-panicking.
func MetricMiddleware(emitter metric.Emitter, log *zap.SugaredLogger, handler LambdaHandler) LambdaHandler {
    return func(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
        var response events.LambdaFunctionURLResponse
        var err error

        defer func() {
            r := recover()
            if r != nil {
                log.Infof("Emitting 5XXError metric due to panic")
                emitter.Emit(ctx, enum2.Metric5xxError, 1.0)
                panic(r)
            }
            emitStatusMetric(ctx, emitter, log, response.StatusCode)
        }()

        response, err = handler(ctx, request)
        return response, err
    }
}

// HttpMetricMiddleware is the net/http counterpart of MetricMiddleware.
func HttpMetricMiddleware(emitter metric.Emitter, log *zap.SugaredLogger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

            defer func() {
                rec := recover()
                if rec != nil {
                    log.Infof("Emitting 5XXError metric due to panic")
                    emitter.Emit(r.Context(), enum2.Metric5xxError, 1.0)
                    panic(rec)
                }
                status := ww.Status()
                if status == 0 {
                    status = http.StatusOK
                }
                emitStatusMetric(r.Context(), emitter, log, status)
            }()

            next.ServeHTTP(ww, r)
        })
    }
}

func emitStatusMetric(ctx context.Context, emitter metric.Emitter, log *zap.SugaredLogger, statusCode int) {
    m, ok := metric.StatusMetric(statusCode)
    if !ok {
        return
    }
    log.Infof("Emitting %s metric", m)
    emitter.Emit(ctx, m, 1.0)
}
