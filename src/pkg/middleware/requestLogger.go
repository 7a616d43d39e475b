package middleware

import (
    chimiddleware "github.com/go-chi/chi/v5/middleware"
    "github.com/google/uuid"
    "go.uber.org/zap"
    "net/http"
    "time"
)

const RequestIdHeader = "X-Request-ID"

// RequestLogger logs the start and completion of every request with a request ID, generating one when the caller did not send it.
func RequestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            start := time.Now()
            reqId := r.Header.Get(RequestIdHeader)
            if reqId == "" {
                reqId = uuid.NewString()
            }
            w.Header().Set(RequestIdHeader, reqId)

            ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
            log.Infow("request started",
                "method", r.Method,
                "path", r.URL.Path,
                "requestId", reqId,
                "remoteIp", r.RemoteAddr,
            )
            next.ServeHTTP(ww, r)
            log.Infow("request completed",
                "method", r.Method,
                "path", r.URL.Path,
                "requestId", reqId,
                "status", ww.Status(),
                "durationMs", time.Since(start).Milliseconds(),
            )
        })
    }
}
