package metric

import (
    "context"
    enum2 "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric/enum"
)

// Emitter records a metric for the handler it was created for. Implementations log failures instead of returning them.
type Emitter interface {
    Emit(ctx context.Context, metric enum2.Metric, value float64)
}

type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, enum2.Metric, float64) {}

// StatusMetric maps an HTTP status code to the response-class metric to emit, if any.
func StatusMetric(statusCode int) (enum2.Metric, bool) {
    if statusCode >= 400 && statusCode < 500 {
        return enum2.Metric4xxError, true
    } else if statusCode >= 500 {
        return enum2.Metric5xxError, true
    }
    return 0, false
}
