package metric

import (
    "context"
    enum2 "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric/enum"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "github.com/prometheus/client_golang/prometheus"
)

type PrometheusEmitter struct {
    events      *prometheus.CounterVec
    handlerName enum.HandlerName
}

func NewPrometheusEmitter(reg prometheus.Registerer, handlerName enum.HandlerName) *PrometheusEmitter {
    e := &PrometheusEmitter{
        events: prometheus.NewCounterVec(prometheus.CounterOpts{
            Namespace: "groupid",
            Subsystem: "webhook",
            Name:      "events_total",
            Help:      "Webhook response classes and bot actions",
        }, []string{"handler", "metric"}),
        handlerName: handlerName,
    }
    if reg == nil {
        reg = prometheus.DefaultRegisterer
    }
    reg.MustRegister(e.events)
    return e
}

func (e *PrometheusEmitter) Emit(_ context.Context, metric enum2.Metric, value float64) {
    if e == nil {
        return
    }
    e.events.WithLabelValues(e.handlerName.String(), metric.String()).Add(value)
}
