package enum

type Metric int

const (
    Metric4xxError Metric = iota
    Metric5xxError
    MetricGroupIdReplied
    MetricGroupOnlyRejected
)

func (s Metric) String() string {
    return []string{
        "4XXError",
        "5XXError",
        "GroupIdReplied",
        "GroupOnlyRejected",
    }[s]
}

// IsResponseClass reports whether the metric describes an HTTP response class rather than a bot action.
func (s Metric) IsResponseClass() bool {
    return s == Metric4xxError || s == Metric5xxError
}
