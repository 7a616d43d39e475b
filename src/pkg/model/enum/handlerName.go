package enum

type HandlerName int

const (
    HandlerNameLineEventsHandler HandlerName = iota
    HandlerNameLineWebhookServer
)

func (s HandlerName) String() string {
    return []string{
        "lineEventsHandler",
        "lineWebhookServer",
    }[s]
}
