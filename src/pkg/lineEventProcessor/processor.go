package lineEventProcessor

import (
    "context"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/jsonUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "go.uber.org/zap"
)

type Processor struct {
    line    *lineUtil.Line
    emitter metric.Emitter
    log     *zap.SugaredLogger
}

func NewProcessor(line *lineUtil.Line, emitter metric.Emitter, log *zap.SugaredLogger) *Processor {
    if emitter == nil {
        emitter = metric.NopEmitter{}
    }
    return &Processor{
        line:    line,
        emitter: emitter,
        log:     log,
    }
}

// ProcessEvents handles events in delivery order and stops at the first failure.
func (p *Processor) ProcessEvents(ctx context.Context, lineEvents []*linebot.Event) error {
    p.log.Infof("Received %d LINE events", len(lineEvents))

    for _, event := range lineEvents {
        p.log.Debugf("Processing event: %s", jsonUtil.AnyToJson(event))

        switch event.Type {
        case linebot.EventTypeMessage:
            err := p.processMessageEvent(ctx, event)
            if err != nil {
                return err
            }

        default:
            p.log.Info("Unhandled event type: ", event.Type)
        }
    }

    return nil
}

func (p *Processor) processMessageEvent(ctx context.Context, event *linebot.Event) error {
    switch message := event.Message.(type) {
    case *linebot.TextMessage:
        return p.processTextMessage(ctx, event, message)

    default:
        p.log.Infof("Ignoring non-text message from %s source", lineUtil.SourceType(event))
        return nil
    }
}
