package lineEventProcessor

import (
    "context"
    "fmt"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric/enum"
    "github.com/line/line-bot-sdk-go/v7/linebot"
)

// processTextMessage answers the group ID command. Any other text is ignored.
func (p *Processor) processTextMessage(ctx context.Context, event *linebot.Event, message *linebot.TextMessage) error {
    if !lineUtil.IsGroupIdCommand(message.Text) {
        p.log.Debug("Text message is not a command. Ignoring.")
        return nil
    }

    if lineUtil.IsEventFromGroup(event) {
        groupId := lineUtil.GroupId(event)
        err := p.line.ReplyGroupId(ctx, event.ReplyToken, groupId)
        if err != nil {
            return fmt.Errorf("failed to reply group ID '%s': %w", groupId, err)
        }

        p.emitter.Emit(ctx, enum.MetricGroupIdReplied, 1.0)
        p.log.Infof("Replied group ID '%s'", groupId)
        return nil
    }

    sourceType := lineUtil.SourceType(event)
    err := p.line.ReplyGroupOnly(ctx, event.ReplyToken)
    if err != nil {
        return fmt.Errorf("failed to reply group-only notice to %s source: %w", sourceType, err)
    }

    p.emitter.Emit(ctx, enum.MetricGroupOnlyRejected, 1.0)
    p.log.Infof("Rejected group ID command from %s source", sourceType)
    return nil
}
