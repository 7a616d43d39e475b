package lineUtil

import (
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/util"
    "github.com/line/line-bot-sdk-go/v7/linebot"
)

// IsGroupIdCommand matches the trigger text exactly; surrounding whitespace or other casing does not match.
func IsGroupIdCommand(message string) bool {
    return message == util.GroupIdCommand
}

func IsEventFromGroup(event *linebot.Event) bool {
    return event.Source != nil && event.Source.Type == linebot.EventSourceTypeGroup
}

func GroupId(event *linebot.Event) string {
    if !IsEventFromGroup(event) {
        return ""
    }
    return event.Source.GroupID
}

func SourceType(event *linebot.Event) linebot.EventSourceType {
    if event.Source == nil {
        return ""
    }
    return event.Source.Type
}
