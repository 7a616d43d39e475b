package lineEventsHandlerTestEvents

import (
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "time"
)

const (
    TestGroupId    = "C4af4980629bd3c1d4b6e2dc82fd4b8ba"
    TestRoomId     = "Ra8dbf4673c4c812cd491258042226c99"
    TestUserId     = "Ucc29292b212e271132cee980c58e94eb"
    TestReplyToken = "36ffd31138354b2dbe94d1a7759fb9ab"
)

func NewTextMessageEvent(text string, source *linebot.EventSource) *linebot.Event {
    return &linebot.Event{
        Type:           linebot.EventTypeMessage,
        WebhookEventID: "01H1NCFZSJN1HAPFREM0193Y1Q",
        DeliveryContext: linebot.DeliveryContext{
            IsRedelivery: false,
        },
        Timestamp:  time.UnixMilli(1685418671895),
        Source:     source,
        ReplyToken: TestReplyToken,
        Mode:       linebot.EventModeActive,
        Message: &linebot.TextMessage{
            ID:   "468789577898262530",
            Text: text,
        },
    }
}

func GroupSource() *linebot.EventSource {
    return &linebot.EventSource{
        Type:    linebot.EventSourceTypeGroup,
        GroupID: TestGroupId,
        UserID:  TestUserId,
    }
}

func RoomSource() *linebot.EventSource {
    return &linebot.EventSource{
        Type:   linebot.EventSourceTypeRoom,
        RoomID: TestRoomId,
        UserID: TestUserId,
    }
}

func UserSource() *linebot.EventSource {
    return &linebot.EventSource{
        Type:   linebot.EventSourceTypeUser,
        UserID: TestUserId,
    }
}

var TestStickerMessageEvent = &linebot.Event{
    Type:       linebot.EventTypeMessage,
    Timestamp:  time.UnixMilli(1685418671895),
    Source:     GroupSource(),
    ReplyToken: TestReplyToken,
    Mode:       linebot.EventModeActive,
    Message: &linebot.StickerMessage{
        ID:        "468789577898262531",
        PackageID: "446",
        StickerID: "1988",
    },
}

var TestJoinEvent = &linebot.Event{
    Type:       linebot.EventTypeJoin,
    Timestamp:  time.UnixMilli(1685418671895),
    Source:     GroupSource(),
    ReplyToken: TestReplyToken,
    Mode:       linebot.EventModeActive,
}
