package lineEventProcessor

import (
    "context"
    "net/http"
    "sync"
    "testing"

    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric/enum"
    "github.com/IntelliLead/GroupIdHandlers/tst/data"
    testEvents "github.com/IntelliLead/GroupIdHandlers/tst/data/lineEventsHandlerTestEvents"
    "github.com/IntelliLead/GroupIdHandlers/tst/stub"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap/zaptest"
)

type recordingEmitter struct {
    mu      sync.Mutex
    metrics []enum.Metric
}

func (r *recordingEmitter) Emit(_ context.Context, metric enum.Metric, _ float64) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.metrics = append(r.metrics, metric)
}

func newTestProcessor(t *testing.T) (*Processor, *stub.LineApi, *recordingEmitter) {
    api := stub.NewLineApi()
    t.Cleanup(api.Close)

    log := zaptest.NewLogger(t).Sugar()
    line, err := lineUtil.NewLine(data.TestChannelSecret, data.TestChannelAccessToken, api.URL(), log)
    require.NoError(t, err)

    emitter := &recordingEmitter{}
    return NewProcessor(line, emitter, log), api, emitter
}

func TestProcessEvents_GroupIdCommandInGroup(t *testing.T) {
    processor, api, emitter := newTestProcessor(t)

    err := processor.ProcessEvents(context.Background(), []*linebot.Event{
        testEvents.NewTextMessageEvent("群組ID", testEvents.GroupSource()),
    })
    require.NoError(t, err)

    replies := api.Replies()
    require.Len(t, replies, 1)
    assert.Equal(t, testEvents.TestReplyToken, replies[0].ReplyToken)
    require.Len(t, replies[0].Messages, 1)
    assert.Contains(t, replies[0].Messages[0].Text, testEvents.TestGroupId)
    assert.Equal(t, []enum.Metric{enum.MetricGroupIdReplied}, emitter.metrics)
}

func TestProcessEvents_GroupIdCommandOutsideGroup(t *testing.T) {
    sources := map[string]*linebot.EventSource{
        "user":    testEvents.UserSource(),
        "room":    testEvents.RoomSource(),
        "missing": nil,
    }

    for name, source := range sources {
        t.Run(name, func(t *testing.T) {
            processor, api, emitter := newTestProcessor(t)

            err := processor.ProcessEvents(context.Background(), []*linebot.Event{
                testEvents.NewTextMessageEvent("群組ID", source),
            })
            require.NoError(t, err)

            replies := api.Replies()
            require.Len(t, replies, 1)
            assert.Equal(t, "這個指令只能在群組中使用喔！", replies[0].Messages[0].Text)
            assert.NotContains(t, replies[0].Messages[0].Text, testEvents.TestGroupId)
            assert.NotContains(t, replies[0].Messages[0].Text, testEvents.TestRoomId)
            assert.Equal(t, []enum.Metric{enum.MetricGroupOnlyRejected}, emitter.metrics)
        })
    }
}

func TestProcessEvents_Ignored(t *testing.T) {
    testCases := map[string]*linebot.Event{
        "other text":      testEvents.NewTextMessageEvent("hello", testEvents.GroupSource()),
        "trailing space":  testEvents.NewTextMessageEvent("群組ID ", testEvents.GroupSource()),
        "sticker message": testEvents.TestStickerMessageEvent,
        "join event":      testEvents.TestJoinEvent,
    }

    for name, event := range testCases {
        t.Run(name, func(t *testing.T) {
            processor, api, emitter := newTestProcessor(t)

            err := processor.ProcessEvents(context.Background(), []*linebot.Event{event})
            require.NoError(t, err)
            assert.Empty(t, api.Replies())
            assert.Empty(t, emitter.metrics)
        })
    }
}

func TestProcessEvents_NoEvents(t *testing.T) {
    processor, api, _ := newTestProcessor(t)

    require.NoError(t, processor.ProcessEvents(context.Background(), nil))
    assert.Empty(t, api.Replies())
}

func TestProcessEvents_MultipleEvents(t *testing.T) {
    processor, api, _ := newTestProcessor(t)

    err := processor.ProcessEvents(context.Background(), []*linebot.Event{
        testEvents.NewTextMessageEvent("hello", testEvents.UserSource()),
        testEvents.NewTextMessageEvent("群組ID", testEvents.GroupSource()),
        testEvents.NewTextMessageEvent("群組ID", testEvents.UserSource()),
    })
    require.NoError(t, err)
    assert.Len(t, api.Replies(), 2)
}

func TestProcessEvents_ReplyFailurePropagates(t *testing.T) {
    processor, api, emitter := newTestProcessor(t)
    api.FailWith(http.StatusInternalServerError)

    err := processor.ProcessEvents(context.Background(), []*linebot.Event{
        testEvents.NewTextMessageEvent("群組ID", testEvents.GroupSource()),
        testEvents.NewTextMessageEvent("群組ID", testEvents.UserSource()),
    })
    require.Error(t, err)

    var apiErr *linebot.APIError
    assert.ErrorAs(t, err, &apiErr)
    // processing stops at the first failed reply
    assert.Len(t, api.Replies(), 1)
    assert.Empty(t, emitter.metrics)
}
