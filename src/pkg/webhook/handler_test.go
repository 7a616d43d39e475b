package webhook

import (
    "context"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/IntelliLead/GroupIdHandlers/src/pkg/exception"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineEventProcessor"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/tst/data"
    "github.com/IntelliLead/GroupIdHandlers/tst/stub"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap/zaptest"
)

func newTestHandler(t *testing.T) (*Handler, *stub.LineApi) {
    api := stub.NewLineApi()
    t.Cleanup(api.Close)

    log := zaptest.NewLogger(t).Sugar()
    line, err := lineUtil.NewLine(data.TestChannelSecret, data.TestChannelAccessToken, api.URL(), log)
    require.NoError(t, err)

    return NewHandler(line, lineEventProcessor.NewProcessor(line, nil, log), log), api
}

func webhookRequest(body string, signature string) *http.Request {
    request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
    request.Header.Set("X-Line-Signature", signature)
    return request
}

func TestHandle_GroupIdScenario(t *testing.T) {
    handler, api := newTestHandler(t)

    status, err := handler.Handle(context.Background(), webhookRequest(data.GroupIdScenarioBody, data.Sign(data.TestChannelSecret, data.GroupIdScenarioBody)))
    require.NoError(t, err)
    assert.Equal(t, http.StatusOK, status)

    replies := api.Replies()
    require.Len(t, replies, 1)
    assert.Equal(t, "R1", replies[0].ReplyToken)
    assert.Contains(t, replies[0].Messages[0].Text, "G123")
}

func TestHandle_InvalidSignature(t *testing.T) {
    handler, api := newTestHandler(t)

    status, err := handler.Handle(context.Background(), webhookRequest(data.GroupIdScenarioBody, data.Sign("wrong-secret", data.GroupIdScenarioBody)))
    assert.Equal(t, http.StatusBadRequest, status)

    var invalidSignature *exception.InvalidSignatureException
    assert.ErrorAs(t, err, &invalidSignature)
    assert.Empty(t, api.Replies())
}

func TestHandle_MalformedPayload(t *testing.T) {
    handler, _ := newTestHandler(t)
    body := `{"events":[`

    status, err := handler.Handle(context.Background(), webhookRequest(body, data.Sign(data.TestChannelSecret, body)))
    assert.Equal(t, http.StatusInternalServerError, status)

    var dispatch *exception.DispatchException
    assert.ErrorAs(t, err, &dispatch)
}

func TestHandle_ReplyFailure(t *testing.T) {
    handler, api := newTestHandler(t)
    api.FailWith(http.StatusBadRequest)

    status, err := handler.Handle(context.Background(), webhookRequest(data.GroupIdScenarioBody, data.Sign(data.TestChannelSecret, data.GroupIdScenarioBody)))
    assert.Equal(t, http.StatusInternalServerError, status)

    var dispatch *exception.DispatchException
    assert.ErrorAs(t, err, &dispatch)
}

func TestCallback(t *testing.T) {
    handler, _ := newTestHandler(t)

    recorder := httptest.NewRecorder()
    handler.Callback(recorder, webhookRequest(data.EmptyEventsBody, data.Sign(data.TestChannelSecret, data.EmptyEventsBody)))
    assert.Equal(t, http.StatusOK, recorder.Code)
    assert.Equal(t, "OK", recorder.Body.String())

    recorder = httptest.NewRecorder()
    handler.Callback(recorder, webhookRequest(data.EmptyEventsBody, "bm90LWEtc2lnbmF0dXJl"))
    assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestVerifyAndHome(t *testing.T) {
    handler, _ := newTestHandler(t)

    recorder := httptest.NewRecorder()
    handler.Verify(recorder, httptest.NewRequest(http.MethodGet, "/webhook", strings.NewReader("ignored")))
    assert.Equal(t, http.StatusOK, recorder.Code)
    assert.Equal(t, "OK", recorder.Body.String())

    recorder = httptest.NewRecorder()
    Home(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
    assert.Equal(t, http.StatusOK, recorder.Code)
    assert.Equal(t, "伺服器運行中！", recorder.Body.String())
}
