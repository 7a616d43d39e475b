package stub

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "sync"
)

type ReplyMessage struct {
    Type string `json:"type"`
    Text string `json:"text"`
}

type ReplyRequest struct {
    ReplyToken    string         `json:"replyToken"`
    Messages      []ReplyMessage `json:"messages"`
    Authorization string         `json:"-"`
}

// LineApi is an httptest stand-in for the LINE Messaging API reply endpoint.
type LineApi struct {
    Server *httptest.Server

    mu         sync.Mutex
    replies    []ReplyRequest
    statusCode int
}

func NewLineApi() *LineApi {
    api := &LineApi{statusCode: http.StatusOK}
    api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
    return api
}

func (a *LineApi) URL() string {
    return a.Server.URL
}

func (a *LineApi) Close() {
    a.Server.Close()
}

// FailWith makes subsequent reply calls answer with statusCode.
func (a *LineApi) FailWith(statusCode int) {
    a.mu.Lock()
    defer a.mu.Unlock()
    a.statusCode = statusCode
}

func (a *LineApi) Replies() []ReplyRequest {
    a.mu.Lock()
    defer a.mu.Unlock()
    return append([]ReplyRequest(nil), a.replies...)
}

func (a *LineApi) serve(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost || r.URL.Path != "/v2/bot/message/reply" {
        http.NotFound(w, r)
        return
    }

    var reply ReplyRequest
    err := json.NewDecoder(r.Body).Decode(&reply)
    if err != nil {
        http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
        return
    }
    reply.Authorization = r.Header.Get("Authorization")

    a.mu.Lock()
    a.replies = append(a.replies, reply)
    statusCode := a.statusCode
    a.mu.Unlock()

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(statusCode)
    if statusCode != http.StatusOK {
        _, _ = w.Write([]byte(`{"message":"Invalid reply token"}`))
        return
    }
    _, _ = w.Write([]byte(`{}`))
}
