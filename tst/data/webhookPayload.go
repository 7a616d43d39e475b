package data

import (
    "crypto/hmac"
    "crypto/sha256"
    "encoding/base64"
    "fmt"
)

const TestChannelSecret = "1866316d011430ce4c45a71fabb223fe"
const TestChannelAccessToken = "test-channel-access-token"

// GroupIdScenarioBody is a group text event asking for the group ID with reply token R1.
const GroupIdScenarioBody = `{"events":[{"type":"message","message":{"type":"text","text":"群組ID"},"source":{"type":"group","groupId":"G123"},"replyToken":"R1"}]}`

// EmptyEventsBody is what the LINE console sends when verifying the webhook URL.
const EmptyEventsBody = `{"destination":"U8e742f61d673b39c7fff3cecb7536ef0","events":[]}`

func TextEventBody(text string, sourceJson string, replyToken string) string {
    return fmt.Sprintf(`{"events":[{"type":"message","mode":"active","timestamp":1685418671895,"message":{"type":"text","id":"468789577898262530","text":%q},"source":%s,"replyToken":%q}]}`,
        text, sourceJson, replyToken)
}

const GroupSourceJson = `{"type":"group","groupId":"G123","userId":"U1"}`
const RoomSourceJson = `{"type":"room","roomId":"R123","userId":"U1"}`
const UserSourceJson = `{"type":"user","userId":"U1"}`

// Sign computes the X-Line-Signature for body.
func Sign(channelSecret string, body string) string {
    mac := hmac.New(sha256.New, []byte(channelSecret))
    mac.Write([]byte(body))
    return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
