package lineUtil

import (
    "context"
    "encoding/base64"
    "fmt"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/jsonUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/util"
    "github.com/aws/aws-lambda-go/events"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "go.uber.org/zap"
    "io"
    "net/http"
    "net/url"
    "strings"
)

type Line struct {
    lineClient *linebot.Client
    log        *zap.SugaredLogger
}

// NewLine creates the LINE client. apiEndpoint overrides the LINE API base URL when non-empty.
func NewLine(channelSecret string, channelAccessToken string, apiEndpoint string, log *zap.SugaredLogger) (*Line, error) {
    var options []linebot.ClientOption
    if apiEndpoint != "" {
        options = append(options, linebot.WithEndpointBase(apiEndpoint))
    }

    lineClient, err := linebot.New(channelSecret, channelAccessToken, options...)
    if err != nil {
        log.Error("cannot create new Line Client: ", err)
        return nil, err
    }

    return &Line{
        lineClient: lineClient,
        log:        log,
    }, nil
}

// ParseRequest verifies X-Line-Signature against the raw body and parses the events.
// It returns linebot.ErrInvalidSignature when verification fails.
func (l *Line) ParseRequest(request *http.Request) ([]*linebot.Event, error) {
    return l.lineClient.ParseRequest(request)
}

func (l *Line) ReplyText(ctx context.Context, replyToken string, text string) error {
    resp, err := l.lineClient.ReplyMessage(replyToken, linebot.NewTextMessage(text)).WithContext(ctx).Do()
    if err != nil {
        l.log.Error("Error sending reply message to line: ", err)
        return err
    }

    l.log.Debugf("Successfully executed line.ReplyMessage: %s", jsonUtil.AnyToJson(resp))
    return nil
}

func (l *Line) ReplyGroupId(ctx context.Context, replyToken string, groupId string) error {
    return l.ReplyText(ctx, replyToken, fmt.Sprintf(util.GroupIdReplyTemplate, groupId))
}

func (l *Line) ReplyGroupOnly(ctx context.Context, replyToken string) error {
    return l.ReplyText(ctx, replyToken, util.GroupOnlyReply)
}

// ToHttpRequest wraps a Lambda function URL request so the LINE SDK can verify and parse it.
func ToHttpRequest(ctx context.Context, request *events.LambdaFunctionURLRequest) (*http.Request, error) {
    body := request.Body
    if request.IsBase64Encoded {
        decoded, err := base64.StdEncoding.DecodeString(request.Body)
        if err != nil {
            return nil, fmt.Errorf("error decoding base64 request body: %w", err)
        }
        body = string(decoded)
    }

    headers := http.Header{}
    for k, v := range request.Headers {
        headers.Set(k, v)
    }

    return (&http.Request{
        Method:        request.RequestContext.HTTP.Method,
        URL:           &url.URL{Path: request.RawPath, RawQuery: request.RawQueryString},
        Header:        headers,
        Body:          io.NopCloser(strings.NewReader(body)),
        ContentLength: int64(len(body)),
    }).WithContext(ctx), nil
}
