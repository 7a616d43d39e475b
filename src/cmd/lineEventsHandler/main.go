package main

import (
    "context"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/bootstrap"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/jsonUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/middleware"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/util"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/webhook"
    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-lambda-go/lambda"
    "go.uber.org/zap"
    "net/http"
    "os"
)

type lambdaHandler struct {
    webhook *webhook.Handler
    log     *zap.SugaredLogger
}

func (h *lambdaHandler) handleRequest(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
    h.log.Info("Received new request: ", jsonUtil.AnyToJson(request))

    method := request.RequestContext.HTTP.Method
    path := request.RawPath
    if path == "" {
        path = "/"
    }

    switch {
    case method == http.MethodGet && path == "/":
        return textResponse(http.StatusOK, util.HomeMessage), nil

    case method == http.MethodGet && path == "/webhook":
        // LINE Developers Console "Verify" button
        return textResponse(http.StatusOK, util.OkMessage), nil

    case method == http.MethodPost && (path == "/webhook" || path == "/"):
        httpRequest, err := lineUtil.ToHttpRequest(ctx, &request)
        if err != nil {
            h.log.Error("Error converting Lambda request: ", err)
            return textResponse(http.StatusBadRequest, http.StatusText(http.StatusBadRequest)), nil
        }

        status, err := h.webhook.Handle(ctx, httpRequest)
        if err != nil {
            return textResponse(status, http.StatusText(status)), nil
        }
        return textResponse(http.StatusOK, util.OkMessage), nil

    case path == "/" || path == "/webhook":
        return textResponse(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)), nil

    default:
        return textResponse(http.StatusNotFound, http.StatusText(http.StatusNotFound)), nil
    }
}

func textResponse(statusCode int, body string) events.LambdaFunctionURLResponse {
    return events.LambdaFunctionURLResponse{
        StatusCode: statusCode,
        Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
        Body:       body,
    }
}

func main() {
    cfg, log, err := bootstrap.LoadConfig()
    if err != nil {
        os.Exit(1)
    }
    defer log.Sync()

    // --------------------
    // initialize resources
    // --------------------
    var emitter metric.Emitter = metric.NopEmitter{}
    if cfg.MetricsEnabled {
        cloudWatchEmitter, err := metric.NewCloudWatchEmitter(context.Background(), cfg.AwsRegion, enum.HandlerNameLineEventsHandler, log)
        if err != nil {
            log.Fatal("Error creating CloudWatch emitter: ", err)
        }
        emitter = cloudWatchEmitter
    }

    webhookHandler, err := bootstrap.NewWebhookHandler(cfg, emitter, log)
    if err != nil {
        log.Fatal("Error creating webhook handler: ", err)
    }

    handler := &lambdaHandler{webhook: webhookHandler, log: log}
    lambda.Start(middleware.MetricMiddleware(emitter, log, handler.handleRequest))
}
