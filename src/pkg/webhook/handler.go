package webhook

import (
    "context"
    "errors"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/exception"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineEventProcessor"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/util"
    "github.com/line/line-bot-sdk-go/v7/linebot"
    "go.uber.org/zap"
    "net/http"
)

type Handler struct {
    line      *lineUtil.Line
    processor *lineEventProcessor.Processor
    log       *zap.SugaredLogger
}

func NewHandler(line *lineUtil.Line, processor *lineEventProcessor.Processor, log *zap.SugaredLogger) *Handler {
    return &Handler{
        line:      line,
        processor: processor,
        log:       log,
    }
}

/*
Handle verifies the LINE signature of request and dispatches every event it carries.

Returns:

	int - 200 on success, 400 when the signature does not verify, 500 for any other failure
	error - *exception.InvalidSignatureException or *exception.DispatchException when the status is not 200
*/
func (h *Handler) Handle(ctx context.Context, request *http.Request) (int, error) {
    // --------------------
    // verify and parse
    // --------------------
    lineEvents, err := h.line.ParseRequest(request)
    if err != nil {
        if errors.Is(err, linebot.ErrInvalidSignature) {
            h.log.Error("Signature verification failed. Check that the channel secret is correct: ", err)
            return http.StatusBadRequest, exception.NewInvalidSignatureException("X-Line-Signature does not match request body", err)
        }

        h.log.Error("Error parsing LINE webhook request: ", err)
        return http.StatusInternalServerError, exception.NewDispatchException("unable to parse webhook request", err)
    }

    // --------------------
    // process LINE events
    // --------------------
    err = h.processor.ProcessEvents(ctx, lineEvents)
    if err != nil {
        h.log.Error("Error processing LINE events: ", err)
        return http.StatusInternalServerError, exception.NewDispatchException("unable to process webhook events", err)
    }

    return http.StatusOK, nil
}

// Callback serves POST /webhook.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
    status, _ := h.Handle(r.Context(), r)
    if status != http.StatusOK {
        http.Error(w, http.StatusText(status), status)
        return
    }
    writeText(w, util.OkMessage)
}

// Verify serves GET /webhook, which the LINE console calls when the Verify button is pressed.
func (h *Handler) Verify(w http.ResponseWriter, _ *http.Request) {
    writeText(w, util.OkMessage)
}

func Home(w http.ResponseWriter, _ *http.Request) {
    writeText(w, util.HomeMessage)
}

func writeText(w http.ResponseWriter, text string) {
    w.Header().Set("Content-Type", "text/plain; charset=utf-8")
    w.WriteHeader(http.StatusOK)
    _, _ = w.Write([]byte(text))
}
