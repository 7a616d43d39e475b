package bootstrap

import (
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/config"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineEventProcessor"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/lineUtil"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/logger"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/secret"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/webhook"
    "go.uber.org/zap"
    "os"
)

// LoadConfig loads the process configuration and a logger for its stage.
// The returned logger is usable even when err is non-nil.
func LoadConfig() (*config.Config, *zap.SugaredLogger, error) {
    // STAGE is read before the config so configuration errors are logged at the right level
    stage, err := enum.ParseStage(os.Getenv("STAGE"))
    if err != nil {
        stage = enum.StageProd
    }
    log := logger.NewLogger(stage)

    cfg, err := config.Load(secret.NewManager(log))
    if err != nil {
        log.Error("Error loading configuration: ", err)
        return nil, log, err
    }

    if cfg.StageEnum() != stage {
        log = logger.NewLogger(cfg.StageEnum())
    }
    return cfg, log, nil
}

// NewWebhookHandler wires the LINE client, event processor and webhook handler from cfg.
func NewWebhookHandler(cfg *config.Config, emitter metric.Emitter, log *zap.SugaredLogger) (*webhook.Handler, error) {
    line, err := lineUtil.NewLine(cfg.ChannelSecret, cfg.ChannelAccessToken, cfg.LineApiEndpoint, log)
    if err != nil {
        return nil, err
    }

    processor := lineEventProcessor.NewProcessor(line, emitter, log)
    return webhook.NewHandler(line, processor, log), nil
}
