package logger

import (
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "go.uber.org/zap"
    "log"
)

func NewLogger(stage enum.Stage) *zap.SugaredLogger {
    var logger *zap.Logger
    var err error
    if stage.IsDevelopment() {
        logger, err = zap.NewDevelopment()
    } else {
        // disable DEBUG level outside of development stages
        logger, err = zap.NewProduction()
    }
    if err != nil {
        log.Fatalf("can't initialize zap logger: %v", err)
    }
    return logger.Sugar().With("stage", stage.String())
}
