package enum

import (
    "fmt"
    "strings"
)

type Stage int

const (
    StageLocal Stage = iota
    StageAlpha
    StageBeta
    StageGamma
    StageProd
)

func (s Stage) String() string {
    return []string{
        "local",
        "alpha",
        "beta",
        "gamma",
        "prod",
    }[s]
}

// IsDevelopment reports whether verbose development logging should be used.
func (s Stage) IsDevelopment() bool {
    return s == StageLocal || s == StageAlpha
}

func ParseStage(str string) (Stage, error) {
    switch strings.ToLower(strings.TrimSpace(str)) {
    case "", "local":
        return StageLocal, nil
    case "alpha":
        return StageAlpha, nil
    case "beta":
        return StageBeta, nil
    case "gamma":
        return StageGamma, nil
    case "prod":
        return StageProd, nil
    }
    return StageLocal, fmt.Errorf("unknown stage '%s'", str)
}
