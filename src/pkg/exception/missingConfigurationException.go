package exception

import (
    "fmt"
    "strings"
)

type MissingConfigurationException struct {
    Context string
    Missing []string
    Err     error
}

func NewMissingConfigurationException(message string, missing []string, err error) *MissingConfigurationException {
    return &MissingConfigurationException{
        Context: message,
        Missing: missing,
        Err:     err,
    }
}

func (e *MissingConfigurationException) Error() string {
    return fmt.Sprintf("MissingConfigurationException: %s [%s]: %v", e.Context, strings.Join(e.Missing, ", "), e.Err)
}

func (e *MissingConfigurationException) Unwrap() error {
    return e.Err
}
