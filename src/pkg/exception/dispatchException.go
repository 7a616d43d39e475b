package exception

import "fmt"

// DispatchException covers every failure after the signature was accepted, including reply delivery.
type DispatchException struct {
    Context string
    Err     error
}

func NewDispatchException(message string, err error) *DispatchException {
    return &DispatchException{
        Context: message,
        Err:     err,
    }
}

func (e *DispatchException) Error() string {
    return fmt.Sprintf("DispatchException: %s: %v", e.Context, e.Err)
}

func (e *DispatchException) Unwrap() error {
    return e.Err
}
