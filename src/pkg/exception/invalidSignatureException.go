package exception

import "fmt"

// InvalidSignatureException is returned when the X-Line-Signature header does not match the request body.
type InvalidSignatureException struct {
    Context string
    Err     error
}

func NewInvalidSignatureException(message string, err error) *InvalidSignatureException {
    return &InvalidSignatureException{
        Context: message,
        Err:     err,
    }
}

func (e *InvalidSignatureException) Error() string {
    return fmt.Sprintf("InvalidSignatureException: %s: %v", e.Context, e.Err)
}

func (e *InvalidSignatureException) Unwrap() error {
    return e.Err
}
