package messaging

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

var (
	// ErrHandlerNotFound is returned by Send for request types without a
	// registered handler.
	ErrHandlerNotFound = errors.New("messaging: no handler registered")

	// ErrUnexpectedReply is returned by Send when a behavior produced a result
	// of a different shape than the handler's.
	ErrUnexpectedReply = errors.New("messaging: unexpected reply type")
)

// ApplicationError wraps a fault raised while handling a request. It carries
// the request name, the domain error if the fault was one, and the original
// cause, reachable through errors.Is and errors.As.
type ApplicationError struct {
	RequestName string
	Err         *result.Error
	Cause       error
}

// NewApplicationError wraps cause for the named request.
func NewApplicationError(requestName string, cause error) *ApplicationError {
	appErr := &ApplicationError{RequestName: requestName, Cause: cause}
	var domainErr result.Error
	if errors.As(cause, &domainErr) {
		appErr.Err = &domainErr
	}
	return appErr
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("application error handling %s: %v", e.RequestName, e.Cause)
}

func (e *ApplicationError) Unwrap() error { return e.Cause }

// PanicError is the cause recorded when a handler panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
