package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeUnsupportedPlatform ErrorType = iota
	ErrTypeMissingConfig
	ErrTypeMissingTool
	ErrTypeGeneric
)

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether err is (or wraps) a CustomError of the given type.
func IsType(err error, errType ErrorType) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Type == errType
}
