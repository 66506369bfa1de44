package nodes

import (
	"errors"

	internalgemini "github.com/nanopad-dev/nodes/internal/gemini"
)

// mapWireError lifts wire-layer errors into the public error kinds. A 401 or
// 403 means the service rejected the key, which surfaces the same way as a
// missing one.
func mapWireError(err error) error {
	if err == nil {
		return nil
	}
	var we *internalgemini.Error
	if !errors.As(err, &we) {
		return err
	}
	if we.Status == 401 || we.Status == 403 {
		return &AuthenticationError{Message: we.Message, Cause: we}
	}
	return &GenerationError{
		Code:    we.Code,
		Status:  we.Status,
		Message: we.Message,
		Cause:   we.Cause,
	}
}
