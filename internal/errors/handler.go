package errors

import (
	"github.com/zsiec/cutcheck/internal/logger"
)

// Handler reports terminal errors through the structured logger.
type Handler struct {
	logger logger.Logger
}

// NewHandler creates a new error handler.
func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log,
	}
}

// Fatal logs the error with its context and exits through the logger.
// The null logger's Fatal does not exit, which keeps this path
// reachable in tests.
func (h *Handler) Fatal(err error) {
	h.entry(err).Fatal(message(err))
}

// Report logs the error without terminating.
func (h *Handler) Report(err error) {
	h.entry(err).Error(message(err))
}

func (h *Handler) entry(err error) logger.Logger {
	appErr, ok := GetAppError(err)
	if !ok {
		appErr = WrapInternalError(err, "unexpected error")
	}

	fields := map[string]interface{}{
		"error_type": appErr.Type,
	}
	for k, v := range appErr.Details {
		fields[k] = v
	}

	return h.logger.WithFields(fields)
}

func message(err error) string {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Error()
	}
	return err.Error()
}
