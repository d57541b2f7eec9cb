package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes reports to a structured logger.
type LogHandler struct {
	// Verbose includes stack traces for panics.
	Verbose bool

	logger *log.Logger
}

// NewLogHandler returns a LogHandler writing to logger, or to a stderr logger
// prefixed "wheel" when logger is nil.
func NewLogHandler(logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "wheel"})
	}
	return &LogHandler{logger: logger}
}

// HandleError logs a WheelError.
func (h *LogHandler) HandleError(err *WheelError) {
	if err == nil {
		return
	}
	h.logger.Error(err.Err, "op", err.Op, "kind", err.Kind.String())
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if h.Verbose && err.StackTrace != "" {
		h.logger.Error("panic", "op", err.Op, "value", err.Value, "stack", err.StackTrace)
		return
	}
	h.logger.Error("panic", "op", err.Op, "value", err.Value)
}
