package errors

import (
	"io"
	"log"
	"os"
	"sync"
)

// LogHandler is an ErrorHandler that logs through the standard library
// logger.
type LogHandler struct {
	// Verbose enables stack traces for panics.
	Verbose bool
	// Output is where log lines go; nil means stderr.
	Output io.Writer

	once   sync.Once
	logger *log.Logger
}

func (h *LogHandler) log() *log.Logger {
	h.once.Do(func() {
		out := h.Output
		if out == nil {
			out = os.Stderr
		}
		h.logger = log.New(out, "", log.LstdFlags)
	})
	return h.logger
}

// HandleError logs a HammerError.
func (h *LogHandler) HandleError(err *HammerError) {
	if err == nil {
		return
	}
	h.log().Printf("[hammer error] %s [%s]: %v", err.Op, err.Kind, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		h.log().Printf("[hammer panic] %s: %v", err.Op, err.Value)
	} else {
		h.log().Printf("[hammer panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		h.log().Printf("Stack trace:\n%s", err.StackTrace)
	}
}
