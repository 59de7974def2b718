package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogHandler writes reported errors to a stream, stderr by default. It
// is the handler installed until a host replaces it with SetHandler.
type LogHandler struct {
	// Out overrides the destination stream. Nil means stderr.
	Out io.Writer
	// Verbose appends stack traces to the output when available.
	Verbose bool
}

// HandleError logs a TextError.
func (h *LogHandler) HandleError(err *TextError) {
	if err == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[styledtext error] %s [%s]", err.Op, err.Kind)
	if err.Tag != 0 {
		fmt.Fprintf(&b, " tag=%d", err.Tag)
	}
	fmt.Fprintf(&b, ": %v", err.Err)
	h.write(b.String(), err.StackTrace)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf("[styledtext panic] %v", err.Value)
	if err.Op != "" {
		msg = fmt.Sprintf("[styledtext panic] %s: %v", err.Op, err.Value)
	}
	h.write(msg, err.StackTrace)
}

// HandleStructure logs a StructureError.
func (h *LogHandler) HandleStructure(err *StructureError) {
	if err == nil {
		return
	}
	h.write(fmt.Sprintf("[styledtext error] %v", err), err.StackTrace)
}

func (h *LogHandler) write(msg, stack string) {
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintln(out, msg)
	if h.Verbose && stack != "" {
		fmt.Fprintln(out, stack)
	}
}
