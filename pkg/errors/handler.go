package errors

import (
	"runtime"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs the handler that receives reported errors. A nil
// handler restores the stderr logger.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report delivers err to the installed handler, stamping the time when
// the caller left it unset.
func Report(err *TextError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic delivers a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// ReportStructure delivers a structure error to the installed handler.
func ReportStructure(err *StructureError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleStructure(err)
}

// Recover reports a panic through the installed handler instead of
// letting it unwind. Use it deferred at host boundaries:
//
//	defer errors.Recover("host.applyUpdates")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
		})
	}
}

// CaptureStack returns the current goroutine's stack, growing the
// buffer until the dump fits.
func CaptureStack() string {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, 2*len(buf))
	}
}
