package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// recordingHandler captures everything reported through the package.
type recordingHandler struct {
	errors     []*TextError
	panics     []*PanicError
	structures []*StructureError
}

func (h *recordingHandler) HandleError(err *TextError)          { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)         { h.panics = append(h.panics, err) }
func (h *recordingHandler) HandleStructure(err *StructureError) { h.structures = append(h.structures, err) }

func install(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })
	return h
}

func TestTextErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *TextError
		want string
	}{
		{
			name: "without tag",
			err: &TextError{
				Op:   "text.Flatten",
				Kind: KindPrecondition,
				Err:  &ParseError{Source: "props", DataType: "color", Got: "bogus"},
			},
			want: "text.Flatten [precondition]: failed to parse color from props: got bogus",
		},
		{
			name: "with tag",
			err: &TextError{
				Op:   "text.Measure",
				Kind: KindStructure,
				Tag:  42,
				Err:  &StructureError{ParentTag: 42, Got: "*layout.Box"},
			},
			want: "text.Measure [structure] tag=42: unexpected child kind *layout.Box under text node 42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStructure, "structure"},
		{KindPrecondition, "precondition"},
		{KindParse, "parse"},
		{KindShape, "shape"},
		{KindConfig, "config"},
		{KindInit, "init"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestPanicErrorFormat(t *testing.T) {
	err := &PanicError{Value: "boom"}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Op = "text.Flatten"
	if got, want := err.Error(), "panic in text.Flatten: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStructureErrorFormat(t *testing.T) {
	err := &StructureError{ParentTag: 7, Got: "*layout.Box"}
	if got, want := err.Error(), "unexpected child kind *layout.Box under text node 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.ParentTag = 0
	if got, want := err.Error(), "unexpected child kind *layout.Box under text node"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReportStampsTimestamp(t *testing.T) {
	h := install(t)

	Report(&TextError{Op: "test.op", Kind: KindInit})

	if len(h.errors) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errors))
	}
	if h.errors[0].Timestamp.IsZero() {
		t.Error("Report left Timestamp unset")
	}
}

func TestReportKeepsExplicitTimestamp(t *testing.T) {
	h := install(t)
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	Report(&TextError{Op: "test.op", Kind: KindInit, Timestamp: stamp})

	if len(h.errors) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errors))
	}
	if !h.errors[0].Timestamp.Equal(stamp) {
		t.Errorf("Timestamp = %v, want %v", h.errors[0].Timestamp, stamp)
	}
}

func TestReportStructure(t *testing.T) {
	h := install(t)

	ReportStructure(&StructureError{ParentTag: 3, Got: "*layout.Box"})

	if len(h.structures) != 1 {
		t.Fatalf("reported %d structure errors, want 1", len(h.structures))
	}
	if h.structures[0].ParentTag != 3 {
		t.Errorf("ParentTag = %d, want 3", h.structures[0].ParentTag)
	}
	if h.structures[0].Timestamp.IsZero() {
		t.Error("ReportStructure left Timestamp unset")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	h := install(t)

	Report(nil)
	ReportPanic(nil)
	ReportStructure(nil)

	if len(h.errors)+len(h.panics)+len(h.structures) != 0 {
		t.Error("nil reports reached the handler")
	}
}

func TestRecover(t *testing.T) {
	h := install(t)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("recovered %d panics, want 1", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", p.Op, "test.recover")
	}
	if p.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", p.Value, "intentional test panic")
	}
	if !strings.Contains(p.StackTrace, "goroutine") {
		t.Errorf("StackTrace missing goroutine header:\n%s", p.StackTrace)
	}
}

func TestCaptureStackNamesCaller(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "TestCaptureStackNamesCaller") {
		t.Errorf("stack does not name the calling test:\n%s", stack)
	}
}

func TestSetHandlerNilRestoresLogger(t *testing.T) {
	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("Handler() after SetHandler(nil) = %T, want *LogHandler", Handler())
	}
}

func TestLogHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&TextError{
		Op:   "text.Measure",
		Kind: KindShape,
		Tag:  9,
		Err:  &ParseError{Source: "color", DataType: "hex color", Got: "#zz"},
	})

	got := buf.String()
	want := "[styledtext error] text.Measure [shape] tag=9: failed to parse hex color from color: got #zz\n"
	if got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}

func TestLogHandlerVerboseIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}

	h.HandlePanic(&PanicError{Op: "text.Flatten", Value: "boom", StackTrace: "goroutine 1 [running]:"})

	got := buf.String()
	if !strings.HasPrefix(got, "[styledtext panic] text.Flatten: boom\n") {
		t.Errorf("logged %q, want panic line first", got)
	}
	if !strings.Contains(got, "goroutine 1 [running]:") {
		t.Errorf("logged %q, want the stack trace included", got)
	}
}
