package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestElementsErrorString(t *testing.T) {
	err := &ElementsError{
		Op:   "graphics.LoadPixmap",
		Kind: KindResource,
		Err:  stderrors.New("no such file"),
	}
	got := err.Error()
	want := "graphics.LoadPixmap [resource]: no such file"
	if got != want {
		t.Errorf("ElementsError.Error() = %q, want %q", got, want)
	}
}

func TestElementsErrorUnwrap(t *testing.T) {
	base := stderrors.New("boom")
	err := &ElementsError{Op: "test.op", Err: base}
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInit, "init"},
		{KindResource, "resource"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindProtocol, "protocol"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "view.Click",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in view.Click: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestProtocolErrorString(t *testing.T) {
	err := &ProtocolError{Event: "drag", Element: "*widgets.Slider", Reason: "no active tracking state"}
	want := "drag delivered to *widgets.Slider: no active tracking state"
	if got := err.Error(); got != want {
		t.Errorf("ProtocolError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *ElementsError
	handler := &testHandler{
		onError: func(err *ElementsError) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&ElementsError{
		Op:   "test.op",
		Kind: KindInit,
		Err:  stderrors.New("init failed"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportProtocol(t *testing.T) {
	var capturedErr *ElementsError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(err *ElementsError) { capturedErr = err }})
	defer SetHandler(oldHandler)

	type fakeElement struct{}
	ReportProtocol("element.Tracker.Drag", "drag", &fakeElement{}, "no active tracking state")

	if capturedErr == nil {
		t.Fatal("expected protocol error to be captured")
	}
	if capturedErr.Kind != KindProtocol {
		t.Errorf("Kind = %v, want %v", capturedErr.Kind, KindProtocol)
	}
	var perr *ProtocolError
	if !stderrors.As(capturedErr, &perr) {
		t.Fatalf("expected ProtocolError, got %T", capturedErr.Err)
	}
	if perr.Element != "*errors.fakeElement" {
		t.Errorf("Element = %q, want %q", perr.Element, "*errors.fakeElement")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportPanic(&PanicError{
		Value: "test panic value",
	})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
	if capturedPanic.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(&ElementsError{Op: "theme.Load", Kind: KindConfig, Err: stderrors.New("bad yaml")})

	out := buf.String()
	for _, want := range []string{"op=theme.Load", "kind=config", `err="bad yaml"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestLogHandlerProtocolIsWarning(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(&ElementsError{Op: "view.Drag", Kind: KindProtocol, Err: stderrors.New("no capture")})

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("protocol errors should log at WARN, got %q", buf.String())
	}
}

type testHandler struct {
	onError func(*ElementsError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ElementsError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
