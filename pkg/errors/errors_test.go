package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

type testHandler struct {
	onError func(*WheelError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *WheelError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestWheelErrorString(t *testing.T) {
	err := Errorf("datepicker.Build", KindConfig, "year wheel is required")
	want := "datepicker.Build [config]: year wheel is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWheelErrorUnwrap(t *testing.T) {
	field := &FieldError{Field: "wheel.item_height", Value: 0, Reason: "must be positive"}
	err := New("config.Validate", KindConfig, field)

	var target *FieldError
	if !stderrors.As(err, &target) {
		t.Fatal("expected errors.As to find the FieldError")
	}
	if target.Field != "wheel.item_height" {
		t.Errorf("Field = %q, want %q", target.Field, "wheel.item_height")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindLayout, "layout"},
		{KindRender, "render"},
		{KindInput, "input"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	if got, want := (&PanicError{Value: "boom"}).Error(), "panic: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := (&PanicError{Op: "desktop.Draw", Value: "boom"}).Error(), "panic in desktop.Draw: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	var captured *WheelError
	prev := SetHandler(&testHandler{onError: func(err *WheelError) { captured = err }})
	defer SetHandler(prev)

	Report(Errorf("wheel.Layout", KindLayout, "zero height"))

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNilIsIgnored(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{onError: func(*WheelError) { called = true }})
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)

	if called {
		t.Error("handler should not be called for nil errors")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(log.New(&buf))

	h.HandleError(Errorf("render.Encode", KindRender, "unsupported format %q", ".bmp"))

	out := buf.String()
	for _, want := range []string{"render.Encode", "render", "unsupported format"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}
