package assert

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/typetag"
)

func Assert(tb testing.TB, condition bool, msgAndArgs ...any) {
	tb.Helper()
	if !condition {
		msg, msgArgs := split(msgAndArgs)
		tb.Fatalf("Assert failed. "+msg, msgArgs...)
	}
}

func Success(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("Expected success, but got: %s", errString(err))
	}
}

func Error(tb testing.TB, err error, msgAndArgs ...any) {
	tb.Helper()
	if err == nil {
		msg, msgArgs := split(msgAndArgs)
		tb.Fatalf("Expected error to be non-nil. "+msg, msgArgs...)
	}
}

// Family asserts that err is an envelope, or wraps one via Unwrap, whose tag
// is the expected one.
func Family(tb testing.TB, err error, expected typetag.Tag, msgAndArgs ...any) {
	tb.Helper()
	msg, msgArgs := split(msgAndArgs)

	if err == nil {
		tb.Fatalf("Expected an error. "+msg, msgArgs...)
	}

	var o envelope.Opaque
	if !errors.As(err, &o) {
		tb.Fatalf("Expected an envelope, got %s. "+msg, append([]any{reflect.TypeOf(err).String()}, msgArgs...)...)
	}

	if o.Tag() != expected {
		tb.Fatalf("Wrong error family. Expected %s, got %s. "+msg+"\nReceived: %s", append(append([]any{expected, o.Tag()}, msgArgs...), errString(err))...)
	}
}

// Equals compares with reflect.DeepEqual and prints a go-cmp diff on failure.
func Equals(tb testing.TB, expected, actual any, msgAndArgs ...any) {
	tb.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg, msgArgs := split(msgAndArgs)
		tb.Fatalf("Failed equality check: "+msg+"\n%s", append(msgArgs, diff(expected, actual))...)
	}
}

// diff falls back to %#v output for values go-cmp can't traverse (e.g. structs
// with unexported fields).
func diff(expected, actual any) (d string) {
	defer func() {
		if recover() != nil {
			d = fmt.Sprintf("\tExpected: %#v\n\tActual:   %#v", expected, actual)
		}
	}()

	return "(-expected +actual):\n" + cmp.Diff(expected, actual)
}

func NotEquals(tb testing.TB, expected, actual any, msgAndArgs ...any) {
	tb.Helper()
	if reflect.DeepEqual(expected, actual) {
		msg, msgArgs := split(msgAndArgs)
		tb.Fatalf("Failed non-equality check: "+msg+"\n\tExpected: %#v\n\tActual:   %#v", append(msgArgs, expected, actual)...)
	}
}

func Nil(tb testing.TB, v any, msgAndArgs ...any) {
	tb.Helper()
	if v == nil {
		return
	}
	switch vv := reflect.ValueOf(v); vv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if !vv.IsNil() {
			msg, msgArgs := split(msgAndArgs)
			tb.Fatalf("Expected value to be nil. "+msg, msgArgs...)
		}
	default:
		msg, msgArgs := split(msgAndArgs)
		tb.Fatalf("Value is not a nilable type. "+msg, msgArgs...)
	}
}

func NotNil(tb testing.TB, v any, msgAndArgs ...any) {
	tb.Helper()
	msg, msgArgs := split(msgAndArgs)
	if v == nil {
		tb.Fatalf("Expected value to be non-nil. "+msg, msgArgs...)
	}
	switch vv := reflect.ValueOf(v); vv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if vv.IsNil() {
			tb.Fatalf("Expected value to be non-nil. "+msg, msgArgs...)
		}
	}
}

func errString(err error) string {
	if o, ok := err.(envelope.Opaque); ok {
		return "\n" + o.String()
	}
	return err.Error()
}

func split(msgAndArgs []any) (string, []any) {
	if len(msgAndArgs) == 0 {
		return "", nil
	}
	msg, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...), nil
	}
	return msg, msgAndArgs[1:]
}
