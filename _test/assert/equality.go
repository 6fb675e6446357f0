package assert

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JsonEqual accepts two JSON-containing byte arrays and compares their content equality (rather than their byte
// equality). This allows ordering to be ignored
func JsonEqual(tb testing.TB, expected, actual []byte, msgAndArgs ...any) {
	tb.Helper()

	var expectedValue, actualValue any
	Success(tb, json.Unmarshal(expected, &expectedValue))
	Success(tb, json.Unmarshal(actual, &actualValue))

	if d := cmp.Diff(expectedValue, actualValue); d != "" {
		msg, msgArgs := split(msgAndArgs)
		tb.Fatalf("Failed JSON equality check: "+msg+"\n(-expected +actual):\n%s", append(msgArgs, d)...)
	}
}
