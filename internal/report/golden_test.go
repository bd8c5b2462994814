package report

import (
	"bytes"
	"testing"

	"github.com/donaldgifford/memberlint/internal/testutil"
)

func TestGolden(t *testing.T) {
	testutil.RunGoldenDir(t, "testdata", func(t *testing.T, input string) string {
		t.Helper()
		res := check(t, "input.js", input)

		var buf bytes.Buffer
		if _, err := Violations(&buf, res, Options{}); err != nil {
			t.Fatal(err)
		}
		if err := Canonical(&buf, res); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	})
}
