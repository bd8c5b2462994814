package scanner

import (
	"testing"

	"github.com/donaldgifford/memberlint/internal/config"
)

func FuzzScan(f *testing.F) {
	seeds := []string{
		"  class Foo {\n    #a = 1;\n  }\n",
		"  class\n",
		"  static\n",
		"    get\n",
		"  class Foo {\n    static Bar = class {\n      x = 1;\n    };\n  }\n",
		"  function f() {\n  }\n",
		"\t\tclass Tabbed {}\n",
		"\n",
		"",
		"  }\n}\n  }\n",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	s, err := New(&config.DefaultConfig().Lint)
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		// The scanner should never panic on any input.
		_ = s.Scan(input)
	})
}
