package compare

import (
	"testing"
	"testing/quick"
)

func TestFunction(t *testing.T) {
	f := func(a, b int32) bool {
		switch c := Function(a, b); {
		case a < b:
			return c == -1
		case a > b:
			return c == +1
		default:
			return c == 0
		}
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}

	if Function("a", "b") != -1 {
		t.Error("strings are not compared in lexicographical order")
	}
}

func TestEqual(t *testing.T) {
	if !Equal("a", "a") || Equal(1, 2) {
		t.Error("equality mismatch")
	}
}
