package builder_test

import (
	"testing"

	"github.com/katalvlaran/spbench/builder"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn for correct outputs on valid inputs and for
// panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"HexIDFn_ff", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -1, "", true},

		{"SymbolNumber_plain", builder.SymbolNumberIDFn("v", 0), 7, "v7", false},
		{"SymbolNumber_padded", builder.SymbolNumberIDFn("n", 4), 7, "n0007", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}
