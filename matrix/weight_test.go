// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/SPIN0ZAi/Data-Structures-Visualizer-sub000/matrix"
)

func TestUnreachable_Sentinel(t *testing.T) {
	t.Parallel()

	u := matrix.Unreachable()
	if !math.IsInf(u, 1) {
		t.Fatalf("Unreachable()=%v; want +Inf", u)
	}
	if !matrix.IsUnreachable(u) {
		t.Fatalf("IsUnreachable(+Inf)=false; want true")
	}
	if matrix.IsUnreachable(0) || matrix.IsUnreachable(math.Inf(-1)) || matrix.IsUnreachable(math.NaN()) {
		t.Fatalf("IsUnreachable must hold only for +Inf")
	}
}

func TestFormatWeight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"unreachable", math.Inf(1), "∞"},
		{"negative infinity", math.Inf(-1), "-∞"},
		{"zero", 0, "0"},
		{"integer valued", 6, "6"},
		{"negative", -4, "-4"},
		{"fractional", 2.5, "2.5"},
		{"tiny", 0.001, "0.001"},
	}

	for _, tc := range cases {
		if got := matrix.FormatWeight(tc.in); got != tc.want {
			t.Fatalf("%s: FormatWeight(%v)=%q; want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestParseWeight_UnreachableSpellings(t *testing.T) {
	t.Parallel()

	// Every accepted spelling of "no edge" maps to the same sentinel.
	for _, s := range []string{"", "   ", "∞", " ∞ ", "inf", "INF", "Inf", "infinity", "Infinity", "INFINITY"} {
		if got := matrix.ParseWeight(s); !matrix.IsUnreachable(got) {
			t.Fatalf("ParseWeight(%q)=%v; want unreachable sentinel", s, got)
		}
	}
}

func TestParseWeight_LenientOnGarbage(t *testing.T) {
	t.Parallel()

	// Unparseable cells are "no edge", never an error.
	for _, s := range []string{"abc", "1..2", "--3", "3,5", "NaN", "nan"} {
		if got := matrix.ParseWeight(s); !matrix.IsUnreachable(got) {
			t.Fatalf("ParseWeight(%q)=%v; want unreachable sentinel", s, got)
		}
	}
}

func TestParseWeight_Numbers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"6", 6},
		{"-4", -4},
		{"2.5", 2.5},
		{" 3 ", 3},
		{"1e3", 1000},
	}
	for _, tc := range cases {
		if got := matrix.ParseWeight(tc.in); got != tc.want {
			t.Fatalf("ParseWeight(%q)=%v; want %v", tc.in, got, tc.want)
		}
	}
}

// Round-trip property: parse(format(x)) == x for finite x, and the sentinel
// survives a full round trip through its glyph.
func TestWeightCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, 1, -1, 2.5, -4, 0.001, 123456.789, -0.75} {
		if got := matrix.ParseWeight(matrix.FormatWeight(x)); got != x {
			t.Fatalf("round trip of %v yielded %v", x, got)
		}
	}

	if got := matrix.FormatWeight(matrix.Unreachable()); got != matrix.InfinityGlyph {
		t.Fatalf("FormatWeight(Unreachable())=%q; want %q", got, matrix.InfinityGlyph)
	}
	if got := matrix.ParseWeight(matrix.InfinityGlyph); !matrix.IsUnreachable(got) {
		t.Fatalf("ParseWeight(%q)=%v; want unreachable sentinel", matrix.InfinityGlyph, got)
	}
}
