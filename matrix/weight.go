// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Textual codec for matrix cells: numbers render via shortest round-trip
//     float formatting, the "no edge" sentinel renders as the infinity glyph.
//   - Lenient parsing for interactive matrix editing: every blank or
//     unparseable cell means "no edge", never an error.
//
// Contract:
//   - FormatWeight(Unreachable()) == InfinityGlyph.
//   - ParseWeight(FormatWeight(x)) == x for every finite x.
//   - ParseWeight of "", "∞", "inf", "infinity" (any case, surrounding
//     whitespace ignored) is the unreachable sentinel.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// InfinityGlyph is the display form of the unreachable sentinel.
const InfinityGlyph = "∞"

// negativeInfinityGlyph is the display form of negative infinity. It can only
// appear if a caller feeds -Inf cells in; the engine itself never produces it.
const negativeInfinityGlyph = "-∞"

// Unreachable returns the distinguished "no known path" sentinel (+Inf).
// Cells holding this value take no part in distance arithmetic: algorithms
// must guard both operands with IsUnreachable before adding.
func Unreachable() Weight {
	return math.Inf(1)
}

// IsUnreachable reports whether v is the unreachable sentinel.
// Complexity: O(1).
func IsUnreachable(v Weight) bool {
	return math.IsInf(v, 1)
}

// FormatWeight renders a matrix cell for display.
//
// Policy:
//   - +Inf (the unreachable sentinel) → "∞"
//   - -Inf → "-∞"
//   - any other value → strconv.FormatFloat(v, 'g', -1, 64)
//     (shortest representation that parses back exactly).
//
// Complexity: O(1) plus formatting cost.
func FormatWeight(v Weight) string {
	if math.IsInf(v, 1) {
		return InfinityGlyph
	}
	if math.IsInf(v, -1) {
		return negativeInfinityGlyph
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseWeight converts a textual cell back into its numeric value.
//
// Accepted spellings of the unreachable sentinel (case-insensitive, after
// trimming surrounding whitespace): "", "∞", "inf", "infinity".
// Everything else goes through strconv.ParseFloat; a failed parse or a NaN
// result also maps to the unreachable sentinel. This leniency is deliberate:
// an interactive matrix editor treats any cell it cannot read as "no edge"
// rather than erroring, and the asymmetry with FormatWeight (many spellings
// in, one spelling out) is part of the codec contract.
//
// Complexity: O(len(s)).
func ParseWeight(s string) Weight {
	// Normalize: surrounding whitespace never changes the meaning of a cell.
	s = strings.TrimSpace(s)

	// Blank and every textual spelling of infinity mean "no edge".
	switch {
	case s == "":
		return Unreachable()
	case s == InfinityGlyph:
		return Unreachable()
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "infinity"):
		return Unreachable()
	}

	// Ordinary numeric cell.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		// Unreadable cell → "no edge", never an error.
		return Unreachable()
	}

	return v
}
