// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// id_fn.go - ID schemes that relabel constructor indices into vertex values.

package builder

import (
	"cmp"
	"fmt"
	"strconv"
)

// IDFn maps a zero-based constructor index to a vertex value.
// It must be pure and deterministic, and injective over the indices in use;
// BuildGraph reports collisions as ErrConstructFailed.
// Panics in implementations indicate programmer error in configuration.
type IDFn[V cmp.Ordered] func(idx int) V

// IntID is the identity scheme: 0→0, 1→1, ...
func IntID(idx int) int { return idx }

// OneBasedID shifts indices by one: 0→1, 1→2, ...
// Handy for fixtures written with 1-based vertex labels.
func OneBasedID(idx int) int { return idx + 1 }

// DecimalID returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx.
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolID returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolID(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolID: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnID returns the spreadsheet column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₂₆(idx).
// Panics if idx < 0.
func ExcelColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnID: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
