// SPDX-License-Identifier: MIT
// Package: fuelroute/builder
//
// id_fn.go — interior vertex labelling schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates an interior vertex label from its position (1..n-2).
// It must be pure: the same position always yields the same label.
type IDFn func(pos int) string

// DefaultIDFn returns the decimal string of pos, e.g. 1→"1", 42→"42".
func DefaultIDFn(pos int) string {
	return strconv.Itoa(pos)
}

// PrefixedIDFn returns a scheme producing prefix+decimal, e.g. "n"→"n1","n2".
// Panics on an empty prefix, which would collide with DefaultIDFn labels.
func PrefixedIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("builder: PrefixedIDFn(\"\")")
	}
	return func(pos int) string {
		return prefix + strconv.Itoa(pos)
	}
}

// ExcelColumnIDFn returns the spreadsheet-column name for pos, with position 1
// mapped to "A": 1→"A", 26→"Z", 27→"AA".
// Panics if pos < 1.
func ExcelColumnIDFn(pos int) string {
	if pos < 1 {
		panic(fmt.Sprintf("ExcelColumnIDFn: pos must be >= 1, got %d", pos))
	}
	var runes []rune
	for i := pos - 1; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
