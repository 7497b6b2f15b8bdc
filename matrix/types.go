// SPDX-License-Identifier: MIT

// Package matrix: element kinds.
// This file contains ONLY the element-kind surface: the Element constraint,
// the Kind enumeration and its parsing/formatting helpers.
package matrix

import (
	"fmt"
	"strings"
)

// Element is the closed set of supported element kinds.
// The set is enforced by the compiler; there is no size-based heuristic, so
// int32 and float32 are distinct kinds even though they share a width.
type Element interface {
	int32 | int64 | float32 | float64
}

// Kind identifies an element kind at runtime (counters, config, CLI input).
type Kind uint8

// Supported kinds, in declaration order.
const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat32
	KindFloat64

	kindCount // number of kinds; sizes the per-kind counter table
)

// kindNames maps Kind to its canonical lower-case name.
var kindNames = [kindCount]string{
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// kindAliases maps accepted spellings to kinds for ParseKind.
// The C-style names map onto the fixed-width kinds of the same size.
var kindAliases = map[string]Kind{
	"int32":   KindInt32,
	"int":     KindInt32,
	"int64":   KindInt64,
	"long":    KindInt64,
	"float32": KindFloat32,
	"float":   KindFloat32,
	"float64": KindFloat64,
	"double":  KindFloat64,
}

// String returns the canonical name of k, or "kind(N)" for unknown values.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds returns all supported kinds in declaration order.
// The returned slice is fresh; callers may modify it.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// ParseKind resolves a kind name (case-insensitive, surrounding spaces ignored).
// Unknown names fail with ErrUnsupportedElementKind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnsupportedElementKind)
	}

	return k, nil
}

// KindOf returns the Kind of the element type T.
// Complexity: O(1); the switch is resolved per instantiation.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	default: // float64 is the only remaining member of Element
		return KindFloat64
	}
}
