// SPDX-License-Identifier: MIT

// Package matrix - live-instance counters.
//
// Purpose:
//   - Track how many Matrix[T] instances of each element kind are alive
//     (constructed and not yet released).
//
// Determinism & Policy:
//   - One atomic counter per Kind; concurrent construction/release never loses updates.
//   - Counters are process-wide and have no reset; they are exposed read-only.
//   - Every constructor increments exactly once; Release decrements exactly once.

package matrix

import "sync/atomic"

// liveCounts holds the per-kind live-instance counters, indexed by Kind.
var liveCounts [kindCount]atomic.Int64

// trackNew records the construction of one instance of kind T.
func trackNew[T Element]() { liveCounts[KindOf[T]()].Add(1) }

// trackRelease records the release of one instance of kind T.
func trackRelease[T Element]() { liveCounts[KindOf[T]()].Add(-1) }

// Count returns the number of live Matrix[T] instances.
// It is not tied to any instance and is safe for concurrent use.
// Complexity: O(1).
func Count[T Element]() int64 { return liveCounts[KindOf[T]()].Load() }

// LiveCount returns the number of live instances of kind k.
// Unknown kinds report 0.
// Complexity: O(1).
//
// AI-Hints: use this form when the kind is only known at runtime (config, metrics).
func LiveCount(k Kind) int64 {
	if !k.Valid() {
		return 0
	}

	return liveCounts[k].Load()
}
