// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package region

import "github.com/grailbio/svart/coord"

// Functions on raw (start, end) pairs.  The pairs must be expressed in the same
// coordinate system, and that system must have exactly one open endpoint
// (LeftOpen or RightOpen) so that end-start is the number of bases.

// IsEmpty returns true iff the span covers no base.
func IsEmpty(start, end coord.Pos) bool {
	return end == start
}

// Overlaps returns true iff spans a and b share at least one base.  Two empty
// spans overlap iff they denote the same insertion point.
func Overlaps(aStart, aEnd, bStart, bEnd coord.Pos) bool {
	if IsEmpty(aStart, aEnd) && IsEmpty(bStart, bEnd) {
		return aStart == bEnd && bStart == aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// Contains returns true iff span b lies within span a.
func Contains(aStart, aEnd, bStart, bEnd coord.Pos) bool {
	return aStart <= bStart && bEnd <= aEnd
}

// OverlapLength returns the number of bases shared by spans a and b.
func OverlapLength(aStart, aEnd, bStart, bEnd coord.Pos) coord.Pos {
	start, end := aStart, aEnd
	if bStart > start {
		start = bStart
	}
	if bEnd < end {
		end = bEnd
	}
	if end < start {
		return 0
	}
	return end - start
}
