// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coord

import "fmt"

// ConfidenceInterval is the uncertainty around a single coordinate.  Lower is
// how far before the coordinate the true position may lie, Upper how far after
// it.
type ConfidenceInterval struct {
	Lower, Upper uint32
}

// Precise is the confidence interval of an exact coordinate.
var Precise = ConfidenceInterval{}

// Imprecise creates a confidence interval with the given magnitudes.
func Imprecise(lower, upper uint32) ConfidenceInterval {
	return ConfidenceInterval{Lower: lower, Upper: upper}
}

// IsPrecise returns true iff both magnitudes are zero.
func (ci ConfidenceInterval) IsPrecise() bool {
	return ci.Lower == 0 && ci.Upper == 0
}

// Swapped returns ci with Lower and Upper exchanged.
func (ci ConfidenceInterval) Swapped() ConfidenceInterval {
	return ConfidenceInterval{Lower: ci.Upper, Upper: ci.Lower}
}

// SwapAndInvert exchanges the bounds of each interval, then exchanges the two
// intervals.  It is applied to the (start, end) intervals of a region that is
// reflected onto the opposite strand: uncertainty before the old start becomes
// uncertainty after the new end.
func SwapAndInvert(left, right *ConfidenceInterval) {
	*left, *right = right.Swapped(), left.Swapped()
}

func (ci ConfidenceInterval) String() string {
	return fmt.Sprintf("[-%d,+%d]", ci.Lower, ci.Upper)
}
