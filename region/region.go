// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package region

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/svart/coord"
)

// Kind distinguishes precise regions from imprecise ones.
type Kind uint8

const (
	// Precise regions have exact endpoints.
	Precise Kind = iota
	// Imprecise regions carry a confidence interval around each endpoint.
	Imprecise
)

func (k Kind) String() string {
	if k == Precise {
		return "precise"
	}
	return "imprecise"
}

// Region is an interval [start, end] whose bounds are given by a
// coord.System.  The zero value is not a valid region; use New or Make.
//
// INVARIANT: for a region built by New or Make, the zero-based start is >= 0
// and <= the zero-based end.
type Region struct {
	start, end coord.Pos
	sys        coord.System
	kind       Kind
	// startCI and endCI are zero for precise regions.
	startCI, endCI coord.ConfidenceInterval
}

// New creates a precise region.
func New(sys coord.System, start, end coord.Pos) (Region, error) {
	r := Region{start: start, end: end, sys: sys, kind: Precise}
	return r, r.validate()
}

// NewImprecise creates an imprecise region, even if both confidence
// intervals are precise.
func NewImprecise(sys coord.System, start coord.Pos, startCI coord.ConfidenceInterval, end coord.Pos, endCI coord.ConfidenceInterval) (Region, error) {
	r := Region{start: start, end: end, sys: sys, kind: Imprecise, startCI: startCI, endCI: endCI}
	return r, r.validate()
}

// Make creates a precise region if both confidence intervals are precise, and
// an imprecise one otherwise.
func Make(sys coord.System, start coord.Pos, startCI coord.ConfidenceInterval, end coord.Pos, endCI coord.ConfidenceInterval) (Region, error) {
	if startCI.IsPrecise() && endCI.IsPrecise() {
		return New(sys, start, end)
	}
	return NewImprecise(sys, start, startCI, end, endCI)
}

// MustNew is like New, but panics on error.
func MustNew(sys coord.System, start, end coord.Pos) Region {
	r, err := New(sys, start, end)
	if err != nil {
		log.Panicf("region.MustNew: %v", err)
	}
	return r
}

// MustMake is like Make, but panics on error.
func MustMake(sys coord.System, start coord.Pos, startCI coord.ConfidenceInterval, end coord.Pos, endCI coord.ConfidenceInterval) Region {
	r, err := Make(sys, start, startCI, end, endCI)
	if err != nil {
		log.Panicf("region.MustMake: %v", err)
	}
	return r
}

func (r Region) validate() error {
	start := r.StartWithSystem(coord.ZeroBased())
	end := r.EndWithSystem(coord.ZeroBased())
	if start < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("region %v starts before the first base", r))
	}
	if start > end {
		return errors.E(errors.Invalid, fmt.Sprintf("region %v has start after end", r))
	}
	return nil
}

// Start returns the start coordinate in r's coordinate system.
func (r Region) Start() coord.Pos { return r.start }

// End returns the end coordinate in r's coordinate system.
func (r Region) End() coord.Pos { return r.end }

// System returns r's coordinate system.
func (r Region) System() coord.System { return r.sys }

// Kind returns whether r is precise or imprecise.
func (r Region) Kind() Kind { return r.kind }

// IsPrecise returns true iff r is the precise variant.
func (r Region) IsPrecise() bool { return r.kind == Precise }

// StartCI returns the confidence interval around the start.
func (r Region) StartCI() coord.ConfidenceInterval {
	if r.kind == Precise {
		return coord.Precise
	}
	return r.startCI
}

// EndCI returns the confidence interval around the end.
func (r Region) EndCI() coord.ConfidenceInterval {
	if r.kind == Precise {
		return coord.Precise
	}
	return r.endCI
}

// StartWithSystem returns the start of r expressed in sys.
func (r Region) StartWithSystem(sys coord.System) coord.Pos {
	return shift(r.start, r.sys.StartDelta(sys))
}

// EndWithSystem returns the end of r expressed in sys.
func (r Region) EndWithSystem(sys coord.System) coord.Pos {
	return shift(r.end, r.sys.EndDelta(sys))
}

func shift(p coord.Pos, delta int) coord.Pos {
	switch delta {
	case -1:
		return p - 1
	case 0:
		return p
	case 1:
		return p + 1
	}
	log.Panicf("region: coordinate delta %d out of range", delta)
	return p
}

// WithSystem re-expresses r in sys in place.  Only the start coordinate is
// shifted; the stored end coordinate keeps its value.
func (r *Region) WithSystem(sys coord.System) {
	if sys == r.sys {
		return
	}
	r.start = shift(r.start, r.sys.StartDelta(sys))
	r.sys = sys
}

// Length returns the number of bases covered by r.
func (r Region) Length() coord.Pos {
	return r.EndWithSystem(coord.ZeroBased()) - r.StartWithSystem(coord.ZeroBased())
}

// IsEmpty returns true iff r covers no base, i.e. r is an insertion point.
func (r Region) IsEmpty() bool { return r.Length() == 0 }

// Contains returns true iff every base of other is in r.  other is projected
// into r's coordinate system before comparing.
func (r Region) Contains(other Region) bool {
	return r.start <= other.StartWithSystem(r.sys) && other.EndWithSystem(r.sys) <= r.end
}

// Overlaps returns true iff r and other share a base, or are the same
// insertion point.
func (r Region) Overlaps(other Region) bool {
	zb := coord.ZeroBased()
	return Overlaps(r.StartWithSystem(zb), r.EndWithSystem(zb), other.StartWithSystem(zb), other.EndWithSystem(zb))
}

// OverlapLength returns the number of bases shared by r and other.
func (r Region) OverlapLength(other Region) coord.Pos {
	zb := coord.ZeroBased()
	return OverlapLength(r.StartWithSystem(zb), r.EndWithSystem(zb), other.StartWithSystem(zb), other.EndWithSystem(zb))
}

// lengthDelta is the value added to a contig length to get the coordinate
// about which regions in sys are reflected.  It is zero for ZeroBased().
func lengthDelta(sys coord.System) coord.Pos {
	zb := coord.ZeroBased()
	return coord.Pos(zb.StartDelta(sys) + zb.EndDelta(sys))
}

// ContigEnd returns the coordinate through which a region expressed in sys is
// reflected onto the opposite strand of a contig with the given length.
func ContigEnd(sys coord.System, contigLen coord.Pos) coord.Pos {
	return contigLen + lengthDelta(sys)
}

// Invert reflects r in place onto the opposite strand of a contig of length
// contigLen, keeping r's coordinate system.  Confidence intervals of an
// imprecise region follow their endpoints.
func (r *Region) Invert(contigLen coord.Pos) {
	end := ContigEnd(r.sys, contigLen)
	r.start, r.end = end-r.end, end-r.start
	if r.kind == Imprecise {
		coord.SwapAndInvert(&r.startCI, &r.endCI)
	}
}

// AsPrecise returns a precise copy of r.
func (r Region) AsPrecise() Region {
	return Region{start: r.start, end: r.end, sys: r.sys, kind: Precise}
}

// String renders r as e.g. "(10,20]", followed by the confidence intervals if
// r is imprecise.
func (r Region) String() string {
	left, right := r.sys.Brackets()
	s := fmt.Sprintf("%c%d,%d%c", left, r.start, r.end, right)
	if r.kind == Imprecise {
		s += fmt.Sprintf(" ci=%v,%v", r.startCI, r.endCI)
	}
	return s
}
