// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coord

import (
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// System is a coordinate system, i.e. a (start bound, end bound) pair.
type System uint8

const (
	// FullyClosed is [start, end].  This is the one-based system.
	FullyClosed System = iota
	// LeftOpen is (start, end].  This is the zero-based system.
	LeftOpen
	// RightOpen is [start, end).
	RightOpen
	// FullyOpen is (start, end).
	FullyOpen
)

// NSystem is the number of coordinate systems.
const NSystem = 4

// systemBounds maps each System to its (start, end) bounds.  It is the only
// place where the meaning of a System is defined.
var systemBounds = [NSystem][2]Bound{
	FullyClosed: {Closed, Closed},
	LeftOpen:    {Open, Closed},
	RightOpen:   {Closed, Open},
	FullyOpen:   {Open, Open},
}

var systemNames = [NSystem]string{
	FullyClosed: "fully-closed",
	LeftOpen:    "left-open",
	RightOpen:   "right-open",
	FullyOpen:   "fully-open",
}

// ZeroBased returns the zero-based coordinate system, LeftOpen.
func ZeroBased() System { return LeftOpen }

// OneBased returns the one-based coordinate system, FullyClosed.
func OneBased() System { return FullyClosed }

func (s System) bounds() [2]Bound {
	if int(s) >= NSystem {
		log.Panicf("coord: invalid coordinate system %d", uint8(s))
	}
	return systemBounds[s]
}

// StartBound returns the bound of the start coordinate.
func (s System) StartBound() Bound { return s.bounds()[0] }

// EndBound returns the bound of the end coordinate.
func (s System) EndBound() Bound { return s.bounds()[1] }

// IsOneBased returns true iff s is FullyClosed.
func (s System) IsOneBased() bool { return s == OneBased() }

// IsZeroBased returns true iff s is LeftOpen.
func (s System) IsZeroBased() bool { return s == ZeroBased() }

// StartDelta returns the value to add to a start coordinate expressed in s to
// express the same start in target.  The result is one of -1, 0, +1 and only
// depends on the start bounds of s and target.
func (s System) StartDelta(target System) int {
	from := s.StartBound()
	if from == target.StartBound() {
		return 0
	}
	if from == Open {
		return 1
	}
	return -1
}

// EndDelta returns the value to add to an end coordinate expressed in s to
// express the same end in target.  The result is one of -1, 0, +1 and only
// depends on the end bounds of s and target.
func (s System) EndDelta(target System) int {
	from := s.EndBound()
	if from == target.EndBound() {
		return 0
	}
	if from == Open {
		return -1
	}
	return 1
}

func (s System) String() string {
	if int(s) >= NSystem {
		return "invalid"
	}
	return systemNames[s]
}

// Brackets returns the characters used to render an interval in s, e.g. '('
// and ']' for LeftOpen.
func (s System) Brackets() (left, right byte) {
	left, right = '[', ']'
	if s.StartBound() == Open {
		left = '('
	}
	if s.EndBound() == Open {
		right = ')'
	}
	return
}

// ParseSystem parses a coordinate-system name.  Names are case-insensitive,
// and '_' and '-' are interchangeable.  Besides the names printed by
// System.String, "zero-based" and "0" select LeftOpen, and "one-based" and
// "1" select FullyClosed.
func ParseSystem(name string) (System, error) {
	key := strings.ToLower(strings.Replace(strings.TrimSpace(name), "_", "-", -1))
	switch key {
	case "fully-closed", "fullyclosed", "one-based", "onebased", "1":
		return FullyClosed, nil
	case "left-open", "leftopen", "zero-based", "zerobased", "0":
		return LeftOpen, nil
	case "right-open", "rightopen":
		return RightOpen, nil
	case "fully-open", "fullyopen":
		return FullyOpen, nil
	}
	return FullyClosed, errors.E(errors.Invalid, "unknown coordinate system:", name)
}
