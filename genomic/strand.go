// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genomic

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// Strand is the strand of a double-stranded contig that coordinates are
// measured on.
type Strand uint8

const (
	// Unknown is the zero value.  Regions never carry it; it is only returned by
	// lenient parsers for unrecognized input.
	Unknown Strand = iota
	Forward
	Reverse
)

// Opposite returns the other strand.  Unknown maps to itself.
func (s Strand) Opposite() Strand {
	switch s {
	case Forward:
		return Reverse
	case Reverse:
		return Forward
	}
	return s
}

// IsForward returns true iff s is Forward.
func (s Strand) IsForward() bool { return s == Forward }

// IsReverse returns true iff s is Reverse.
func (s Strand) IsReverse() bool { return s == Reverse }

// String returns "+", "-", or "." for Unknown.
func (s Strand) String() string {
	switch s {
	case Forward:
		return "+"
	case Reverse:
		return "-"
	}
	return "."
}

// StrandFromByte converts '+' and '-' to a strand.  Any other byte yields
// Unknown.
func StrandFromByte(b byte) Strand {
	switch b {
	case '+':
		return Forward
	case '-':
		return Reverse
	}
	return Unknown
}

// ParseStrand converts a strand name to a strand.  It accepts "+", "-" and,
// case-insensitively, "pos", "positive", "fwd", "forward", "neg", "negative",
// "rev" and "reverse".  Any other input yields Unknown.
func ParseStrand(s string) Strand {
	if len(s) == 1 {
		return StrandFromByte(s[0])
	}
	switch strings.ToLower(s) {
	case "pos", "positive", "fwd", "forward":
		return Forward
	case "neg", "negative", "rev", "reverse":
		return Reverse
	}
	return Unknown
}

// ParseStrandStrict is like ParseStrand, but returns an errors.Invalid error
// instead of Unknown.
func ParseStrandStrict(s string) (Strand, error) {
	if strand := ParseStrand(s); strand != Unknown {
		return strand, nil
	}
	return Unknown, errors.E(errors.Invalid, fmt.Sprintf("could not parse strand %q", s))
}
