// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package variant

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// IsSymbolicAlleles returns true iff ref or alt is symbolic.
func IsSymbolicAlleles(ref, alt string) bool {
	return IsSymbolic(alt) || IsSymbolic(ref)
}

// IsSymbolic returns true iff allele is a large symbolic allele or a breakend.
func IsSymbolic(allele string) bool {
	return IsLargeSymbolic(allele) || IsBreakend(allele)
}

// IsBreakend returns true iff allele is a single or mated breakend.
func IsBreakend(allele string) bool {
	return IsSingleBreakend(allele) || IsMatedBreakend(allele)
}

// IsLargeSymbolic returns true iff allele is an angle-bracketed id such as
// "<DEL>".
func IsLargeSymbolic(allele string) bool {
	return len(allele) > 1 && (allele[0] == '<' || allele[len(allele)-1] == '>')
}

// IsSingleBreakend returns true iff allele is a single breakend such as "G."
// or ".A".
func IsSingleBreakend(allele string) bool {
	return len(allele) > 1 && (allele[0] == '.' || allele[len(allele)-1] == '.')
}

// IsMatedBreakend returns true iff allele is a mated breakend such as
// "G]17:198982]".
func IsMatedBreakend(allele string) bool {
	return len(allele) > 1 && strings.ContainsAny(allele, "[]")
}

// IsMissing returns true iff allele is the missing value ".".
func IsMissing(allele string) bool { return allele == "." }

// IsMissingUpstreamDeletion returns true iff allele is "*", an allele missing
// due to an upstream deletion.
func IsMissingUpstreamDeletion(allele string) bool { return allele == "*" }

// RequireNonSymbolic returns an errors.Invalid error unless alt is a single,
// non-empty, non-symbolic allele.
func RequireNonSymbolic(alt string) error {
	switch {
	case alt == "" || IsSymbolic(alt):
		return errors.E(errors.Invalid, fmt.Sprintf("illegal symbolic alt allele %q", alt))
	case strings.Contains(alt, ","):
		return errors.E(errors.Invalid, fmt.Sprintf("illegal multi-allelic alt allele %q", alt))
	}
	return nil
}

// RequireSymbolic returns an errors.Invalid error unless alt is a large
// symbolic allele.
func RequireSymbolic(alt string) error {
	if !IsLargeSymbolic(alt) {
		return errors.E(errors.Invalid, fmt.Sprintf("illegal non-symbolic or breakend alt allele %q", alt))
	}
	return nil
}

// RequireBreakend returns an errors.Invalid error unless alt is a breakend.
func RequireBreakend(alt string) error {
	if !IsBreakend(alt) {
		return errors.E(errors.Invalid, fmt.Sprintf("illegal non-breakend alt allele %q", alt))
	}
	return nil
}

// RequireNonBreakend returns an errors.Invalid error if alt is empty or a
// breakend.
func RequireNonBreakend(alt string) error {
	if alt == "" || IsBreakend(alt) {
		return errors.E(errors.Invalid, fmt.Sprintf("illegal breakend alt allele %q", alt))
	}
	return nil
}
