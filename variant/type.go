// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package variant classifies VCF alleles into variant types.
package variant

import (
	"strings"
)

// Type is the kind of a variant, as derived from its REF and ALT alleles.
type Type uint8

const (
	// Unknown is the zero value, returned for alleles that cannot be
	// classified.
	Unknown Type = iota
	SingleNucleotide
	MultiNucleotide
	// Symbolic is a symbolic allele (e.g. "<NON_REF>") with no more specific
	// type.
	Symbolic

	Deletion
	DeletionME
	DeletionALU
	DeletionL1
	DeletionSVA
	DeletionHERV

	Insertion
	InsertionME
	InsertionALU
	InsertionL1
	InsertionSVA
	InsertionHERV

	Duplication
	DuplicationTandem
	DuplicationInversionBefore
	DuplicationInversionAfter

	Inversion
	CopyNumber
	CopyNumberGain
	CopyNumberLoss
	CopyNumberLOH
	CopyNumberComplex
	Breakend
	ShortTandemRepeat
	Translocation

	nType
)

type typeInfo struct {
	name string // VCF symbolic ALT id, without angle brackets
	base Type
}

var types = [nType]typeInfo{
	Unknown:                    {"UNKNOWN", Unknown},
	SingleNucleotide:           {"SNV", SingleNucleotide},
	MultiNucleotide:            {"MNV", MultiNucleotide},
	Symbolic:                   {"SYMBOLIC", Symbolic},
	Deletion:                   {"DEL", Deletion},
	DeletionME:                 {"DEL:ME", Deletion},
	DeletionALU:                {"DEL:ME:ALU", Deletion},
	DeletionL1:                 {"DEL:ME:LINE1", Deletion},
	DeletionSVA:                {"DEL:ME:SVA", Deletion},
	DeletionHERV:               {"DEL:ME:HERV", Deletion},
	Insertion:                  {"INS", Insertion},
	InsertionME:                {"INS:ME", Insertion},
	InsertionALU:               {"INS:ME:ALU", Insertion},
	InsertionL1:                {"INS:ME:LINE1", Insertion},
	InsertionSVA:               {"INS:ME:SVA", Insertion},
	InsertionHERV:              {"INS:ME:HERV", Insertion},
	Duplication:                {"DUP", Duplication},
	DuplicationTandem:          {"DUP:TANDEM", Duplication},
	DuplicationInversionBefore: {"DUP:INV-BEFORE", Duplication},
	DuplicationInversionAfter:  {"DUP:INV-AFTER", Duplication},
	Inversion:                  {"INV", Inversion},
	CopyNumber:                 {"CNV", CopyNumber},
	CopyNumberGain:             {"CNV:GAIN", CopyNumber},
	CopyNumberLoss:             {"CNV:LOSS", CopyNumber},
	CopyNumberLOH:              {"CNV:LOH", CopyNumber},
	CopyNumberComplex:          {"CNV:COMPLEX", CopyNumber},
	Breakend:                   {"BND", Breakend},
	ShortTandemRepeat:          {"STR", ShortTandemRepeat},
	Translocation:              {"TRA", Translocation},
}

var typesByName = func() map[string]Type {
	m := map[string]Type{"SNP": SingleNucleotide, "MNP": MultiNucleotide}
	for t := SingleNucleotide; t < nType; t++ {
		if t != Symbolic {
			m[types[t].name] = t
		}
	}
	return m
}()

// typePrefixes are tried in order when an ALT id has no exact match.
var typePrefixes = []struct {
	prefix string
	t      Type
}{
	{"DEL:ME", DeletionME},
	{"DEL", Deletion},
	{"INS:ME", InsertionME},
	{"INS", Insertion},
	{"DUP:TANDEM", DuplicationTandem},
	{"DUP", Duplication},
	{"CNV", CopyNumber},
	{"STR", ShortTandemRepeat},
}

// String returns the VCF id of t, e.g. "DEL:ME:ALU".
func (t Type) String() string {
	if t >= nType {
		return types[Unknown].name
	}
	return types[t].name
}

// BaseType returns the general kind of t, e.g. Deletion for DeletionALU.
func (t Type) BaseType() Type {
	if t >= nType {
		return Unknown
	}
	return types[t].base
}

// ParseVCFType classifies a VCF ALT allele such as "<DEL:ME:ALU>", "<CNV>" or
// "G]17:198982]".  Symbolic ids are matched case-insensitively, first exactly
// and then by their leading component, so that "<DEL:FOO>" is a Deletion.
// Unrecognized input yields Unknown, or Symbolic for unrecognized symbolic
// alleles.
func ParseVCFType(alt string) Type {
	if alt == "" {
		return Unknown
	}
	id := strings.ToUpper(trimAngleBrackets(alt))
	if t, ok := typesByName[id]; ok {
		return t
	}
	if strings.HasPrefix(id, "BND") || IsBreakend(id) {
		return Breakend
	}
	for _, p := range typePrefixes {
		if strings.HasPrefix(id, p.prefix) {
			return p.t
		}
	}
	if IsSymbolic(alt) {
		return Symbolic
	}
	return Unknown
}

// ParseType classifies a variant by its REF and ALT alleles.  Symbolic alleles
// are classified by ParseVCFType; otherwise the allele lengths decide between
// SingleNucleotide, MultiNucleotide, Insertion and Deletion.
func ParseType(ref, alt string) Type {
	if IsSymbolicAlleles(ref, alt) {
		return ParseVCFType(alt)
	}
	switch {
	case len(ref) == len(alt) && len(alt) == 1:
		return SingleNucleotide
	case len(ref) == len(alt):
		return MultiNucleotide
	case len(ref) < len(alt):
		return Insertion
	}
	return Deletion
}

func trimAngleBrackets(s string) string {
	if len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}
