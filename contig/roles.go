// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package contig

import "strings"

// SequenceRole is the role of a sequence in an assembly, as listed in the
// "Sequence-Role" column of NCBI assembly reports.
type SequenceRole uint8

const (
	// UnknownRole is used for any unrecognized role.
	UnknownRole SequenceRole = iota
	AssembledMolecule
	UnlocalizedScaffold
	UnplacedScaffold
	FixPatch
	NovelPatch
	AltScaffold
)

var sequenceRoleNames = [...]string{
	UnknownRole:         "na",
	AssembledMolecule:   "assembled-molecule",
	UnlocalizedScaffold: "unlocalized-scaffold",
	UnplacedScaffold:    "unplaced-scaffold",
	FixPatch:            "fix-patch",
	NovelPatch:          "novel-patch",
	AltScaffold:         "alt-scaffold",
}

func (r SequenceRole) String() string {
	if int(r) >= len(sequenceRoleNames) {
		return sequenceRoleNames[UnknownRole]
	}
	return sequenceRoleNames[r]
}

// ParseSequenceRole converts an assembly-report role name, e.g.
// "assembled-molecule", to a SequenceRole.  It is case-insensitive and
// returns UnknownRole for unrecognized input.
func ParseSequenceRole(s string) SequenceRole {
	s = strings.ToLower(strings.TrimSpace(s))
	for r := AssembledMolecule; int(r) < len(sequenceRoleNames); r++ {
		if sequenceRoleNames[r] == s {
			return r
		}
	}
	return UnknownRole
}

// AssignedMoleculeType is the kind of molecule a sequence is assigned to, as
// listed in the "Assigned-Molecule-Location/Type" column of NCBI assembly
// reports.
type AssignedMoleculeType uint8

const (
	// UnknownMolecule is used for "na" and any unrecognized type.
	UnknownMolecule AssignedMoleculeType = iota
	Chromosome
	Mitochondrion
	Chloroplast
	MitochondrialPlasmid
	Plasmid
	Segment
	LinkageGroup
)

var moleculeTypeNames = [...]string{
	UnknownMolecule:      "na",
	Chromosome:           "Chromosome",
	Mitochondrion:        "Mitochondrion",
	Chloroplast:          "Chloroplast",
	MitochondrialPlasmid: "Mitochondrial Plasmid",
	Plasmid:              "Plasmid",
	Segment:              "Segment",
	LinkageGroup:         "Linkage Group",
}

func (t AssignedMoleculeType) String() string {
	if int(t) >= len(moleculeTypeNames) {
		return moleculeTypeNames[UnknownMolecule]
	}
	return moleculeTypeNames[t]
}

// ParseAssignedMoleculeType converts a molecule type name, e.g.
// "Chromosome" or "linkage group", to an AssignedMoleculeType.  It is
// case-insensitive and returns UnknownMolecule for unrecognized input.
func ParseAssignedMoleculeType(s string) AssignedMoleculeType {
	s = strings.TrimSpace(s)
	for t := Chromosome; int(t) < len(moleculeTypeNames); t++ {
		if strings.EqualFold(moleculeTypeNames[t], s) {
			return t
		}
	}
	return UnknownMolecule
}
