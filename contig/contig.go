// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package contig describes reference sequences (chromosomes, scaffolds,
// plasmids, ...) and the assemblies that own them.
//
// Regions never own a Contig.  They store its ID, and an Assembly resolves
// IDs back to contigs; ID 0 always denotes the unknown contig.
package contig

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/svart/coord"
)

// ID identifies a contig within an Assembly.  IDs are dense: 1, 2, 3, ...
type ID uint32

// UnknownID is reserved for the unknown contig.  It is never assigned to a real
// contig.
const UnknownID = ID(0)

// Contig is a named reference sequence with a fixed length.  Positions on a
// contig run from 0 (exclusive) to Length (inclusive) in the zero-based
// coordinate system.
type Contig struct {
	ID                   ID
	Name                 string
	SequenceRole         SequenceRole
	AssignedMolecule     string
	AssignedMoleculeType AssignedMoleculeType
	Length               coord.Pos
	GenBankAccession     string
	RefSeqAccession      string
	UCSCName             string
}

// Opts holds the optional metadata of a contig.
type Opts struct {
	// SequenceRole is e.g. AssembledMolecule for chromosomes of the primary
	// assembly.
	SequenceRole SequenceRole
	// AssignedMolecule is the molecule the contig is placed on, e.g. "1".
	AssignedMolecule     string
	AssignedMoleculeType AssignedMoleculeType
	// GenBankAccession is e.g. "CM000663.2".
	GenBankAccession string
	// RefSeqAccession is e.g. "NC_000001.11".
	RefSeqAccession string
	// UCSCName is e.g. "chr1".
	UCSCName string
}

// New creates a contig.  It returns an errors.Invalid error if id is the
// reserved UnknownID or length is negative.
func New(id ID, name string, length coord.Pos, opts Opts) (Contig, error) {
	if id == UnknownID {
		return Contig{}, errors.E(errors.Invalid, "id 0 is reserved for the unknown contig")
	}
	if length < 0 {
		return Contig{}, errors.E(errors.Invalid, fmt.Sprintf("contig %s: negative length %d", name, length))
	}
	return Contig{
		ID:                   id,
		Name:                 name,
		SequenceRole:         opts.SequenceRole,
		AssignedMolecule:     opts.AssignedMolecule,
		AssignedMoleculeType: opts.AssignedMoleculeType,
		Length:               length,
		GenBankAccession:     opts.GenBankAccession,
		RefSeqAccession:      opts.RefSeqAccession,
		UCSCName:             opts.UCSCName,
	}, nil
}

// Unknown returns the unknown contig.  It has no name and zero length.
func Unknown() Contig {
	return Contig{ID: UnknownID}
}

// IsUnknown returns true iff c is the unknown contig.
func (c *Contig) IsUnknown() bool { return c.ID == UnknownID }

// Start returns the zero-based start of the contig, i.e. 0.
func (c *Contig) Start() coord.Pos { return 0 }

// End returns the zero-based end of the contig, i.e. its length.
func (c *Contig) End() coord.Pos { return c.Length }

// Equal returns true iff all fields of c and o are equal.
func (c *Contig) Equal(o *Contig) bool {
	return *c == *o
}

// Compare orders contigs by ID.  It returns a negative value, 0, or a positive
// value if c < o, c == o, c > o respectively.
func (c *Contig) Compare(o *Contig) int {
	switch {
	case c.ID < o.ID:
		return -1
	case c.ID > o.ID:
		return 1
	}
	return 0
}

func (c Contig) String() string {
	return fmt.Sprintf("%s(id=%d, len=%d)", c.Name, c.ID, c.Length)
}
