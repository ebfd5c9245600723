// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package contig

import (
	"fmt"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// maxSuggestDistance is the largest edit distance at which Suggest still
// proposes a contig name.
const maxSuggestDistance = 3

// Assembly is an immutable table of contigs indexed by ID.  Slot 0 always
// holds the unknown contig; real contigs occupy IDs 1..Len().
//
// An Assembly is safe for concurrent use once constructed.
type Assembly struct {
	name             string
	genBankAccession string
	// contigs[i].ID == i.
	contigs []Contig

	byName     map[string]ID
	byGenBank  map[string]ID
	byRefSeq   map[string]ID
	byUCSCName map[string]ID
}

// NewAssembly creates an assembly from contigs, which must be sorted by ID with
// IDs 1, 2, ..., len(contigs).  Contig names must be unique.  Duplicate
// accessions or UCSC names are tolerated; lookups return the first contig
// carrying them.
func NewAssembly(name, genBankAccession string, contigs []Contig) (*Assembly, error) {
	if len(contigs) == 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("assembly %s: no contigs", name))
	}
	a := &Assembly{
		name:             name,
		genBankAccession: genBankAccession,
		contigs:          make([]Contig, 0, len(contigs)+1),
		byName:           make(map[string]ID, len(contigs)),
		byGenBank:        make(map[string]ID),
		byRefSeq:         make(map[string]ID),
		byUCSCName:       make(map[string]ID),
	}
	a.contigs = append(a.contigs, Unknown())
	for i, c := range contigs {
		if c.ID == UnknownID {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("assembly %s: contig %s: id 0 is reserved for the unknown contig", name, c.Name))
		}
		if want := ID(i + 1); c.ID != want {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("assembly %s: contig %s: id %d, expected %d (ids must be consecutive starting at 1)", name, c.Name, c.ID, want))
		}
		if prev, ok := a.byName[c.Name]; ok {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("assembly %s: duplicate contig name %s (ids %d and %d)", name, c.Name, prev, c.ID))
		}
		a.byName[c.Name] = c.ID
		addAlias(a.byGenBank, c.GenBankAccession, c.ID)
		addAlias(a.byRefSeq, c.RefSeqAccession, c.ID)
		addAlias(a.byUCSCName, c.UCSCName, c.ID)
		a.contigs = append(a.contigs, c)
	}
	if log.At(log.Debug) {
		log.Debug.Printf("assembly %s (%s): %d contigs, %d genbank, %d refseq, %d ucsc aliases",
			name, genBankAccession, len(contigs), len(a.byGenBank), len(a.byRefSeq), len(a.byUCSCName))
	}
	return a, nil
}

func addAlias(m map[string]ID, alias string, id ID) {
	if alias == "" {
		return
	}
	if prev, ok := m[alias]; ok {
		if log.At(log.Debug) {
			log.Debug.Printf("contig alias %s maps to ids %d and %d, keeping %d", alias, prev, id, prev)
		}
		return
	}
	m[alias] = id
}

// Name returns the name of the assembly, e.g. "GRCh38.p13".
func (a *Assembly) Name() string { return a.name }

// GenBankAccession returns the GenBank accession of the assembly.
func (a *Assembly) GenBankAccession() string { return a.genBankAccession }

// Len returns the number of contigs, excluding the unknown contig.
func (a *Assembly) Len() int { return len(a.contigs) - 1 }

// Contigs returns the contigs in ID order, excluding the unknown contig.  The
// caller must not modify the returned slice.
func (a *Assembly) Contigs() []Contig { return a.contigs[1:] }

// Unknown returns the unknown contig of the assembly.
func (a *Assembly) Unknown() *Contig { return &a.contigs[UnknownID] }

// ByID returns the contig with the given ID, or nil if there is none.  ByID(0)
// returns the unknown contig.
func (a *Assembly) ByID(id ID) *Contig {
	if int(id) >= len(a.contigs) {
		return nil
	}
	return &a.contigs[id]
}

func (a *Assembly) lookup(m map[string]ID, key string) *Contig {
	if id, ok := m[key]; ok {
		return &a.contigs[id]
	}
	return nil
}

// ByName returns the contig with the given name, or nil.
func (a *Assembly) ByName(name string) *Contig { return a.lookup(a.byName, name) }

// ByGenBankAccession returns the contig with the given GenBank accession, or
// nil.
func (a *Assembly) ByGenBankAccession(acc string) *Contig { return a.lookup(a.byGenBank, acc) }

// ByRefSeqAccession returns the contig with the given RefSeq accession, or nil.
func (a *Assembly) ByRefSeqAccession(acc string) *Contig { return a.lookup(a.byRefSeq, acc) }

// ByUCSCName returns the contig with the given UCSC name, or nil.
func (a *Assembly) ByUCSCName(name string) *Contig { return a.lookup(a.byUCSCName, name) }

// Lookup finds a contig by name, then by UCSC name, GenBank accession and
// RefSeq accession, in that order.  It returns nil if nothing matches.
func (a *Assembly) Lookup(key string) *Contig {
	for _, m := range []map[string]ID{a.byName, a.byUCSCName, a.byGenBank, a.byRefSeq} {
		if c := a.lookup(m, key); c != nil {
			return c
		}
	}
	return nil
}

// Suggest returns the contig name or UCSC name closest to key by Levenshtein
// distance.  It returns false if no name is within a small edit distance.
func (a *Assembly) Suggest(key string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	try := func(name string) {
		if name == "" {
			return
		}
		if d := matchr.Levenshtein(key, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	for i := 1; i < len(a.contigs); i++ {
		try(a.contigs[i].Name)
		try(a.contigs[i].UCSCName)
	}
	return best, best != ""
}

// Resolve is like Lookup, but returns an errors.NotExist error naming the
// closest known contig when key matches nothing.
func (a *Assembly) Resolve(key string) (*Contig, error) {
	if c := a.Lookup(key); c != nil {
		return c, nil
	}
	msg := fmt.Sprintf("contig %s not found in assembly %s", key, a.name)
	if s, ok := a.Suggest(key); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", s)
	}
	return nil, errors.E(errors.NotExist, msg)
}
