// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package contig

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/svart/coord"
)

// SAMHeaderOpts controls NewAssemblyFromSAMHeader.
type SAMHeaderOpts struct {
	// GenBankAccession of the assembly, if known.
	GenBankAccession string
	// UCSCNames declares that the reference names follow the UCSC convention
	// ("chr1", "chrM").  The names are then also registered as UCSC names.
	UCSCNames bool
}

// NewAssemblyFromSAMHeader creates an assembly holding one contig per @SQ line
// of h.  Contig IDs are the SAM reference IDs plus one, so that ID 0 stays
// reserved for the unknown contig.
func NewAssemblyFromSAMHeader(name string, h *sam.Header, opts SAMHeaderOpts) (*Assembly, error) {
	refs := h.Refs()
	contigs := make([]Contig, len(refs))
	for i, ref := range refs {
		if ref.ID() != i {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("sam reference %s: id %d at index %d", ref.Name(), ref.ID(), i))
		}
		if ref.Len() < 0 || ref.Len() > coord.PosMax {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("sam reference %s: length %d out of range", ref.Name(), ref.Len()))
		}
		o := guessOpts(ref.Name())
		if opts.UCSCNames {
			o.UCSCName = ref.Name()
		}
		c, err := New(ID(i+1), ref.Name(), coord.Pos(ref.Len()), o)
		if err != nil {
			return nil, err
		}
		contigs[i] = c
	}
	return NewAssembly(name, opts.GenBankAccession, contigs)
}

// guessOpts infers contig metadata from a UCSC-style reference name such as
// "chr1", "chrM", "chr1_KI270706v1_random" or "chrUn_GL000195v1".
func guessOpts(name string) Opts {
	base := strings.TrimPrefix(name, "chr")
	molecule, suffix := base, ""
	if i := strings.IndexByte(base, '_'); i >= 0 {
		molecule, suffix = base[:i], base[i:]
	}
	var o Opts
	switch {
	case suffix == "":
		o.SequenceRole = AssembledMolecule
	case strings.EqualFold(molecule, "Un"):
		return Opts{SequenceRole: UnplacedScaffold}
	case strings.HasSuffix(suffix, "_random"):
		o.SequenceRole = UnlocalizedScaffold
	case strings.HasSuffix(suffix, "_alt"):
		o.SequenceRole = AltScaffold
	case strings.HasSuffix(suffix, "_fix"):
		o.SequenceRole = FixPatch
	default:
		return Opts{}
	}
	o.AssignedMolecule = molecule
	switch strings.ToUpper(molecule) {
	case "M", "MT":
		o.AssignedMoleculeType = Mitochondrion
	case "":
		o.AssignedMolecule = ""
	default:
		o.AssignedMoleculeType = Chromosome
	}
	return o
}
