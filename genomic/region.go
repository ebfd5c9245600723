// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genomic

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/svart/contig"
	"github.com/grailbio/svart/coord"
	"github.com/grailbio/svart/region"
)

// Region is a region.Region placed on one strand of a contig.  Its coordinates
// are always relative to its current strand: on the reverse strand, position 0
// is the last base of the contig's forward sequence.
//
// Regions refer to their contig by ID.  The assembly that resolves the ID must
// outlive the region.
type Region struct {
	asm    *contig.Assembly
	contig contig.ID
	strand Strand
	region region.Region
}

// New places r on the given strand of contig id of asm.  It returns an
// errors.Invalid error if the contig does not exist or is the unknown contig,
// if strand is not Forward or Reverse, or if r extends past the contig end.
func New(asm *contig.Assembly, id contig.ID, strand Strand, r region.Region) (Region, error) {
	if asm == nil {
		return Region{}, errors.E(errors.Invalid, "genomic region: nil assembly")
	}
	c := asm.ByID(id)
	if c == nil || c.IsUnknown() {
		return Region{}, errors.E(errors.Invalid, fmt.Sprintf("genomic region: no contig with id %d in assembly %s", id, asm.Name()))
	}
	if strand != Forward && strand != Reverse {
		return Region{}, errors.E(errors.Invalid, fmt.Sprintf("genomic region %s:%v: strand must be + or -", c.Name, r))
	}
	if end := r.EndWithSystem(coord.ZeroBased()); end > c.Length {
		return Region{}, errors.E(errors.Invalid, fmt.Sprintf("genomic region %s:%v: end %d is past contig length %d", c.Name, r, end, c.Length))
	}
	return Region{asm: asm, contig: id, strand: strand, region: r}, nil
}

// NewByName is like New, but resolves the contig by name or alias via
// contig.Assembly.Resolve.
func NewByName(asm *contig.Assembly, name string, strand Strand, r region.Region) (Region, error) {
	c, err := asm.Resolve(name)
	if err != nil {
		return Region{}, err
	}
	return New(asm, c.ID, strand, r)
}

// MustNew is like New, but panics on error.
func MustNew(asm *contig.Assembly, id contig.ID, strand Strand, r region.Region) Region {
	g, err := New(asm, id, strand, r)
	if err != nil {
		log.Panicf("genomic.MustNew: %v", err)
	}
	return g
}

// Assembly returns the assembly that resolves the contig of g.
func (g Region) Assembly() *contig.Assembly { return g.asm }

// Contig returns the contig of g.
func (g Region) Contig() *contig.Contig { return g.asm.ByID(g.contig) }

// ContigID returns the ID of the contig of g.
func (g Region) ContigID() contig.ID { return g.contig }

// ContigName returns the name of the contig of g.
func (g Region) ContigName() string { return g.Contig().Name }

// Strand returns the strand g's coordinates are relative to.
func (g Region) Strand() Strand { return g.strand }

// Region returns the strand-relative coordinates of g.
func (g Region) Region() region.Region { return g.region }

// Start returns the start of g on its strand.
func (g Region) Start() coord.Pos { return g.region.Start() }

// End returns the end of g on its strand.
func (g Region) End() coord.Pos { return g.region.End() }

// System returns the coordinate system of g.
func (g Region) System() coord.System { return g.region.System() }

// Length returns the number of bases covered by g.
func (g Region) Length() coord.Pos { return g.region.Length() }

func (g Region) contigLen() coord.Pos { return g.Contig().Length }

// StartOnStrand returns the start of g measured on strand s, in g's
// coordinate system.
func (g Region) StartOnStrand(s Strand) coord.Pos {
	if s == g.strand {
		return g.region.Start()
	}
	return region.ContigEnd(g.region.System(), g.contigLen()) - g.region.End()
}

// EndOnStrand returns the end of g measured on strand s, in g's coordinate
// system.
func (g Region) EndOnStrand(s Strand) coord.Pos {
	if s == g.strand {
		return g.region.End()
	}
	return region.ContigEnd(g.region.System(), g.contigLen()) - g.region.Start()
}

// WithStrand moves g onto strand s in place, transposing its coordinates if s
// differs from the current strand.  It panics if s is Unknown.
func (g *Region) WithStrand(s Strand) {
	if s != Forward && s != Reverse {
		log.Panicf("genomic region %v: cannot move to strand %v", g, s)
	}
	if s == g.strand {
		return
	}
	g.region.Invert(g.contigLen())
	g.strand = s
}

// WithOppositeStrand transposes g in place onto its other strand.
func (g *Region) WithOppositeStrand() { g.WithStrand(g.strand.Opposite()) }

// OnStrand returns a copy of g transposed onto strand s.
func (g Region) OnStrand(s Strand) Region {
	g.WithStrand(s)
	return g
}

// ToForward returns a copy of g on the forward strand.
func (g Region) ToForward() Region { return g.OnStrand(Forward) }

// ToReverse returns a copy of g on the reverse strand.
func (g Region) ToReverse() Region { return g.OnStrand(Reverse) }

// WithSystem re-expresses g in sys in place.  See region.Region.WithSystem.
func (g *Region) WithSystem(sys coord.System) { g.region.WithSystem(sys) }

// aligned returns the coordinates of other on g's strand, and false if the
// two regions are on different contigs.
func (g Region) aligned(other Region) (region.Region, bool) {
	if g.contig != other.contig {
		return region.Region{}, false
	}
	r := other.region
	if other.strand != g.strand {
		r.Invert(other.contigLen())
	}
	return r, true
}

// Contains returns true iff other lies within g.  Regions on different contigs
// never contain each other; strands are reconciled by transposing other.
func (g Region) Contains(other Region) bool {
	r, ok := g.aligned(other)
	return ok && g.region.Contains(r)
}

// Overlaps returns true iff g and other share a base.  Regions on different
// contigs never overlap.
func (g Region) Overlaps(other Region) bool {
	r, ok := g.aligned(other)
	return ok && g.region.Overlaps(r)
}

// OverlapLength returns the number of bases shared by g and other.
func (g Region) OverlapLength(other Region) coord.Pos {
	r, ok := g.aligned(other)
	if !ok {
		return 0
	}
	return g.region.OverlapLength(r)
}

// DistanceTo returns the number of bases between g and other, measured on g's
// strand.  The result is positive if other lies downstream of g, negative if it
// lies upstream, and 0 if the regions overlap or are adjacent.  It returns an
// errors.Invalid error if the regions are on different contigs.
func (g Region) DistanceTo(other Region) (coord.Pos, error) {
	r, ok := g.aligned(other)
	if !ok {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("distance between %v and %v: different contigs", g, other))
	}
	zb := coord.ZeroBased()
	aStart, aEnd := g.region.StartWithSystem(zb), g.region.EndWithSystem(zb)
	bStart, bEnd := r.StartWithSystem(zb), r.EndWithSystem(zb)
	switch {
	case bStart >= aEnd:
		return bStart - aEnd, nil
	case aStart >= bEnd:
		return bEnd - aStart, nil
	}
	return 0, nil
}

// Compare orders regions by contig ID, then by forward-strand start, then by
// forward-strand end.  It returns a negative value, 0, or a positive value if
// g < o, g == o, g > o respectively.  Regions that differ only in strand or
// coordinate system compare equal.
func (g Region) Compare(o Region) int {
	if c := int64(g.contig) - int64(o.contig); c != 0 {
		return int(c)
	}
	gStart, gEnd := g.ForwardSpan()
	oStart, oEnd := o.ForwardSpan()
	if gStart != oStart {
		return int(gStart - oStart)
	}
	return int(gEnd - oEnd)
}

// ForwardSpan returns the zero-based span of g on the forward strand.
func (g Region) ForwardSpan() (start, end coord.Pos) {
	r := g.region
	if g.strand != Forward {
		r.Invert(g.contigLen())
	}
	zb := coord.ZeroBased()
	return r.StartWithSystem(zb), r.EndWithSystem(zb)
}

// String renders g as e.g. "chr1:(10,20]:+".
func (g Region) String() string {
	return fmt.Sprintf("%s:%v:%v", g.ContigName(), g.region, g.strand)
}
