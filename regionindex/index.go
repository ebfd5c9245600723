// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package regionindex answers overlap and containment queries over a fixed set
// of genomic regions.
//
// Regions are kept in one interval tree per contig, keyed by their zero-based
// coordinates on the forward strand.  Tree lookups only select candidates; the
// answer is decided by genomic.Region's own predicates, so queries honor
// strands, coordinate systems and empty regions exactly like the region
// algebra does.
package regionindex

import (
	"fmt"
	"sort"

	"github.com/biogo/store/interval"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/svart/contig"
	"github.com/grailbio/svart/genomic"
)

// Opts controls Build.
type Opts struct {
	// Name identifies the index in log messages.
	Name string
}

// Index is an immutable set of genomic regions.  It is safe for concurrent
// queries.
type Index struct {
	asm     *contig.Assembly
	regions []genomic.Region
	trees   map[contig.ID]*interval.IntTree
}

// treeInterval is a region as stored in a tree: its forward-strand zero-based
// span, plus its position in Index.regions.
type treeInterval struct {
	start, end int
	id         uintptr
}

func (i treeInterval) Overlap(b interval.IntRange) bool { return overlapClosed(i.start, i.end, b) }

func (i treeInterval) ID() uintptr { return i.id }

func (i treeInterval) Range() interval.IntRange { return interval.IntRange{Start: i.start, End: i.end} }

// query is a tree query.  It matches ranges that overlap or touch the query
// span, so that empty regions at the span boundaries become candidates.
type query struct{ start, end int }

func (q query) Overlap(b interval.IntRange) bool { return overlapClosed(q.start, q.end, b) }

func overlapClosed(start, end int, b interval.IntRange) bool {
	return start <= b.End && b.Start <= end
}

func forwardSpan(r genomic.Region) (start, end int) {
	s, e := r.ForwardSpan()
	return int(s), int(e)
}

// Build indexes regions, which must all belong to asm.  The index retains the
// regions in the given order; query results follow that order.
func Build(asm *contig.Assembly, regions []genomic.Region, opts Opts) (*Index, error) {
	x := &Index{
		asm:     asm,
		regions: make([]genomic.Region, len(regions)),
		trees:   make(map[contig.ID]*interval.IntTree),
	}
	copy(x.regions, regions)
	for i, r := range x.regions {
		if r.Assembly() != asm {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("regionindex %s: region #%d does not belong to assembly %s", opts.Name, i, asm.Name()))
		}
		tree, ok := x.trees[r.ContigID()]
		if !ok {
			tree = &interval.IntTree{}
			x.trees[r.ContigID()] = tree
		}
		start, end := forwardSpan(r)
		if err := tree.Insert(treeInterval{start: start, end: end, id: uintptr(i)}, true); err != nil {
			return nil, errors.E(err, fmt.Sprintf("regionindex %s: insert %v", opts.Name, r))
		}
	}
	for _, tree := range x.trees {
		tree.AdjustRanges()
	}
	if log.At(log.Debug) {
		log.Debug.Printf("regionindex %s: %d regions on %d contigs", opts.Name, len(x.regions), len(x.trees))
	}
	return x, nil
}

// Len returns the number of indexed regions.
func (x *Index) Len() int { return len(x.regions) }

// Regions returns the indexed regions in index order.  The caller must not
// modify the returned slice.
func (x *Index) Regions() []genomic.Region { return x.regions }

// candidates returns, in index order, the indexes of regions whose span
// overlaps or touches q on the forward strand.
func (x *Index) candidates(q genomic.Region) []int {
	tree, ok := x.trees[q.ContigID()]
	if !ok {
		return nil
	}
	start, end := forwardSpan(q)
	hits := tree.Get(query{start: start, end: end})
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = int(h.ID())
	}
	sort.Ints(ids)
	return ids
}

func (x *Index) filter(q genomic.Region, match func(r genomic.Region) bool) []genomic.Region {
	var result []genomic.Region
	for _, id := range x.candidates(q) {
		if r := x.regions[id]; match(r) {
			result = append(result, r)
		}
	}
	return result
}

// Overlapping returns the indexed regions that overlap q.
func (x *Index) Overlapping(q genomic.Region) []genomic.Region {
	return x.filter(q, func(r genomic.Region) bool { return r.Overlaps(q) })
}

// Containing returns the indexed regions that contain q.
func (x *Index) Containing(q genomic.Region) []genomic.Region {
	return x.filter(q, func(r genomic.Region) bool { return r.Contains(q) })
}

// ContainedIn returns the indexed regions that lie within q.
func (x *Index) ContainedIn(q genomic.Region) []genomic.Region {
	return x.filter(q, func(r genomic.Region) bool { return q.Contains(r) })
}
