// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package regionindex_test

import (
	"sync"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/svart/contig"
	"github.com/grailbio/svart/coord"
	"github.com/grailbio/svart/genomic"
	"github.com/grailbio/svart/region"
	"github.com/grailbio/svart/regionindex"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

var zb = coord.ZeroBased()

func newAssembly(t *testing.T, name string) *contig.Assembly {
	c1, err := contig.New(1, "chr1", 1000, contig.Opts{})
	assert.NoError(t, err)
	c2, err := contig.New(2, "chr2", 500, contig.Opts{})
	assert.NoError(t, err)
	asm, err := contig.NewAssembly(name, "", []contig.Contig{c1, c2})
	assert.NoError(t, err)
	return asm
}

type fixture struct {
	asm     *contig.Assembly
	regions []genomic.Region
	index   *regionindex.Index
}

func newFixture(t *testing.T) fixture {
	asm := newAssembly(t, "test")
	g := func(id contig.ID, strand genomic.Strand, sys coord.System, start, end coord.Pos) genomic.Region {
		return genomic.MustNew(asm, id, strand, region.MustNew(sys, start, end))
	}
	regions := []genomic.Region{
		g(1, genomic.Forward, zb, 100, 200),
		g(1, genomic.Forward, zb, 150, 160),
		// Forward [300,400).
		g(1, genomic.Reverse, zb, 600, 700),
		// One-based [501,550] is forward [500,550).
		g(1, genomic.Forward, coord.OneBased(), 501, 550),
		// Insertion point at 200.
		g(1, genomic.Forward, zb, 200, 200),
		g(2, genomic.Forward, zb, 100, 200),
	}
	index, err := regionindex.Build(asm, regions, regionindex.Opts{Name: "test"})
	assert.NoError(t, err)
	return fixture{asm: asm, regions: regions, index: index}
}

func (f fixture) query(id contig.ID, strand genomic.Strand, start, end coord.Pos) genomic.Region {
	return genomic.MustNew(f.asm, id, strand, region.MustNew(zb, start, end))
}

func (f fixture) pick(ids ...int) []genomic.Region {
	var r []genomic.Region
	for _, id := range ids {
		r = append(r, f.regions[id])
	}
	return r
}

func TestOverlapping(t *testing.T) {
	f := newFixture(t)
	expect.EQ(t, f.index.Len(), 6)
	expect.EQ(t, f.index.Regions(), f.regions)

	tests := []struct {
		q    genomic.Region
		want []int
	}{
		{f.query(1, genomic.Forward, 0, 50), nil},
		{f.query(1, genomic.Forward, 0, 100), nil},
		{f.query(1, genomic.Forward, 0, 101), []int{0}},
		{f.query(1, genomic.Forward, 155, 156), []int{0, 1}},
		// An insertion point overlaps any span strictly around it.
		{f.query(1, genomic.Forward, 199, 301), []int{0, 2, 4}},
		{f.query(1, genomic.Forward, 200, 300), nil},
		{f.query(1, genomic.Forward, 200, 200), []int{4}},
		{f.query(1, genomic.Forward, 0, 1000), []int{0, 1, 2, 3, 4}},
		// Reverse [450,510) is forward [490,550).
		{f.query(1, genomic.Reverse, 450, 510), []int{3}},
		{f.query(2, genomic.Forward, 150, 151), []int{5}},
	}
	for _, test := range tests {
		expect.EQ(t, f.index.Overlapping(test.q), f.pick(test.want...), "query %v", test.q)
	}
}

func TestContaining(t *testing.T) {
	f := newFixture(t)
	expect.EQ(t, f.index.Containing(f.query(1, genomic.Forward, 150, 155)), f.pick(0, 1))
	expect.EQ(t, f.index.Containing(f.query(1, genomic.Forward, 90, 155)), f.pick())
	expect.EQ(t, f.index.Containing(f.query(1, genomic.Forward, 200, 200)), f.pick(0, 4))
	// Forward [320,330) is reverse [670,680).
	expect.EQ(t, f.index.Containing(f.query(1, genomic.Reverse, 670, 680)), f.pick(2))

	expect.EQ(t, f.index.ContainedIn(f.query(1, genomic.Forward, 0, 1000)), f.pick(0, 1, 2, 3, 4))
	expect.EQ(t, f.index.ContainedIn(f.query(1, genomic.Forward, 140, 300)), f.pick(1, 4))
	expect.EQ(t, f.index.ContainedIn(f.query(2, genomic.Reverse, 0, 500)), f.pick(5))
}

func TestConcurrentQueries(t *testing.T) {
	f := newFixture(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				expect.EQ(t, len(f.index.Overlapping(f.query(1, genomic.Forward, 155, 156))), 2)
			}
		}()
	}
	wg.Wait()
}

func TestBuildRejectsForeignRegions(t *testing.T) {
	f := newFixture(t)
	other := newAssembly(t, "other")
	_, err := regionindex.Build(other, f.regions, regionindex.Opts{Name: "test"})
	require.Error(t, err)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestEmptyIndex(t *testing.T) {
	asm := newAssembly(t, "test")
	index, err := regionindex.Build(asm, nil, regionindex.Opts{})
	assert.NoError(t, err)
	expect.EQ(t, index.Len(), 0)
	q := genomic.MustNew(asm, 1, genomic.Forward, region.MustNew(zb, 0, 10))
	expect.EQ(t, len(index.Overlapping(q)), 0)
}
