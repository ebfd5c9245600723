// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package region_test

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/svart/coord"
	"github.com/grailbio/svart/region"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

var (
	zb = coord.ZeroBased()
	ob = coord.OneBased()
)

func TestNew(t *testing.T) {
	r, err := region.New(zb, 10, 20)
	assert.NoError(t, err)
	expect.EQ(t, r.Start(), coord.Pos(10))
	expect.EQ(t, r.End(), coord.Pos(20))
	expect.EQ(t, r.System(), zb)
	expect.EQ(t, r.Kind(), region.Precise)
	expect.EQ(t, r.StartCI(), coord.Precise)
	expect.EQ(t, r.EndCI(), coord.Precise)
	expect.EQ(t, r.Length(), coord.Pos(10))
	expect.EQ(t, r.String(), "(10,20]")
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		sys        coord.System
		start, end coord.Pos
	}{
		{zb, 20, 10},
		{zb, -1, 10},
		// Zero-based (-1,10].
		{ob, 0, 10},
		// Zero-based (11,10].
		{ob, 12, 10},
		// Zero-based (10,9].
		{coord.FullyOpen, 10, 10},
	}
	for _, tt := range tests {
		_, err := region.New(tt.sys, tt.start, tt.end)
		require.Error(t, err, "%v %d %d", tt.sys, tt.start, tt.end)
		expect.True(t, errors.Is(errors.Invalid, err))
	}
	require.Panics(t, func() { region.MustNew(zb, 5, 4) })
}

func TestEmptyRegions(t *testing.T) {
	tests := []struct {
		sys        coord.System
		start, end coord.Pos
	}{
		{zb, 10, 10},
		{ob, 11, 10},
		{coord.RightOpen, 11, 11},
		{coord.FullyOpen, 10, 11},
	}
	for _, tt := range tests {
		r, err := region.New(tt.sys, tt.start, tt.end)
		assert.NoError(t, err)
		expect.True(t, r.IsEmpty(), "%v", r)
		expect.EQ(t, r.Length(), coord.Pos(0))
	}
}

func TestMake(t *testing.T) {
	r := region.MustMake(zb, 10, coord.Precise, 20, coord.Precise)
	expect.EQ(t, r.Kind(), region.Precise)
	expect.True(t, r.IsPrecise())

	r = region.MustMake(zb, 10, coord.Imprecise(10, 5), 20, coord.Precise)
	expect.EQ(t, r.Kind(), region.Imprecise)
	expect.EQ(t, r.StartCI(), coord.Imprecise(10, 5))
	expect.EQ(t, r.EndCI(), coord.Precise)
	expect.EQ(t, r.String(), "(10,20] ci=[-10,+5],[-0,+0]")

	p := r.AsPrecise()
	expect.True(t, p.IsPrecise())
	expect.EQ(t, p.StartCI(), coord.Precise)
	expect.EQ(t, p.Start(), r.Start())
	expect.EQ(t, p.End(), r.End())

	r, err := region.NewImprecise(zb, 10, coord.Precise, 20, coord.Precise)
	assert.NoError(t, err)
	expect.EQ(t, r.Kind(), region.Imprecise)
}

func TestStartWithSystem(t *testing.T) {
	tests := []struct {
		start, end  coord.Pos
		sys, target coord.System
		want        coord.Pos
	}{
		{10, 20, zb, zb, 10},
		{10, 20, zb, ob, 11},
		{11, 20, ob, zb, 10},
		{11, 20, ob, ob, 11},
	}
	for _, tt := range tests {
		r := region.MustMake(tt.sys, tt.start, coord.Imprecise(10, 5), tt.end, coord.Imprecise(5, 50))
		expect.EQ(t, r.StartWithSystem(tt.target), tt.want, "%v -> %v", r, tt.target)
	}
}

func TestEndWithSystem(t *testing.T) {
	tests := []struct {
		start, end  coord.Pos
		sys, target coord.System
		want        coord.Pos
	}{
		{10, 20, zb, zb, 20},
		{10, 20, zb, ob, 20},
		{11, 20, ob, zb, 20},
		{11, 20, ob, ob, 20},
		{10, 20, zb, coord.RightOpen, 21},
		{10, 20, zb, coord.FullyOpen, 21},
		{11, 21, coord.RightOpen, zb, 20},
	}
	for _, tt := range tests {
		r := region.MustNew(tt.sys, tt.start, tt.end)
		expect.EQ(t, r.EndWithSystem(tt.target), tt.want, "%v -> %v", r, tt.target)
	}
}

func TestWithSystem(t *testing.T) {
	tests := []struct {
		start, end         coord.Pos
		sys, target        coord.System
		wantStart, wantEnd coord.Pos
	}{
		{10, 20, zb, ob, 11, 20},
		{10, 20, zb, zb, 10, 20},
		{11, 20, ob, ob, 11, 20},
		{11, 20, ob, zb, 10, 20},
		// The end is never shifted by the mutating conversion.
		{10, 20, zb, coord.RightOpen, 11, 20},
	}
	for _, tt := range tests {
		r := region.MustNew(tt.sys, tt.start, tt.end)
		r.WithSystem(tt.target)
		expect.EQ(t, r.Start(), tt.wantStart)
		expect.EQ(t, r.End(), tt.wantEnd)
		expect.EQ(t, r.System(), tt.target)
	}
}

func TestWithSystemRoundTrip(t *testing.T) {
	systems := []coord.System{coord.FullyClosed, coord.LeftOpen, coord.RightOpen, coord.FullyOpen}
	for _, a := range systems {
		for _, b := range systems {
			r := region.MustNew(zb, 10, 20)
			r.WithSystem(a)
			start := r.Start()
			r.WithSystem(b)
			r.WithSystem(a)
			expect.EQ(t, r.Start(), start, "%v <-> %v", a, b)
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		a, b region.Region
		want bool
	}{
		{region.MustNew(zb, 4, 20), region.MustNew(zb, 5, 16), true},
		{region.MustNew(zb, 4, 20), region.MustNew(zb, 20, 29), false},
		{region.MustNew(zb, 4, 20), region.MustNew(zb, 4, 20), true},
		// (4,20] zero-based is [5,20] one-based.
		{region.MustNew(zb, 4, 20), region.MustNew(ob, 5, 20), true},
		{region.MustNew(zb, 4, 20), region.MustNew(ob, 4, 20), false},
		{region.MustNew(ob, 5, 20), region.MustNew(zb, 4, 20), true},
		{region.MustNew(coord.FullyOpen, 4, 21), region.MustNew(zb, 4, 20), true},
		{region.MustNew(coord.FullyOpen, 4, 20), region.MustNew(zb, 4, 20), false},
	}
	for _, tt := range tests {
		expect.EQ(t, tt.a.Contains(tt.b), tt.want, "%v contains %v", tt.a, tt.b)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b region.Region
		want bool
	}{
		{region.MustNew(zb, 4, 20), region.MustNew(zb, 1, 5), true},
		{region.MustNew(zb, 4, 20), region.MustNew(zb, 20, 29), false},
		{region.MustNew(zb, 4, 20), region.MustNew(zb, 0, 4), false},
		{region.MustNew(zb, 4, 20), region.MustNew(ob, 20, 29), true},
		{region.MustNew(zb, 4, 20), region.MustNew(ob, 21, 29), false},
		// Insertion points.
		{region.MustNew(zb, 5, 5), region.MustNew(zb, 5, 5), true},
		{region.MustNew(zb, 5, 5), region.MustNew(ob, 6, 5), true},
		{region.MustNew(zb, 5, 5), region.MustNew(zb, 6, 6), false},
		{region.MustNew(zb, 5, 5), region.MustNew(zb, 4, 6), true},
		{region.MustNew(zb, 5, 5), region.MustNew(zb, 5, 6), false},
	}
	for _, tt := range tests {
		expect.EQ(t, tt.a.Overlaps(tt.b), tt.want, "%v overlaps %v", tt.a, tt.b)
		expect.EQ(t, tt.b.Overlaps(tt.a), tt.want, "%v overlaps %v", tt.b, tt.a)
	}
}

func TestOverlapLength(t *testing.T) {
	a := region.MustNew(zb, 4, 20)
	expect.EQ(t, a.OverlapLength(region.MustNew(zb, 1, 5)), coord.Pos(1))
	expect.EQ(t, a.OverlapLength(region.MustNew(ob, 10, 30)), coord.Pos(11))
	expect.EQ(t, a.OverlapLength(region.MustNew(zb, 20, 29)), coord.Pos(0))
	expect.EQ(t, a.OverlapLength(region.MustNew(zb, 40, 49)), coord.Pos(0))
}

func TestInvert(t *testing.T) {
	tests := []struct {
		sys                coord.System
		start, end         coord.Pos
		wantStart, wantEnd coord.Pos
	}{
		{zb, 10, 20, 80, 90},
		{ob, 11, 20, 81, 90},
		{coord.RightOpen, 11, 21, 81, 91},
		{coord.FullyOpen, 10, 21, 80, 91},
	}
	for _, tt := range tests {
		r := region.MustNew(tt.sys, tt.start, tt.end)
		r.Invert(100)
		expect.EQ(t, r.Start(), tt.wantStart, "%v", tt.sys)
		expect.EQ(t, r.End(), tt.wantEnd, "%v", tt.sys)
		r.Invert(100)
		expect.EQ(t, r.Start(), tt.start, "%v", tt.sys)
		expect.EQ(t, r.End(), tt.end, "%v", tt.sys)
	}
}

// Inverting in any system must denote the same bases as inverting in the
// zero-based system.
func TestInvertAgreesAcrossSystems(t *testing.T) {
	want := region.MustNew(zb, 10, 20)
	want.Invert(100)
	for _, sys := range []coord.System{coord.FullyClosed, coord.RightOpen, coord.FullyOpen} {
		r := region.MustNew(sys, region.MustNew(zb, 10, 20).StartWithSystem(sys), region.MustNew(zb, 10, 20).EndWithSystem(sys))
		r.Invert(100)
		expect.EQ(t, r.StartWithSystem(zb), want.Start(), "%v", sys)
		expect.EQ(t, r.EndWithSystem(zb), want.End(), "%v", sys)
	}
}

func TestInvertImprecise(t *testing.T) {
	r := region.MustMake(zb, 10, coord.Imprecise(10, 5), 20, coord.Imprecise(5, 50))
	r.Invert(100)
	expect.EQ(t, r.Start(), coord.Pos(80))
	expect.EQ(t, r.End(), coord.Pos(90))
	expect.EQ(t, r.StartCI(), coord.Imprecise(50, 5))
	expect.EQ(t, r.EndCI(), coord.Imprecise(5, 10))

	r.Invert(100)
	expect.EQ(t, r.StartCI(), coord.Imprecise(10, 5))
	expect.EQ(t, r.EndCI(), coord.Imprecise(5, 50))
}

func TestSpanFuncs(t *testing.T) {
	expect.True(t, region.IsEmpty(3, 3))
	expect.False(t, region.IsEmpty(3, 4))
	expect.True(t, region.Overlaps(4, 20, 1, 5))
	expect.False(t, region.Overlaps(4, 20, 20, 29))
	expect.True(t, region.Overlaps(7, 7, 7, 7))
	expect.True(t, region.Contains(4, 20, 5, 16))
	expect.False(t, region.Contains(4, 20, 20, 29))
	expect.EQ(t, region.OverlapLength(4, 20, 10, 30), coord.Pos(10))
	expect.EQ(t, region.ContigEnd(zb, 100), coord.Pos(100))
	expect.EQ(t, region.ContigEnd(ob, 100), coord.Pos(101))
}
