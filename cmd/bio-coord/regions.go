// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/svart/contig"
	"github.com/grailbio/svart/coord"
	"github.com/grailbio/svart/genomic"
	"github.com/grailbio/svart/region"
	"github.com/pkg/errors"
)

// parseRegion parses "contig:start-end" or "contig:start-end:strand", with
// start and end expressed in sys.  The contig may itself contain colons.
func parseRegion(asm *contig.Assembly, sys coord.System, s string) (genomic.Region, error) {
	rest, strand := s, genomic.Forward
	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		if st := genomic.ParseStrand(rest[i+1:]); st != genomic.Unknown {
			rest, strand = rest[:i], st
		}
	}
	colon := strings.LastIndexByte(rest, ':')
	if colon <= 0 {
		return genomic.Region{}, errors.Errorf("region %q: expected contig:start-end[:strand]", s)
	}
	name, span := rest[:colon], rest[colon+1:]
	dash := strings.IndexByte(span, '-')
	if dash <= 0 {
		return genomic.Region{}, errors.Errorf("region %q: expected start-end", s)
	}
	start, err := strconv.ParseInt(span[:dash], 10, 32)
	if err != nil {
		return genomic.Region{}, errors.Wrapf(err, "region %q: start", s)
	}
	end, err := strconv.ParseInt(span[dash+1:], 10, 32)
	if err != nil {
		return genomic.Region{}, errors.Wrapf(err, "region %q: end", s)
	}
	r, err := region.New(sys, coord.Pos(start), coord.Pos(end))
	if err != nil {
		return genomic.Region{}, errors.Wrapf(err, "region %q", s)
	}
	g, err := genomic.NewByName(asm, name, strand, r)
	if err != nil {
		return genomic.Region{}, errors.Wrapf(err, "region %q", s)
	}
	return g, nil
}

func parseRegions(asm *contig.Assembly, sys coord.System, args []string) ([]genomic.Region, error) {
	regions := make([]genomic.Region, len(args))
	for i, arg := range args {
		g, err := parseRegion(asm, sys, arg)
		if err != nil {
			return nil, err
		}
		regions[i] = g
	}
	return regions, nil
}

const regionHeader = "CONTIG\tSTART\tEND\tSTRAND\tSYSTEM"

// writeRegion writes g as one TSV row, with coordinates expressed in sys.
func writeRegion(w *tsv.Writer, g genomic.Region, sys coord.System) error {
	r := g.Region()
	w.WriteString(g.ContigName())
	w.WriteInt64(int64(r.StartWithSystem(sys)))
	w.WriteInt64(int64(r.EndWithSystem(sys)))
	w.WriteString(g.Strand().String())
	w.WriteString(sys.String())
	return w.EndLine()
}
