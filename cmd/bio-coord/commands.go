// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/svart/contig"
	"github.com/grailbio/svart/coord"
	"github.com/grailbio/svart/genomic"
	"github.com/grailbio/svart/regionindex"
	"github.com/grailbio/svart/variant"
)

func writeRegions(out io.Writer, regions []genomic.Region, sys coord.System) error {
	w := tsv.NewWriter(out)
	w.WriteString(regionHeader)
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, g := range regions {
		if err := writeRegion(w, g, sys); err != nil {
			return err
		}
	}
	return w.Flush()
}

// convert prints regions given in system from in system to.
func convert(out io.Writer, asm *contig.Assembly, from, to coord.System, args []string) error {
	regions, err := parseRegions(asm, from, args)
	if err != nil {
		return err
	}
	return writeRegions(out, regions, to)
}

// flip prints regions transposed onto strand target, or onto their opposite
// strand if target is Unknown.
func flip(out io.Writer, asm *contig.Assembly, sys coord.System, target genomic.Strand, args []string) error {
	regions, err := parseRegions(asm, sys, args)
	if err != nil {
		return err
	}
	for i := range regions {
		if target == genomic.Unknown {
			regions[i].WithOppositeStrand()
		} else {
			regions[i].WithStrand(target)
		}
	}
	return writeRegions(out, regions, sys)
}

// relate prints how region a relates to region b.
func relate(out io.Writer, asm *contig.Assembly, sys coord.System, a, b string) error {
	ra, err := parseRegion(asm, sys, a)
	if err != nil {
		return err
	}
	rb, err := parseRegion(asm, sys, b)
	if err != nil {
		return err
	}
	distance := "NA"
	if d, err := ra.DistanceTo(rb); err == nil {
		distance = strconv.Itoa(int(d))
	}
	w := tsv.NewWriter(out)
	w.WriteString("OVERLAPS\tCONTAINS\tWITHIN\tOVERLAP_LENGTH\tDISTANCE")
	if err := w.EndLine(); err != nil {
		return err
	}
	w.WriteString(strconv.FormatBool(ra.Overlaps(rb)))
	w.WriteString(strconv.FormatBool(ra.Contains(rb)))
	w.WriteString(strconv.FormatBool(rb.Contains(ra)))
	w.WriteInt64(int64(ra.OverlapLength(rb)))
	w.WriteString(distance)
	if err := w.EndLine(); err != nil {
		return err
	}
	return w.Flush()
}

// search indexes regions and prints those matching query under mode.
func search(out io.Writer, asm *contig.Assembly, sys coord.System, mode, query string, args []string) error {
	q, err := parseRegion(asm, sys, query)
	if err != nil {
		return err
	}
	regions, err := parseRegions(asm, sys, args)
	if err != nil {
		return err
	}
	index, err := regionindex.Build(asm, regions, regionindex.Opts{Name: "search"})
	if err != nil {
		return err
	}
	var found []genomic.Region
	switch mode {
	case "overlaps":
		found = index.Overlapping(q)
	case "contains":
		found = index.Containing(q)
	case "within":
		found = index.ContainedIn(q)
	default:
		return fmt.Errorf("unknown search mode %q", mode)
	}
	log.Printf("search %v: %d of %d regions match (%s)", q, len(found), index.Len(), mode)
	return writeRegions(out, found, sys)
}

// variantType prints the classification of a REF/ALT allele pair.  An empty
// ref classifies alt alone.
func variantType(out io.Writer, ref, alt string) error {
	var t variant.Type
	if ref == "" {
		t = variant.ParseVCFType(alt)
	} else {
		t = variant.ParseType(ref, alt)
	}
	w := tsv.NewWriter(out)
	w.WriteString("TYPE\tBASE_TYPE\tSYMBOLIC\tBREAKEND")
	if err := w.EndLine(); err != nil {
		return err
	}
	w.WriteString(t.String())
	w.WriteString(t.BaseType().String())
	w.WriteString(strconv.FormatBool(variant.IsSymbolicAlleles(ref, alt)))
	w.WriteString(strconv.FormatBool(variant.IsBreakend(alt)))
	if err := w.EndLine(); err != nil {
		return err
	}
	return w.Flush()
}
