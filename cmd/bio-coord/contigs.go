// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/svart/contig"
	"github.com/grailbio/svart/coord"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

// contigFlags selects the source of the contig table.  Exactly one of inline,
// tablePath and samPath must be set.
type contigFlags struct {
	assembly  *string
	inline    *string
	tablePath *string
	samPath   *string
	ucscNames *bool
}

func registerContigFlags(cmd *cmdline.Command) *contigFlags {
	return &contigFlags{
		assembly:  cmd.Flags.String("assembly", "custom", "Name of the assembly"),
		inline:    cmd.Flags.String("contigs", "", "Comma-separated list of name:length contigs, e.g. chr1:248956422,chr2:242193529"),
		tablePath: cmd.Flags.String("contigs-file", "", "TSV contig table, in the format printed by the contigs subcommand"),
		samPath:   cmd.Flags.String("sam", "", "SAM file whose header @SQ lines define the contigs"),
		ucscNames: cmd.Flags.Bool("ucsc-names", true, "With -sam or -contigs, also register contig names as UCSC names"),
	}
}

func (f *contigFlags) load(ctx context.Context) (*contig.Assembly, error) {
	n := 0
	for _, s := range []string{*f.inline, *f.tablePath, *f.samPath} {
		if s != "" {
			n++
		}
	}
	if n != 1 {
		return nil, fmt.Errorf("exactly one of -contigs, -contigs-file and -sam must be set")
	}
	var (
		asm *contig.Assembly
		err error
	)
	switch {
	case *f.inline != "":
		asm, err = parseInlineContigs(*f.assembly, *f.inline, *f.ucscNames)
	case *f.tablePath != "":
		asm, err = readContigTable(ctx, *f.assembly, *f.tablePath)
	default:
		asm, err = readSAMContigs(ctx, *f.assembly, *f.samPath, *f.ucscNames)
	}
	if err != nil {
		return nil, err
	}
	log.Debug.Printf("loaded %d contigs into assembly %s", asm.Len(), asm.Name())
	return asm, nil
}

// parseInlineContigs parses "name:length,name:length,...".
func parseInlineContigs(name, list string, ucscNames bool) (*contig.Assembly, error) {
	var contigs []contig.Contig
	for i, field := range strings.Split(list, ",") {
		colon := strings.LastIndexByte(field, ':')
		if colon <= 0 {
			return nil, errors.Errorf("contig %q: expected name:length", field)
		}
		length, err := strconv.ParseInt(field[colon+1:], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "contig %q: length", field)
		}
		var opts contig.Opts
		if ucscNames {
			opts.UCSCName = field[:colon]
		}
		c, err := contig.New(contig.ID(i+1), field[:colon], coord.Pos(length), opts)
		if err != nil {
			return nil, err
		}
		contigs = append(contigs, c)
	}
	return contig.NewAssembly(name, "", contigs)
}

// contigRow is one line of a contig table.
type contigRow struct {
	Name             string `tsv:"NAME"`
	Length           int64  `tsv:"LENGTH"`
	Role             string `tsv:"ROLE"`
	AssignedMolecule string `tsv:"MOLECULE"`
	MoleculeType     string `tsv:"MOLECULE_TYPE"`
	GenBank          string `tsv:"GENBANK"`
	RefSeq           string `tsv:"REFSEQ"`
	UCSC             string `tsv:"UCSC"`
}

var contigTableHeader = []string{"NAME", "LENGTH", "ROLE", "MOLECULE", "MOLECULE_TYPE", "GENBANK", "REFSEQ", "UCSC"}

func readContigTable(ctx context.Context, name, path string) (asm *contig.Assembly, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	return parseContigTable(name, in.Reader(ctx))
}

func parseContigTable(name string, r io.Reader) (*contig.Assembly, error) {
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.UseHeaderNames = true
	var contigs []contig.Contig
	for {
		var row contigRow
		if err := tr.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "contig table line %d", len(contigs)+2)
		}
		if row.Length < 0 || row.Length > coord.PosMax {
			return nil, errors.Errorf("contig %s: length %d out of range", row.Name, row.Length)
		}
		c, err := contig.New(contig.ID(len(contigs)+1), row.Name, coord.Pos(row.Length), contig.Opts{
			SequenceRole:         contig.ParseSequenceRole(row.Role),
			AssignedMolecule:     naToEmpty(row.AssignedMolecule),
			AssignedMoleculeType: contig.ParseAssignedMoleculeType(row.MoleculeType),
			GenBankAccession:     naToEmpty(row.GenBank),
			RefSeqAccession:      naToEmpty(row.RefSeq),
			UCSCName:             naToEmpty(row.UCSC),
		})
		if err != nil {
			return nil, err
		}
		contigs = append(contigs, c)
	}
	return contig.NewAssembly(name, "", contigs)
}

func naToEmpty(s string) string {
	if s == "na" {
		return ""
	}
	return s
}

func emptyToNA(s string) string {
	if s == "" {
		return "na"
	}
	return s
}

func readSAMContigs(ctx context.Context, name, path string, ucscNames bool) (asm *contig.Assembly, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	sr, err := sam.NewReader(in.Reader(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "read SAM header of %s", path)
	}
	return contig.NewAssemblyFromSAMHeader(name, sr.Header(), contig.SAMHeaderOpts{UCSCNames: ucscNames})
}

// writeContigs prints the contig table of asm in the format read by
// -contigs-file.
func writeContigs(out io.Writer, asm *contig.Assembly) error {
	w := tsv.NewWriter(out)
	w.WriteString(strings.Join(contigTableHeader, "\t"))
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, c := range asm.Contigs() {
		w.WriteString(c.Name)
		w.WriteInt64(int64(c.Length))
		w.WriteString(c.SequenceRole.String())
		w.WriteString(emptyToNA(c.AssignedMolecule))
		w.WriteString(c.AssignedMoleculeType.String())
		w.WriteString(emptyToNA(c.GenBankAccession))
		w.WriteString(emptyToNA(c.RefSeqAccession))
		w.WriteString(emptyToNA(c.UCSCName))
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
