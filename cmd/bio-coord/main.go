// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/svart/coord"
	"github.com/grailbio/svart/genomic"
	"v.io/x/lib/cmdline"
)

const systemHelp = "Coordinate system: fully-closed (one-based), left-open (zero-based), right-open, or fully-open"

func newCmdConvert() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "convert",
		Short:    "Express regions in another coordinate system",
		ArgsName: "region...",
	}
	cf := registerContigFlags(cmd)
	fromFlag := cmd.Flags.String("from", "one-based", "Input "+systemHelp)
	toFlag := cmd.Flags.String("to", "zero-based", "Output "+systemHelp)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("convert takes at least one region, but got %v", argv)
		}
		from, err := coord.ParseSystem(*fromFlag)
		if err != nil {
			return err
		}
		to, err := coord.ParseSystem(*toFlag)
		if err != nil {
			return err
		}
		asm, err := cf.load(vcontext.Background())
		if err != nil {
			return err
		}
		return convert(env.Stdout, asm, from, to, argv)
	})
	return cmd
}

func newCmdFlip() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "flip",
		Short:    "Transpose regions onto the other strand of their contig",
		ArgsName: "region...",
	}
	cf := registerContigFlags(cmd)
	systemFlag := cmd.Flags.String("system", "one-based", systemHelp)
	strandFlag := cmd.Flags.String("strand", "", `Target strand, "+" or "-".  By default each region moves to its opposite strand.`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("flip takes at least one region, but got %v", argv)
		}
		sys, err := coord.ParseSystem(*systemFlag)
		if err != nil {
			return err
		}
		target := genomic.Unknown
		if *strandFlag != "" {
			if target, err = genomic.ParseStrandStrict(*strandFlag); err != nil {
				return err
			}
		}
		asm, err := cf.load(vcontext.Background())
		if err != nil {
			return err
		}
		return flip(env.Stdout, asm, sys, target, argv)
	})
	return cmd
}

func newCmdRelate() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "relate",
		Short:    "Report overlap, containment and distance between two regions",
		ArgsName: "region region",
	}
	cf := registerContigFlags(cmd)
	systemFlag := cmd.Flags.String("system", "one-based", systemHelp)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("relate takes two regions, but got %v", argv)
		}
		sys, err := coord.ParseSystem(*systemFlag)
		if err != nil {
			return err
		}
		asm, err := cf.load(vcontext.Background())
		if err != nil {
			return err
		}
		return relate(env.Stdout, asm, sys, argv[0], argv[1])
	})
	return cmd
}

func newCmdSearch() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "search",
		Short:    "Index regions and print those matching a query region",
		ArgsName: "query region...",
	}
	cf := registerContigFlags(cmd)
	systemFlag := cmd.Flags.String("system", "one-based", systemHelp)
	modeFlag := cmd.Flags.String("mode", "overlaps", `Match mode: "overlaps" prints regions overlapping the query, "contains" prints regions containing the query, "within" prints regions inside the query`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return fmt.Errorf("search takes a query and at least one region, but got %v", argv)
		}
		sys, err := coord.ParseSystem(*systemFlag)
		if err != nil {
			return err
		}
		asm, err := cf.load(vcontext.Background())
		if err != nil {
			return err
		}
		return search(env.Stdout, asm, sys, *modeFlag, argv[0], argv[1:])
	})
	return cmd
}

func newCmdContigs() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "contigs",
		Short: "Print the contig table as TSV",
	}
	cf := registerContigFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("contigs takes no arguments, but got %v", argv)
		}
		asm, err := cf.load(vcontext.Background())
		if err != nil {
			return err
		}
		return writeContigs(env.Stdout, asm)
	})
	return cmd
}

func newCmdVariantType() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "variant-type",
		Short:    "Classify a VCF REF/ALT allele pair",
		ArgsName: "[ref] alt",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		switch len(argv) {
		case 1:
			return variantType(env.Stdout, "", argv[0])
		case 2:
			return variantType(env.Stdout, argv[0], argv[1])
		}
		return fmt.Errorf("variant-type takes [ref] alt, but got %v", argv)
	})
	return cmd
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-coord",
		Short:    "Convert and relate genomic regions across coordinate systems and strands",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdConvert(),
			newCmdFlip(),
			newCmdRelate(),
			newCmdSearch(),
			newCmdContigs(),
			newCmdVariantType(),
		},
	}
}

func main() {
	shutdown := grail.Init()
	cmdline.HideGlobalFlagsExcept()
	env := cmdline.EnvFromOS()
	code := cmdline.ExitCode(cmdline.ParseAndRun(newCmdRoot(), env, os.Args[1:]), env.Stderr)
	shutdown()
	os.Exit(code)
}
