// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
bio-coord converts genomic regions between coordinate systems and strands, and
reports how regions relate to each other.

Regions are written as contig:start-end, optionally followed by :+ or :- for
the strand (default +).  start and end are interpreted in the coordinate
system given by -system (default one-based, i.e. fully closed, as in
samtools).  Contigs are declared with one of

  -contigs chr1:248956422,chr2:242193529
  -contigs-file contigs.tsv   (the format written by "bio-coord contigs")
  -sam in.sam                 (the @SQ lines of the SAM header)

Sample usage:

  bio-coord convert -contigs chr1:1000 -from one-based -to zero-based chr1:11-20
  bio-coord flip -contigs chr1:1000 chr1:11-20:+
  bio-coord relate -contigs chr1:1000 chr1:5-20 chr1:985-990:-
  bio-coord search -contigs chr1:1000 chr1:100-200 chr1:150-160 chr1:300-400
  bio-coord contigs -sam in.sam
  bio-coord variant-type A '<DEL:ME:ALU>'
*/
package main
