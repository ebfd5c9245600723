// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package coord defines the numbering conventions used to express genomic
  intervals.

  A System describes whether the start and the end coordinate of an interval
  include (Closed) or exclude (Open) the base they name.  The two systems in
  common use are:

    ZeroBased() == LeftOpen     (start, end]   e.g. BED, BAM
    OneBased()  == FullyClosed  [start, end]   e.g. VCF, GFF, SAM text

  Both express the same bases with the same end value; only the start value
  differs by one.  StartDelta and EndDelta give the amount to add to a stored
  coordinate to re-express it in another system.

  A ConfidenceInterval carries the breakpoint uncertainty around a single
  coordinate, as in the CIPOS/CIEND fields of a structural-variant VCF.
*/
package coord

import "math"

// Pos is the integer type used for genomic positions.  It is signed so that a
// conversion which steps past the first base of a contig (e.g. an open start
// of -1) is representable instead of wrapping around.
type Pos int32

// PosMax is the largest representable position.
const PosMax = math.MaxInt32
