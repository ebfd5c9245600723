// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package region implements intervals whose endpoints are expressed in an
  explicit coordinate system, optionally with breakpoint uncertainty.

  A Region is either precise or imprecise.  Imprecise regions carry a
  coord.ConfidenceInterval around each endpoint; precise regions always report
  coord.Precise.  The variant is chosen once, by Make, and does not change.

  Predicates never compare raw coordinates of regions in different coordinate
  systems: the other operand is always projected into a common system first.
*/
package region
