// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package coord

// Bound tells whether an interval endpoint includes the coordinate it names.
type Bound uint8

const (
	// Open means the endpoint excludes the named coordinate.
	Open Bound = iota
	// Closed means the endpoint includes the named coordinate.
	Closed
)

// IsOpen returns true iff b == Open.
func (b Bound) IsOpen() bool { return b == Open }

// IsClosed returns true iff b == Closed.
func (b Bound) IsClosed() bool { return b == Closed }

func (b Bound) String() string {
	if b == Open {
		return "open"
	}
	return "closed"
}
