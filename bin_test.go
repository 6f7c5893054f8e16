// Copyright ©2014 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import check "gopkg.in/check.v1"

func (s *S) TestReg2BinWholeGenome(c *check.C) {
	c.Check(reg2bin(0, 1<<29), check.Equals, binLevel0)
}

func (s *S) TestReg2BinSmallInterval(c *check.C) {
	bin := reg2bin(100, 122)
	c.Check(bin != binLevel0, check.Equals, true)
	c.Check(reg2bin(100, 122), check.Equals, reg2bin(100, 122))
}

func (s *S) TestReg2BinConsistentWithRecalculateBin(c *check.C) {
	cigar, _ := ParseCigarString("20M2X")
	r, err := NewRecord("readname", "AGCTGACTACGTAATAGCCCTA", cigar, nil)
	c.Assert(err, check.Equals, nil)
	r.SetPosition(1000)

	c.Check(r.Bin(), check.Equals, reg2bin(1000, 1022))
}
