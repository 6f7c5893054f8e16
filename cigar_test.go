// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import check "gopkg.in/check.v1"

func (s *S) TestParseCigarString(c *check.C) {
	cigar, err := ParseCigarString("20M2X")
	c.Assert(err, check.Equals, nil)
	c.Check(cigar.String(), check.Equals, "20M2X")
	c.Check(cigar.referenceLength(), check.Equals, 22)
}

func (s *S) TestParseCigarStringEmpty(c *check.C) {
	cigar, err := ParseCigarString("*")
	c.Assert(err, check.Equals, nil)
	c.Check(len(cigar), check.Equals, 0)
	c.Check(cigar.String(), check.Equals, "*")
}

func (s *S) TestParseCigarStringInvalid(c *check.C) {
	_, err := ParseCigarString("20Q")
	c.Check(err, check.Equals, ErrInvalidCigarOp)

	_, err = ParseCigarString("M")
	c.Check(err, check.Equals, ErrInvalidCigarOp)
}

func (s *S) TestCigarOpPredicates(c *check.C) {
	m := NewCigarOp(CigarMatch, 5)
	c.Check(m.IsQueryConsuming(), check.Equals, true)
	c.Check(m.IsReferenceConsuming(), check.Equals, true)
	c.Check(m.IsMatchOrMismatch(), check.Equals, true)

	ins := NewCigarOp(CigarInsertion, 3)
	c.Check(ins.IsQueryConsuming(), check.Equals, true)
	c.Check(ins.IsReferenceConsuming(), check.Equals, false)
	c.Check(ins.IsMatchOrMismatch(), check.Equals, false)

	del := NewCigarOp(CigarDeletion, 2)
	c.Check(del.IsQueryConsuming(), check.Equals, false)
	c.Check(del.IsReferenceConsuming(), check.Equals, true)
}

func (s *S) TestInvalidOpcodeRendersAsQuestionMark(c *check.C) {
	op := CigarOp(15) // opcode in low 4 bits, length 0
	c.Check(op.Type().String(), check.Equals, "?")
}
