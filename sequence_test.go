// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import check "gopkg.in/check.v1"

func (s *S) TestSequenceAt(c *check.C) {
	r, err := NewRecord("readname", "AGCTGACTACGTAATAGCCCTA", nil, nil)
	c.Assert(err, check.Equals, nil)

	seq := r.Sequence()
	c.Check(seq.Len(), check.Equals, 22)
	for i := 0; i < seq.Len(); i++ {
		c.Check(string(seq.At(i)), check.Equals, string("AGCTGACTACGTAATAGCCCTA"[i]))
	}
}

func (s *S) TestSequenceSliceMatchesStringSlice(c *check.C) {
	const bases = "AGCTGACTACGTAATAGCCCTA"
	r, err := NewRecord("readname", bases, nil, nil)
	c.Assert(err, check.Equals, nil)

	seq := r.Sequence()
	for a := 0; a <= len(bases); a++ {
		for b := a; b <= len(bases); b++ {
			c.Check(seq.Slice(a, b).String(), check.Equals, bases[a:b])
		}
	}
}

func (s *S) TestSequenceOddOffsetSlice(c *check.C) {
	const bases = "ACGTACGTA"
	r, err := NewRecord("readname", bases, nil, nil)
	c.Assert(err, check.Equals, nil)

	seq := r.Sequence()
	sub := seq.Slice(1, 9)
	c.Check(sub.String(), check.Equals, bases[1:9])
	c.Check(sub.At(0), check.Equals, byte('C'))
}

func (s *S) TestSequenceEmpty(c *check.C) {
	r, err := NewRecord("readname", "", nil, nil)
	c.Assert(err, check.Equals, nil)
	c.Check(r.Sequence().String(), check.Equals, "*")
}
