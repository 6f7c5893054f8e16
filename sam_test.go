// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import (
	"strings"

	check "gopkg.in/check.v1"
)

type fakeNamer map[int32]string

func (f fakeNamer) Name(id int32) (string, bool) {
	n, ok := f[id]
	return n, ok
}

func (s *S) TestWriteSAMUnresolvedReference(c *check.C) {
	cigar, _ := ParseCigarString("4M")
	r, err := NewRecord("readname", "ACGT", cigar, nil)
	c.Assert(err, check.Equals, nil)
	r.SetRefID(0)
	r.SetPosition(99)

	fields := strings.Split(r.WriteSAM(nil), "\t")
	c.Check(fields[0], check.Equals, "readname")
	c.Check(fields[2], check.Equals, "*")
	c.Check(fields[3], check.Equals, "100")
	c.Check(fields[5], check.Equals, "4M")
}

func (s *S) TestWriteSAMResolvedReference(c *check.C) {
	cigar, _ := ParseCigarString("4M")
	r, err := NewRecord("readname", "ACGT", cigar, nil)
	c.Assert(err, check.Equals, nil)
	r.SetRefID(0)
	r.SetMateRefID(0)

	namer := fakeNamer{0: "chr1"}
	fields := strings.Split(r.WriteSAM(namer), "\t")
	c.Check(fields[2], check.Equals, "chr1")
	c.Check(fields[6], check.Equals, "=")
}

func (s *S) TestWriteSAMEmptySequenceAndQuality(c *check.C) {
	r, err := NewRecord("readname", "", nil, nil)
	c.Assert(err, check.Equals, nil)

	fields := strings.Split(r.WriteSAM(nil), "\t")
	c.Check(fields[9], check.Equals, "*")
	c.Check(fields[10], check.Equals, "*")
}

func (s *S) TestWriteSAMTags(c *check.C) {
	r, err := NewRecord("readname", "ACGT", nil, nil)
	c.Assert(err, check.Equals, nil)
	c.Assert(r.Set(Tag{'R', 'G'}, 'C', uint8(15)), check.Equals, nil)

	line := r.WriteSAM(nil)
	c.Check(strings.Contains(line, "RG:i:15"), check.Equals, true)
}

// TestWriteSAMByteArrayTag distinguishes a B-type array of unsigned bytes
// (sub-type 'C'), which must render comma-separated like every other B
// sub-type, from an H-type hex byte string: both decode to a Go []byte/
// []uint8, so the renderer must key off the wire type, not the decoded
// value's Go type.
func (s *S) TestWriteSAMByteArrayTag(c *check.C) {
	r, err := NewRecord("readname", "ACGT", nil, nil)
	c.Assert(err, check.Equals, nil)
	c.Assert(r.SetArray(Tag{'X', '1'}, 'C', []uint8{1, 2, 3}), check.Equals, nil)
	c.Assert(r.Set(Tag{'X', '2'}, 'H', []byte{1, 2, 3}), check.Equals, nil)

	line := r.WriteSAM(nil)
	c.Check(strings.Contains(line, "X1:B:C,1,2,3") || strings.Contains(line, "X1:B:1,2,3"), check.Equals, true)
	c.Check(strings.Contains(line, "X2:H:010203"), check.Equals, true)
}
