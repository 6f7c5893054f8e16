// Copyright ©2013 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

import (
	"io/ioutil"
	"os"

	"github.com/kortschak/utter"
	"golang.org/x/exp/mmap"
	check "gopkg.in/check.v1"
)

// writeFixture writes buf to a temporary file and returns its path; the
// caller is responsible for removing it.
func writeFixture(c *check.C, buf []byte) string {
	f, err := ioutil.TempFile("", "bamrecord-fixture-")
	c.Assert(err, check.Equals, nil)
	defer f.Close()
	_, err = f.Write(buf)
	c.Assert(err, check.Equals, nil)
	return f.Name()
}

// TestMmapGoldenRecord exercises the wire round-trip invariant (spec §8,
// invariant 6) against a record buffer read through a read-only mmapped
// file, the same access pattern this package's teacher used for its
// indexed reference sequence files (fai.File).
func (s *S) TestMmapGoldenRecord(c *check.C) {
	cigar, _ := ParseCigarString("8M1I2M")
	orig, err := NewRecord("golden-read", "ACGTACGTAC", cigar, nil)
	c.Assert(err, check.Equals, nil)
	c.Assert(orig.Set(Tag{'N', 'M'}, 'C', uint8(1)), check.Equals, nil)
	orig.SetRefID(1)
	orig.SetPosition(500)

	w := &fakeWriter{}
	c.Assert(orig.WriteTo(w), check.Equals, nil)
	wireBuf := w.out[4:]

	path := writeFixture(c, wireBuf)
	defer os.Remove(path)

	ra, err := mmap.Open(path)
	c.Assert(err, check.Equals, nil)
	defer ra.Close()

	got := make([]byte, ra.Len())
	_, err = ra.ReadAt(got, 0)
	c.Assert(err, check.Equals, nil)

	mapped, err := Wrap(got)
	c.Assert(err, check.Equals, nil)

	if !mapped.Equal(orig) {
		c.Log(utter.Sdump(mapped))
		c.Log(utter.Sdump(orig))
		c.Fatal("mmapped record does not match original")
	}
	c.Check(mapped.Name(), check.Equals, "golden-read")
	c.Check(mapped.Cigar().String(), check.Equals, "8M1I2M")
}
