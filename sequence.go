// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

// seqNt16Str is the canonical 4-bit nucleotide code table (htslib's
// seq_nt16_str): code i decodes to seqNt16Str[i].
const seqNt16Str = "=ACMGRSVTWYHKDBN"

var seqNt16Table [256]byte

func init() {
	for i := range seqNt16Table {
		seqNt16Table[i] = 15 // N
	}
	for code, c := range []byte(seqNt16Str) {
		seqNt16Table[c] = byte(code)
		seqNt16Table[toLower(c)] = byte(code)
	}
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// packSequence 4-bit packs the bases of seq (upper or lower case IUPAC
// codes) into dst, high nibble first, per spec §3. dst must be
// (len(seq)+1)/2 bytes long.
func packSequence(dst []byte, seq string) {
	for i := 0; i < len(seq); i++ {
		code := seqNt16Table[seq[i]]
		if i%2 == 0 {
			dst[i/2] = code << 4
		} else {
			dst[i/2] |= code
		}
	}
}

// Sequence is a random-access view over a record's packed 4-bit
// nucleotide bases. The zero value is not usable; obtain a Sequence via
// Record.Sequence.
//
// first is the parity bit from spec §4.3's slicing algorithm (high nibble
// of data[0] vs low), carried as a nibble offset rather than a boolean so
// that Slice can re-base data on every cut instead of branching on parity
// in At: first is always 0 for a view obtained directly from a Record,
// and becomes 1 only for a sub-view whose origin falls on an odd base
// offset.
type Sequence struct {
	data   []byte
	first  int
	length int
}

// Len returns the number of bases in the view.
func (s Sequence) Len() int { return s.length }

// At returns the base at position i as an upper-case IUPAC code byte.
func (s Sequence) At(i int) byte {
	if i < 0 || i >= s.length {
		panic("bamrecord: sequence index out of range")
	}
	n := s.first + i
	b := s.data[n/2]
	var code byte
	if n%2 == 0 {
		code = b >> 4
	} else {
		code = b & 0xf
	}
	return seqNt16Str[code]
}

// Slice returns the sub-sequence [from, to). The returned Sequence
// aliases s's backing array; unlike Record.Cigar, base-level access
// through At does not require byte alignment, since Slice carries
// forward the nibble offset (first) rather than rounding to a byte
// boundary. This lets a caller slice at an odd base offset (spec §4.3)
// without a copy.
func (s Sequence) Slice(from, to int) Sequence {
	if from < 0 || to > s.length || from > to {
		panic("bamrecord: sequence slice out of range")
	}
	n := s.first + from
	return Sequence{
		data:   s.data[n/2:],
		first:  n % 2,
		length: to - from,
	}
}

// String returns the upper-case IUPAC representation of the sequence, or
// "*" if it is empty (spec §4.8, matching SAM convention).
func (s Sequence) String() string {
	if s.length == 0 {
		return "*"
	}
	b := make([]byte, s.length)
	for i := range b {
		b[i] = s.At(i)
	}
	return string(b)
}
