// Copyright ©2012 The bíogo.bam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bamrecord

// SetCigar replaces the record's CIGAR operations, resizing the CIGAR
// region in place and recalculating Bin (spec §4.4). The sequence,
// quality and tag regions are shifted but not otherwise altered.
func (r *Record) SetCigar(cigar Cigar) error {
	if len(cigar) > 0xffff {
		return ErrBadLength
	}
	for _, co := range cigar {
		if co.Len() > MaxCigarOpLength {
			return ErrBadLength
		}
	}
	r.ensureOwned()
	start := r.cigarOffset()
	oldWidth := 4 * r.cigarOpCount()
	newWidth := 4 * len(cigar)
	r.spliceRegion(start, oldWidth, newWidth)
	for i, co := range cigar {
		hostOrder().PutUint32(r.buf[start+4*i:], uint32(co))
	}
	r.putFlagNc(r.Flags(), uint16(len(cigar)))
	r.recalculateBin()
	return nil
}

// SetSequence replaces the record's sequence, repacking the 4-bit base
// codes and resetting every base quality to 0xff (unknown), per spec
// §4.4. The CIGAR and tag regions are unaffected; only the sequence and
// quality regions are resized.
func (r *Record) SetSequence(sequence string) error {
	r.ensureOwned()
	oldSeqLen := int(r.sequenceLength())
	newSeqLen := len(sequence)

	seqStart := r.seqOffset()
	oldRegion := (oldSeqLen+1)/2 + oldSeqLen
	newRegion := (newSeqLen+1)/2 + newSeqLen
	r.spliceRegion(seqStart, oldRegion, newRegion)

	hostOrder().PutUint32(r.buf[offLSeq:], uint32(newSeqLen))

	packedLen := (newSeqLen + 1) / 2
	packSequence(r.buf[seqStart:seqStart+packedLen], sequence)

	qualStart := seqStart + packedLen
	for i := qualStart; i < qualStart+newSeqLen; i++ {
		r.buf[i] = 0xff
	}
	return nil
}
