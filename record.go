// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package bamrecord provides the in-memory representation and mutation
// semantics of a single BAM alignment record: a contiguous byte buffer
// holding fixed-width header fields, a variable-length name, a packed
// CIGAR operation array, a 4-bit-packed nucleotide sequence, a per-base
// quality array, and a typed auxiliary tag dictionary.
//
// A Record may wrap a buffer handed to it by a bulk reader (borrowed,
// shared, read-only until first mutation) or own a buffer it allocated
// itself (see NewRecord). The first mutating call on a borrowed Record
// duplicates its buffer; see Record.ensureOwned.
package bamrecord

import "encoding/binary"

// Fixed-header byte offsets, per spec §3.
const (
	offRefID     = 0
	offPos       = 4
	offBinMqNl   = 8
	offFlagNc    = 12
	offLSeq      = 16
	offNextRefID = 20
	offNextPos   = 24
	offTLen      = 28
	offName      = 32

	fixedHeaderSize = offName
)

// Record is a single BAM alignment record backed by one contiguous byte
// buffer in the layout described by spec §3.
type Record struct {
	buf []byte
}

// Wrap returns a Record viewing buf, which must hold the fixed header,
// name, CIGAR, sequence, quality and tag regions exactly as read off the
// wire (little-endian). The Record borrows buf: reads are zero-copy, and
// the first call to a mutating method duplicates buf into a private,
// owned copy (see Record.ensureOwned). The caller must not modify buf
// after Wrap returns successfully.
func Wrap(buf []byte) (*Record, error) {
	if len(buf) < fixedHeaderSize+2 {
		return nil, ErrTruncated
	}
	// l_read_name and n_cigar_op are read directly off the wire bytes,
	// ahead of byteSwapHeaderAndCigar, since each is stored as the
	// low-order byte(s) of its containing little-endian word and so sits
	// at a fixed physical offset regardless of host byte order.
	nameLen := int(buf[offBinMqNl])
	if nameLen < 1 {
		return nil, ErrBadLength
	}
	nCigar := int(binary.LittleEndian.Uint16(buf[offFlagNc:]))
	if fixedHeaderSize+nameLen+4*nCigar > len(buf) {
		return nil, ErrTruncated
	}

	byteSwapHeaderAndCigar(buf, nCigar, true)

	r := &Record{buf: buf}
	if r.nameLen() != nameLen {
		return nil, ErrTruncated
	}
	tagStart := r.tagOffset()
	if tagStart > len(buf) {
		return nil, ErrTruncated
	}
	byteSwapTagValues(buf, tagStart, len(buf), true)
	r.buf[r.borrowedFlagOffset()] = 1
	return r, nil
}

// NewRecord allocates a fresh, owned Record from its name, sequence,
// CIGAR and (optionally) pre-built tag bytes. Other fields default to
// their unset/unmapped values (ref ID -1, position -1, mapping quality
// 0, flags 0) and can be set afterwards.
func NewRecord(name string, sequence string, cigar Cigar, tagBytes []byte) (*Record, error) {
	if len(name) < 1 || len(name) > 254 {
		return nil, ErrBadLength
	}
	for _, co := range cigar {
		if co.Len() > MaxCigarOpLength {
			return nil, ErrBadLength
		}
	}
	if len(cigar) > 0xffff {
		return nil, ErrBadLength
	}

	nameLen := len(name) + 1
	seqLen := len(sequence)
	size := fixedHeaderSize + nameLen + 4*len(cigar) + (seqLen+1)/2 + seqLen + len(tagBytes)
	buf := make([]byte, size)

	r := &Record{buf: buf}
	unset := int32(-1)
	hostOrder().PutUint32(buf[offRefID:], uint32(unset))
	hostOrder().PutUint32(buf[offPos:], uint32(unset))
	hostOrder().PutUint32(buf[offNextRefID:], uint32(unset))
	hostOrder().PutUint32(buf[offNextPos:], uint32(unset))
	r.putBinMqNl(0, 0, uint8(nameLen))
	r.putFlagNc(0, uint16(len(cigar)))
	hostOrder().PutUint32(buf[offLSeq:], uint32(seqLen))

	copy(buf[offName:], name)
	buf[offName+len(name)] = 0

	cigarStart := offName + nameLen
	for i, co := range cigar {
		hostOrder().PutUint32(buf[cigarStart+4*i:], uint32(co))
	}

	seqStart := cigarStart + 4*len(cigar)
	packSequence(buf[seqStart:seqStart+(seqLen+1)/2], sequence)

	qualStart := seqStart + (seqLen+1)/2
	for i := qualStart; i < qualStart+seqLen; i++ {
		buf[i] = 0xff
	}

	copy(buf[qualStart+seqLen:], tagBytes)

	r.recalculateBin()
	return r, nil
}

// --- packed-field offsets, derived from the fixed header (spec §3, §9) ---

func (r *Record) nameLen() int {
	return int(uint8(hostOrder().Uint32(r.buf[offBinMqNl:]) & 0xff))
}

func (r *Record) cigarOpCount() int {
	return int(uint16(hostOrder().Uint32(r.buf[offFlagNc:]) & 0xffff))
}

func (r *Record) sequenceLength() int32 {
	return int32(hostOrder().Uint32(r.buf[offLSeq:]))
}

func (r *Record) cigarOffset() int { return offName + r.nameLen() }
func (r *Record) seqOffset() int   { return r.cigarOffset() + 4*r.cigarOpCount() }
func (r *Record) qualOffset() int  { return r.seqOffset() + int(r.sequenceLength()+1)/2 }
func (r *Record) tagOffset() int   { return r.qualOffset() + int(r.sequenceLength()) }

// borrowedFlagOffset is the name's NUL terminator byte, one before the
// CIGAR region; see §4.6.
func (r *Record) borrowedFlagOffset() int { return r.cigarOffset() - 1 }

func (r *Record) binMqNl() uint32 { return hostOrder().Uint32(r.buf[offBinMqNl:]) }
func (r *Record) flagNc() uint32  { return hostOrder().Uint32(r.buf[offFlagNc:]) }

func (r *Record) putBinMqNl(bin uint16, mapQ, nameLen uint8) {
	hostOrder().PutUint32(r.buf[offBinMqNl:], uint32(bin)<<16|uint32(mapQ)<<8|uint32(nameLen))
}

func (r *Record) putFlagNc(flags Flags, nCigar uint16) {
	hostOrder().PutUint32(r.buf[offFlagNc:], uint32(flags)<<16|uint32(nCigar))
}

// --- read accessors (spec §4.1) ---

// RefID returns the reference sequence ID, or -1 if unmapped.
func (r *Record) RefID() int32 { return int32(hostOrder().Uint32(r.buf[offRefID:])) }

// Position returns the 0-based leftmost mapping position, or -1 if unset.
func (r *Record) Position() int32 { return int32(hostOrder().Uint32(r.buf[offPos:])) }

// Bin returns the BAM index bin, maintained by recalculateBin.
func (r *Record) Bin() uint16 { return uint16(r.binMqNl() >> 16) }

// MappingQuality returns the mapping quality.
func (r *Record) MappingQuality() uint8 { return uint8((r.binMqNl() >> 8) & 0xff) }

// Flags returns the alignment flags.
func (r *Record) Flags() Flags { return Flags(r.flagNc() >> 16) }

// IsUnmapped reports whether the record's Unmapped flag is set.
func (r *Record) IsUnmapped() bool { return r.Flags().IsUnmapped() }

// SequenceLength returns the number of bases in the record's sequence.
func (r *Record) SequenceLength() int32 { return r.sequenceLength() }

// MateRefID returns the mate's reference sequence ID, or -1 if unset.
func (r *Record) MateRefID() int32 { return int32(hostOrder().Uint32(r.buf[offNextRefID:])) }

// MatePosition returns the mate's 0-based leftmost mapping position, or -1
// if unset.
func (r *Record) MatePosition() int32 { return int32(hostOrder().Uint32(r.buf[offNextPos:])) }

// TemplateLength returns the inferred template (insert) size.
func (r *Record) TemplateLength() int32 { return int32(hostOrder().Uint32(r.buf[offTLen:])) }

// Name returns the read name, excluding its terminating NUL.
func (r *Record) Name() string {
	n := r.nameLen()
	return string(r.buf[offName : offName+n-1])
}

// cigarWords reinterprets the buffer's CIGAR byte range as a []CigarOp in
// place (no copy), matching spec §4.1's "borrowed slice reinterpreted
// over the 32-bit operation words". This is safe once the buffer holds the
// CIGAR words in host-native order (Wrap converts them with
// byteSwapHeaderAndCigar; NewRecord writes them that way). When
// nativeLittleEndian has been overridden so that hostOrder differs from the
// machine's own byte order, the words are decoded into a fresh slice
// instead.
func (r *Record) cigarWords() []CigarOp {
	n := r.cigarOpCount()
	if n == 0 {
		return nil
	}
	start := r.cigarOffset()
	b := r.buf[start : start+4*n]
	if machineLE := bytesToCigarOps([]byte{1, 0, 0, 0})[0] == 1; machineLE != nativeLittleEndian {
		ops := make([]CigarOp, n)
		for i := range ops {
			ops[i] = CigarOp(hostOrder().Uint32(b[4*i:]))
		}
		return ops
	}
	return bytesToCigarOps(b)
}

// Cigar returns the record's CIGAR operations. The returned slice aliases
// the record's buffer (except in the overridden byte-order case described
// at cigarWords, where it is a copy); it must not be retained across a structural
// mutation (SetCigar, SetSequence) or used after the Record is mutated.
func (r *Record) Cigar() Cigar { return Cigar(r.cigarWords()) }

// RawSequenceBytes returns the raw 4-bit-packed nucleotide bytes. Use
// Sequence for a random-access view over individual bases.
func (r *Record) RawSequenceBytes() []byte {
	start := r.seqOffset()
	return r.buf[start:r.qualOffset()]
}

// BaseQualities returns the per-base Phred quality scores; 0xff marks an
// unknown quality. The returned slice has length SequenceLength() and
// aliases the record's buffer.
func (r *Record) BaseQualities() []byte {
	start := r.qualOffset()
	return r.buf[start : start+int(r.sequenceLength())]
}

// Sequence returns a random-access view over the record's packed
// nucleotides; see sequence.go.
func (r *Record) Sequence() Sequence {
	return Sequence{
		data:   r.RawSequenceBytes(),
		first:  0,
		length: int(r.sequenceLength()),
	}
}

// BasesCovered returns the number of reference bases the record's CIGAR
// consumes, or 0 if the record is unmapped, regardless of its CIGAR
// (spec §3, §4.2).
func (r *Record) BasesCovered() int {
	if r.IsUnmapped() {
		return 0
	}
	return r.Cigar().referenceLength()
}

// --- write accessors (spec §4.1) ---

// SetRefID sets the reference sequence ID.
func (r *Record) SetRefID(id int32) {
	r.ensureOwned()
	hostOrder().PutUint32(r.buf[offRefID:], uint32(id))
}

// SetPosition sets the 0-based leftmost mapping position and recalculates
// Bin (spec §3).
func (r *Record) SetPosition(pos int32) {
	r.ensureOwned()
	hostOrder().PutUint32(r.buf[offPos:], uint32(pos))
	r.recalculateBin()
}

// SetMappingQuality sets the mapping quality.
func (r *Record) SetMappingQuality(q uint8) {
	r.ensureOwned()
	r.putBinMqNl(r.Bin(), q, uint8(r.nameLen()))
}

// SetFlags sets the alignment flags. Note (spec §9, open question): Bin is
// not recalculated here even though flipping the Unmapped bit changes
// BasesCovered; Bin can go stale relative to a fresh recalculation until
// Position or Cigar is next set.
func (r *Record) SetFlags(f Flags) {
	r.ensureOwned()
	r.putFlagNc(f, uint16(r.cigarOpCount()))
}

// SetMateRefID sets the mate's reference sequence ID.
func (r *Record) SetMateRefID(id int32) {
	r.ensureOwned()
	hostOrder().PutUint32(r.buf[offNextRefID:], uint32(id))
}

// SetMatePosition sets the mate's 0-based leftmost mapping position.
func (r *Record) SetMatePosition(pos int32) {
	r.ensureOwned()
	hostOrder().PutUint32(r.buf[offNextPos:], uint32(pos))
}

// SetTemplateLength sets the inferred template (insert) size.
func (r *Record) SetTemplateLength(tlen int32) {
	r.ensureOwned()
	hostOrder().PutUint32(r.buf[offTLen:], uint32(tlen))
}

// SetName replaces the read name, resizing the name region and updating
// l_read_name. Every offset past the name depends on l_read_name, so this
// goes through the same splice primitive SetCigar and SetSequence use for
// their own variable-width regions.
func (r *Record) SetName(name string) error {
	if len(name) < 1 || len(name) > 254 {
		return ErrBadLength
	}
	r.ensureOwned()
	oldLen := r.nameLen()
	newLen := len(name) + 1
	r.spliceRegion(offName, oldLen, newLen)
	copy(r.buf[offName:offName+len(name)], name)
	r.buf[offName+len(name)] = 0
	r.putBinMqNl(r.Bin(), r.MappingQuality(), uint8(newLen))
	return nil
}

// recalculateBin sets Bin to reg2bin(Position, Position+BasesCovered()),
// per spec §3's bin invariant, or to 0 when Position is negative or the
// record is unmapped.
func (r *Record) recalculateBin() {
	pos := r.Position()
	if pos < 0 || r.IsUnmapped() {
		r.putBinMqNl(0, r.MappingQuality(), uint8(r.nameLen()))
		return
	}
	end := pos + int32(r.BasesCovered())
	r.putBinMqNl(reg2bin(pos, end), r.MappingQuality(), uint8(r.nameLen()))
}

// Clone returns an owned, independent copy of r; mutating the clone never
// affects r or any other Record sharing r's original buffer.
func (r *Record) Clone() *Record {
	buf := make([]byte, len(r.buf))
	copy(buf, r.buf)
	buf[r.borrowedFlagOffset()] = 0
	return &Record{buf: buf}
}

// Equal reports whether r and other encode byte-for-byte identical
// records, excluding each record's borrowed-flag byte (spec §4.6).
func (r *Record) Equal(other *Record) bool {
	if len(r.buf) != len(other.buf) {
		return false
	}
	ri, oi := r.borrowedFlagOffset(), other.borrowedFlagOffset()
	for i := range r.buf {
		if i == ri || i == oi {
			continue
		}
		if r.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}
