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

package bamrecord

import (
	"encoding/binary"
	"reflect"
	"unsafe"
)

// hostOrder is the byte order Record field accessors use once a buffer
// has been normalized by Wrap or produced by NewRecord: little-endian on
// a little-endian host (the overwhelming common case, where no
// conversion ever happens), big-endian on a big-endian host, matching
// whatever byteSwapHeaderAndCigar last converted the buffer to. It reads
// nativeLittleEndian fresh on every call, rather than caching the result
// in a package-level binary.ByteOrder, so that tests can flip
// nativeLittleEndian and immediately exercise the big-endian path.
func hostOrder() binary.ByteOrder {
	if nativeLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// tagArrayElemWidth returns the byte width of one element of a B-type tag
// array whose sub-type byte is sub, or 0 if sub is not a recognised
// numeric sub-type (spec §4.7).
func tagArrayElemWidth(sub byte) int {
	switch sub {
	case 'c', 'C':
		return 1
	case 's', 'S':
		return 2
	case 'i', 'I', 'f':
		return 4
	default:
		return 0
	}
}

// bytesToCigarOps reinterprets b, a slice of 4*n bytes already in
// host-native byte order, as a []CigarOp of length n without copying,
// following the same unsafe.Pointer slice-header reinterpretation idiom
// the teacher used for its packed-base accessor (br.seq = *(*[]nybblePair)
// (unsafe.Pointer(&seq))), adjusted here for CigarOp's wider element size.
func bytesToCigarOps(b []byte) []CigarOp {
	if len(b) == 0 {
		return nil
	}
	var ops []CigarOp
	bh := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	oh := (*reflect.SliceHeader)(unsafe.Pointer(&ops))
	oh.Data = bh.Data
	oh.Len = bh.Len / 4
	oh.Cap = bh.Cap / 4
	return ops
}

// The wire format is little-endian (spec §3). Record.Cigar() hands callers
// a []CigarOp reinterpreted in place over the buffer's CIGAR bytes via
// unsafe.Pointer (see cigarWords), rather than decoding each operation
// individually the way the old bamRecord.readFrom in this package's
// teacher did with binary.Read. That reinterpretation is only correct
// when the buffer holds the fixed header and CIGAR words in host-native
// byte order. nativeLittleEndian records whether that already holds
// without help; byteSwapHeaderAndCigar and byteSwapTagValues perform the
// one-time conversion when it does not.
//
// nativeLittleEndian is a var, not a const, so tests can force the
// big-endian code path on this (little-endian) machine.
var nativeLittleEndian = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

func reverse4(b []byte) { b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0] }
func reverse2(b []byte) { b[0], b[1] = b[1], b[0] }

// byteSwapHeaderAndCigar reverses the byte order of the eight fixed 32-bit
// header fields and each of the nCigar CIGAR op words, converting the
// buffer between wire little-endian and host-native order.
//
// toNative is true going from wire order to host order (on Wrap) and
// false going back before a wire write (see Record.WriteTo). The
// name-length byte that locates the start of the CIGAR words is read
// before either field is reversed, from whichever physical byte position
// it occupies in the buffer's CURRENT layout: the low-order byte of the
// little-endian word (offset+0) on the way in, the low-order byte of the
// reversed (big-endian) word (offset+3) on the way back out.
func byteSwapHeaderAndCigar(buf []byte, nCigar int, toNative bool) {
	if nativeLittleEndian {
		return
	}
	var nameLen int
	if toNative {
		nameLen = int(buf[offBinMqNl])
	} else {
		nameLen = int(buf[offBinMqNl+3])
	}
	for off := 0; off < fixedHeaderSize; off += 4 {
		reverse4(buf[off : off+4])
	}
	base := fixedHeaderSize + nameLen
	for i := 0; i < nCigar; i++ {
		reverse4(buf[base+4*i : base+4*i+4])
	}
}

// byteSwapTagValues reverses the byte order of every numeric tag payload
// (scalar values, and each element of a B array) in the tag region
// buf[start:end]. Text fields (Z, H) and byte arrays (B with sub-type c or
// C) are untouched, matching spec §4.7.
//
// toNative selects how the B array element count is read before it is
// itself byte-swapped: true (wire-to-host, on Wrap) reads it as wire
// little-endian; false (host-to-wire, before a wire write) reads it as
// already-native-order, since a prior call already swapped it in.
func byteSwapTagValues(buf []byte, start, end int, toNative bool) {
	if nativeLittleEndian {
		return
	}
	i := start
	for i+2 < end {
		t := buf[i+2]
		payload := i + 3
		switch t {
		case 'A', 'c', 'C':
			i = payload + 1
		case 's', 'S':
			reverse2(buf[payload : payload+2])
			i = payload + 2
		case 'i', 'I', 'f':
			reverse4(buf[payload : payload+4])
			i = payload + 4
		case 'Z', 'H':
			j := payload
			for j < end && buf[j] != 0 {
				j++
			}
			i = j + 1
		case 'B':
			sub := buf[payload]
			lenBytes := buf[payload+1 : payload+5]
			var n int32
			if toNative {
				for k := 0; k < 4; k++ {
					n |= int32(lenBytes[k]) << (8 * k)
				}
			} else {
				for k := 0; k < 4; k++ {
					n |= int32(lenBytes[k]) << (8 * (3 - k))
				}
			}
			reverse4(lenBytes)
			elems := payload + 5
			width := tagArrayElemWidth(sub)
			for e := 0; e < int(n); e++ {
				off := elems + e*width
				switch width {
				case 2:
					reverse2(buf[off : off+2])
				case 4:
					reverse4(buf[off : off+4])
				}
			}
			i = elems + int(n)*width
		default:
			return
		}
	}
}
