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
	"encoding/hex"
	"fmt"
	"math"
)

// Tag is a two-byte auxiliary tag key, e.g. "NM" or "MD".
type Tag [2]byte

// String returns the tag's two-character representation.
func (t Tag) String() string { return string(t[:]) }

// ParseTag validates key, the textual form of a tag (e.g. "NM" or "MD" as
// read from SAM text or user input), and returns it as a Tag. key must be
// exactly two bytes.
func ParseTag(key string) (Tag, error) {
	if len(key) != 2 {
		return Tag{}, ErrBadKey
	}
	return Tag{key[0], key[1]}, nil
}

// fixedJumps gives the fixed payload width, in bytes, of a tag whose wire
// type is the array index, not counting the 3-byte key+type header. A
// zero entry means the type has a variable-width payload (Z, H, B) and
// must be scanned. Adapted from this package's teacher's jumps table
// (auxtags.go).
var fixedJumps = [256]int{
	'A': 1,
	'c': 1, 'C': 1,
	's': 2, 'S': 2,
	'i': 4, 'I': 4,
	'f': 4,
}

// entryWidth returns the total byte width, including the 3-byte
// key+type header, of the tag entry starting at buf[i].
func entryWidth(buf []byte, i int) (int, error) {
	if i+3 > len(buf) {
		return 0, ErrTruncated
	}
	t := buf[i+2]
	if j := fixedJumps[t]; j > 0 {
		if i+3+j > len(buf) {
			return 0, ErrTruncated
		}
		return 3 + j, nil
	}
	switch t {
	case 'Z', 'H':
		j := i + 3
		for j < len(buf) && buf[j] != 0 {
			j++
		}
		if j >= len(buf) {
			return 0, ErrTruncated
		}
		return j + 1 - i, nil
	case 'B':
		if i+8 > len(buf) {
			return 0, ErrTruncated
		}
		sub := buf[i+3]
		width := tagArrayElemWidth(sub)
		if width == 0 {
			return 0, ErrUnknownTagType
		}
		n := int(hostOrder().Uint32(buf[i+4:]))
		if i+8+n*width > len(buf) {
			return 0, ErrTruncated
		}
		return 8 + n*width, nil
	default:
		return 0, ErrUnknownTagType
	}
}

// findTag returns the byte range [start, end) of tag's entry within r's
// tag region, including its 3-byte header.
func (r *Record) findTag(tag Tag) (start, end int, found bool) {
	buf := r.buf
	i := r.tagOffset()
	for i+3 <= len(buf) {
		w, err := entryWidth(buf, i)
		if err != nil {
			return 0, 0, false
		}
		if buf[i] == tag[0] && buf[i+1] == tag[1] {
			return i, i + w, true
		}
		i += w
	}
	return 0, 0, false
}

// Tags returns the keys of every auxiliary tag present, in storage order.
func (r *Record) Tags() []Tag {
	var tags []Tag
	buf := r.buf
	i := r.tagOffset()
	for i+3 <= len(buf) {
		w, err := entryWidth(buf, i)
		if err != nil {
			break
		}
		tags = append(tags, Tag{buf[i], buf[i+1]})
		i += w
	}
	return tags
}

// Count returns the number of auxiliary tags present.
func (r *Record) Count() int { return len(r.Tags()) }

// Type returns the wire type byte of tag's value ('A', 'c', 'C', 's',
// 'S', 'i', 'I', 'f', 'Z', 'H' or 'B'), and whether tag is present.
func (r *Record) Type(tag Tag) (byte, bool) {
	start, _, ok := r.findTag(tag)
	if !ok {
		return 0, false
	}
	return r.buf[start+2], true
}

// Get returns the decoded value of tag and whether it was present. The
// concrete type of value follows the teacher's Aux.Value(): int8/uint8,
// int16/uint16, int32/uint32, float32, string, []byte, or a typed numeric
// slice for a B array.
func (r *Record) Get(tag Tag) (value interface{}, ok bool) {
	start, end, found := r.findTag(tag)
	if !found {
		return nil, false
	}
	buf := r.buf
	t := buf[start+2]
	payload := buf[start+3 : end]
	switch t {
	case 'A':
		return payload[0], true
	case 'c':
		return int8(payload[0]), true
	case 'C':
		return uint8(payload[0]), true
	case 's':
		return int16(hostOrder().Uint16(payload)), true
	case 'S':
		return hostOrder().Uint16(payload), true
	case 'i':
		return int32(hostOrder().Uint32(payload)), true
	case 'I':
		return hostOrder().Uint32(payload), true
	case 'f':
		return math.Float32frombits(hostOrder().Uint32(payload)), true
	case 'Z':
		return string(payload[:len(payload)-1]), true
	case 'H':
		payload = payload[:len(payload)-1]
		h := make([]byte, hex.DecodedLen(len(payload)))
		if _, err := hex.Decode(h, payload); err != nil {
			return nil, false
		}
		return h, true
	case 'B':
		return decodeTagArray(payload), true
	default:
		return nil, false
	}
}

// GetInt returns tag's value widened to int64, for any integer-typed tag.
func (r *Record) GetInt(tag Tag) (int64, bool) {
	v, ok := r.Get(tag)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int8:
		return int64(n), true
	case uint8:
		return int64(n), true
	case int16:
		return int64(n), true
	case uint16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

// GetFloat returns tag's value widened to float64, for a float-typed tag.
func (r *Record) GetFloat(tag Tag) (float64, bool) {
	v, ok := r.Get(tag)
	if f, isFloat := v.(float32); ok && isFloat {
		return float64(f), true
	}
	return 0, false
}

// GetString returns tag's value, for a Z-typed (text) tag.
func (r *Record) GetString(tag Tag) (string, bool) {
	v, ok := r.Get(tag)
	if s, isStr := v.(string); ok && isStr {
		return s, true
	}
	return "", false
}

// GetBytes returns tag's value, for an H-typed (hex byte array) tag.
func (r *Record) GetBytes(tag Tag) ([]byte, bool) {
	v, ok := r.Get(tag)
	if b, isBytes := v.([]byte); ok && isBytes {
		return b, true
	}
	return nil, false
}

// decodeTagArray decodes a B-type tag's payload (sub-type byte, 4-byte
// element count, then the packed elements) into a typed numeric slice.
func decodeTagArray(payload []byte) interface{} {
	sub := payload[0]
	n := int(hostOrder().Uint32(payload[1:]))
	elems := payload[5:]
	switch sub {
	case 'c':
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(elems[i])
		}
		return out
	case 'C':
		out := make([]uint8, n)
		copy(out, elems[:n])
		return out
	case 's':
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(hostOrder().Uint16(elems[2*i:]))
		}
		return out
	case 'S':
		out := make([]uint16, n)
		for i := range out {
			out[i] = hostOrder().Uint16(elems[2*i:])
		}
		return out
	case 'i':
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(hostOrder().Uint32(elems[4*i:]))
		}
		return out
	case 'I':
		out := make([]uint32, n)
		for i := range out {
			out[i] = hostOrder().Uint32(elems[4*i:])
		}
		return out
	case 'f':
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(hostOrder().Uint32(elems[4*i:]))
		}
		return out
	default:
		return nil
	}
}

// Set stores value under tag, encoded per typeByte (one of A, c, C, s, S,
// i, I, f, Z, H), replacing any existing entry for tag. A nil value
// removes tag's entry, if present, whatever typeByte is. Set does not
// support the B array type; use SetArray.
func (r *Record) Set(tag Tag, typeByte byte, value interface{}) error {
	if value == nil {
		r.Remove(tag)
		return nil
	}
	payload, err := encodeScalar(typeByte, value)
	if err != nil {
		return err
	}
	return r.putEntry(tag, typeByte, payload)
}

// SetArray stores a B-type tag array under tag, with element sub-type
// subType (one of c, C, s, S, i, I, f).
func (r *Record) SetArray(tag Tag, subType byte, value interface{}) error {
	payload, err := encodeTagArray(subType, value)
	if err != nil {
		return err
	}
	return r.putEntry(tag, 'B', payload)
}

func (r *Record) putEntry(tag Tag, typeByte byte, payload []byte) error {
	r.ensureOwned()
	newEntry := make([]byte, 3+len(payload))
	newEntry[0], newEntry[1], newEntry[2] = tag[0], tag[1], typeByte
	copy(newEntry[3:], payload)

	start, end, found := r.findTag(tag)
	if found {
		r.spliceRegion(start, end-start, len(newEntry))
		copy(r.buf[start:start+len(newEntry)], newEntry)
		return nil
	}
	end = len(r.buf)
	r.spliceRegion(end, 0, len(newEntry))
	copy(r.buf[end:end+len(newEntry)], newEntry)
	return nil
}

// Remove deletes tag's entry, reporting whether it was present.
func (r *Record) Remove(tag Tag) bool {
	start, end, found := r.findTag(tag)
	if !found {
		return false
	}
	r.ensureOwned()
	// findTag's offsets were computed before ensureOwned may have
	// reallocated the buffer; the offsets themselves are unaffected
	// since ensureOwned preserves layout, only the owner.
	r.spliceRegion(start, end-start, 0)
	return true
}

// Clear removes all auxiliary tags.
func (r *Record) Clear() {
	r.ensureOwned()
	start := r.tagOffset()
	r.spliceRegion(start, len(r.buf)-start, 0)
}

func encodeScalar(typeByte byte, value interface{}) ([]byte, error) {
	switch typeByte {
	case 'A':
		b, ok := value.(byte)
		if !ok {
			return nil, ErrUnknownTagType
		}
		return []byte{b}, nil
	case 'c':
		v, ok := value.(int8)
		if !ok {
			return nil, ErrUnknownTagType
		}
		return []byte{byte(v)}, nil
	case 'C':
		v, ok := value.(uint8)
		if !ok {
			return nil, ErrUnknownTagType
		}
		return []byte{v}, nil
	case 's':
		v, ok := value.(int16)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, 2)
		hostOrder().PutUint16(b, uint16(v))
		return b, nil
	case 'S':
		v, ok := value.(uint16)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, 2)
		hostOrder().PutUint16(b, v)
		return b, nil
	case 'i':
		v, ok := value.(int32)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, 4)
		hostOrder().PutUint32(b, uint32(v))
		return b, nil
	case 'I':
		v, ok := value.(uint32)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, 4)
		hostOrder().PutUint32(b, v)
		return b, nil
	case 'f':
		v, ok := value.(float32)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, 4)
		hostOrder().PutUint32(b, math.Float32bits(v))
		return b, nil
	case 'Z':
		s, ok := value.(string)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, len(s)+1)
		copy(b, s)
		return b, nil
	case 'H':
		v, ok := value.([]byte)
		if !ok {
			return nil, ErrUnknownTagType
		}
		b := make([]byte, hex.EncodedLen(len(v))+1)
		hex.Encode(b, v)
		return b, nil
	default:
		return nil, fmt.Errorf("bamrecord: unsupported scalar tag type %q", typeByte)
	}
}

func encodeTagArray(subType byte, value interface{}) ([]byte, error) {
	width := tagArrayElemWidth(subType)
	if width == 0 && subType != 'c' && subType != 'C' {
		return nil, ErrUnknownTagType
	}
	var n int
	var elems []byte
	switch subType {
	case 'c':
		v, ok := value.([]int8)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, n)
		for i, x := range v {
			elems[i] = byte(x)
		}
	case 'C':
		v, ok := value.([]uint8)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, n)
		copy(elems, v)
	case 's':
		v, ok := value.([]int16)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, 2*n)
		for i, x := range v {
			hostOrder().PutUint16(elems[2*i:], uint16(x))
		}
	case 'S':
		v, ok := value.([]uint16)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, 2*n)
		for i, x := range v {
			hostOrder().PutUint16(elems[2*i:], x)
		}
	case 'i':
		v, ok := value.([]int32)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, 4*n)
		for i, x := range v {
			hostOrder().PutUint32(elems[4*i:], uint32(x))
		}
	case 'I':
		v, ok := value.([]uint32)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, 4*n)
		for i, x := range v {
			hostOrder().PutUint32(elems[4*i:], x)
		}
	case 'f':
		v, ok := value.([]float32)
		if !ok {
			return nil, ErrUnknownTagType
		}
		n = len(v)
		elems = make([]byte, 4*n)
		for i, x := range v {
			hostOrder().PutUint32(elems[4*i:], math.Float32bits(x))
		}
	default:
		return nil, ErrUnknownTagType
	}
	out := make([]byte, 5+len(elems))
	out[0] = subType
	hostOrder().PutUint32(out[1:], uint32(n))
	copy(out[5:], elems)
	return out, nil
}
