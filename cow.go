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

// ensureOwned duplicates r's buffer if it is currently borrowed, so that
// subsequent in-place writes never clobber a buffer some other owner (a
// bulk reader, another Record sharing the same backing array) still
// holds a reference to. It is a no-op on an already-owned Record.
//
// Borrowed status is recorded in the byte that the name's NUL terminator
// would otherwise hold (borrowedFlagOffset): Wrap sets it non-zero, Clone
// and NewRecord leave it zero.
func (r *Record) ensureOwned() {
	if r.buf[r.borrowedFlagOffset()] == 0 {
		return
	}
	buf := make([]byte, len(r.buf))
	copy(buf, r.buf)
	buf[r.borrowedFlagOffset()] = 0
	r.buf = buf
}

// spliceRegion replaces the oldWidth bytes at buf[pos:pos+oldWidth] with a
// newWidth-byte gap (zero-filled), shifting every following byte left or
// right as required. Callers are responsible for populating the new gap
// and for calling ensureOwned first. When the widths differ, spliceRegion
// reassigns r.buf to a freshly allocated slice and never mutates the old
// one; when they are equal it returns at once, leaving r.buf and the
// region's existing bytes as they are.
func (r *Record) spliceRegion(pos, oldWidth, newWidth int) {
	if oldWidth == newWidth {
		return
	}
	old := r.buf
	buf := make([]byte, len(old)+newWidth-oldWidth)
	copy(buf, old[:pos])
	copy(buf[pos+newWidth:], old[pos+oldWidth:])
	r.buf = buf
}
