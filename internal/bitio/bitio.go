// Package bitio provides little-endian bit-level I/O for SpeedHQ bitstreams.
//
// SpeedHQ packs codes least-significant bit first: the first bit emitted
// into the stream becomes bit 0 of the first byte. The Writer accumulates
// bits into an in-memory buffer so that slice length fields can be patched
// in place once their byte extent is known.
package bitio

// Writer provides little-endian bit-level writing to an in-memory buffer.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf  []byte
	acc  uint64 // pending bits, oldest at bit 0
	cnt  uint   // number of valid bits in acc (0-7 between calls)
}

// NewWriter creates a new bit writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 4096)}
}

// WriteBits appends the low n bits of val to the stream, least-significant
// bit first. n must be at most 32.
func (w *Writer) WriteBits(val uint32, n uint) {
	w.acc |= uint64(val&(1<<n-1)) << w.cnt
	w.cnt += n
	for w.cnt >= 8 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc >>= 8
		w.cnt -= 8
	}
}

// FlushAligned pads the stream with zero bits up to the next byte boundary.
// It is a no-op when the stream is already aligned.
func (w *Writer) FlushAligned() {
	if w.cnt > 0 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc = 0
		w.cnt = 0
	}
}

// Len returns the number of whole bytes emitted so far. Bits still pending
// in the accumulator are not counted; call FlushAligned first when an exact
// byte offset is needed.
func (w *Writer) Len() int {
	return len(w.buf)
}

// BitsWritten returns the total number of bits appended so far, including
// bits not yet flushed to the buffer.
func (w *Writer) BitsWritten() int64 {
	return int64(len(w.buf))*8 + int64(w.cnt)
}

// Bytes returns the emitted stream. The slice aliases the Writer's buffer
// and is only valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// PatchUint24 overwrites the 3 bytes at offset with val as an unsigned
// little-endian 24-bit integer. The bytes must already have been emitted.
func (w *Writer) PatchUint24(offset int, val uint32) {
	w.buf[offset] = byte(val)
	w.buf[offset+1] = byte(val >> 8)
	w.buf[offset+2] = byte(val >> 16)
}

// Reset discards all written data, retaining the buffer capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.acc = 0
	w.cnt = 0
}

// Reader provides little-endian bit-level reading from a byte slice.
// It mirrors the Writer's packing: the first bit of the stream is bit 0
// of the first byte.
type Reader struct {
	data []byte
	pos  int  // next byte index
	buf  byte // current byte
	cnt  uint // bits remaining in buf
}

// NewReader creates a new bit reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit. It returns -1 once the data is exhausted.
func (r *Reader) ReadBit() int {
	if r.cnt == 0 {
		if r.pos >= len(r.data) {
			return -1
		}
		r.buf = r.data[r.pos]
		r.pos++
		r.cnt = 8
	}
	bit := int(r.buf & 1)
	r.buf >>= 1
	r.cnt--
	return bit
}

// ReadBits reads n bits (at most 32), least-significant bit first, and
// returns them packed with the first bit read at bit 0. ok is false when
// the data ran out before n bits were read.
func (r *Reader) ReadBits(n uint) (val uint32, ok bool) {
	for i := uint(0); i < n; i++ {
		bit := r.ReadBit()
		if bit < 0 {
			return 0, false
		}
		val |= uint32(bit) << i
	}
	return val, true
}

// AlignToByte discards any bits remaining in the current byte.
func (r *Reader) AlignToByte() {
	r.cnt = 0
}
