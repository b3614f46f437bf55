package voxel

import "github.com/pkg/errors"

// Payload fields are packed least significant bit first with no padding
// between them; the last byte is zero padded.

type bitWriter struct {
	buf  []byte
	acc  uint64
	fill uint8
}

// newBitWriter sizes the buffer for roughly nbits bits.
func newBitWriter(nbits int) *bitWriter {
	return &bitWriter{buf: make([]byte, 0, (nbits+7)/8)}
}

func (w *bitWriter) write(v uint64, width uint8) {
	w.acc |= (v & (1<<width - 1)) << w.fill
	w.fill += width
	for w.fill >= 8 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc >>= 8
		w.fill -= 8
	}
}

// writeCells packs every material of cells at bpp bits each.
func (w *bitWriter) writeCells(cells []uint8, bpp uint8) {
	for _, c := range cells {
		w.write(uint64(c), bpp)
	}
}

func (w *bitWriter) bytes() []byte {
	if w.fill > 0 {
		w.buf = append(w.buf, byte(w.acc))
		w.acc, w.fill = 0, 0
	}
	return w.buf
}

// bitReader walks a payload by bit position. Reads past the end report
// ErrInvalidFormat rather than io errors, since a short payload always
// means a malformed file.
type bitReader struct {
	data []byte
	pos  int
}

func newBitReader(b []byte) *bitReader { return &bitReader{data: b} }

// remaining is the number of unread bits.
func (r *bitReader) remaining() int { return len(r.data)*8 - r.pos }

func (r *bitReader) read(width uint8) (uint64, error) {
	if int(width) > r.remaining() {
		return 0, errors.Wrapf(ErrInvalidFormat, "payload ends at bit %d, need %d more", r.pos, width)
	}
	var v uint64
	for got := uint8(0); got < width; {
		off := uint8(r.pos & 7)
		take := min(8-off, width-got)
		v |= (uint64(r.data[r.pos>>3]>>off) & (1<<take - 1)) << got
		got += take
		r.pos += int(take)
	}
	return v, nil
}

// readCells fills dst with bpp-bit materials. The whole run is checked
// against the payload before anything is read.
func (r *bitReader) readCells(dst []uint8, bpp uint8) error {
	if need := len(dst) * int(bpp); need > r.remaining() {
		return errors.Wrapf(ErrInvalidFormat, "%d cells need %d bits, payload has %d", len(dst), need, r.remaining())
	}
	for i := range dst {
		v, _ := r.read(bpp)
		dst[i] = uint8(v)
	}
	return nil
}
