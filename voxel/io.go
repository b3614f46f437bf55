package voxel

import (
	"os"

	"github.com/pkg/errors"
)

// EncodeGrid serialises g as a .vxg file, picking the smallest payload
// encoding. The file stores each dimension in 16 bits.
func EncodeGrid(g *Grid) ([]byte, error) {
	if g.w > 0xFFFF || g.h > 0xFFFF || g.d > 0xFFFF {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%dx%d does not fit a grid file (max %d per side)", g.w, g.h, g.d, 0xFFFF)
	}
	bpp := bitsFor(g)
	enc := bestEncoding(flatten(g), bpp)
	hdr := GridHeader{Ver: gridVersion, Enc: enc.encoding, BPP: bpp, W: uint16(g.w), H: uint16(g.h), D: uint16(g.d)}
	return buildGridFile(hdr, enc.payload), nil
}

func SaveGrid(g *Grid, filename string) error {
	data, err := EncodeGrid(g)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func LoadGrid(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	g, err := DecodeGrid(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return g, nil
}

// DecodeGrid parses a .vxg file from memory. The header dimensions are
// checked against MaxCells and against the payload size before the grid is
// allocated.
func DecodeGrid(data []byte) (*Grid, error) {
	hdr, payload, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.BPP < 1 || hdr.BPP > 8 {
		return nil, errors.Wrapf(ErrInvalidFormat, "bpp %d", hdr.BPP)
	}
	w, h, d := int(hdr.W), int(hdr.H), int(hdr.D)
	total := w * h * d
	if total == 0 || total > MaxCells {
		return nil, errors.Wrapf(ErrInvalidFormat, "dimensions %dx%dx%d", w, h, d)
	}

	limit := maxPayload(total, hdr.BPP)
	switch {
	case hdr.Enc&flagZstd != 0:
		payload, err = zstdDecompress(payload, limit)
	case hdr.Enc&flagZlib != 0:
		payload, err = zlibDecompress(payload, limit)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decompress payload")
	}
	if err := checkPayload(hdr.Encoding(), payload, total, hdr.BPP); err != nil {
		return nil, err
	}

	g, err := NewGrid(w, h, d)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidFormat, err.Error())
	}
	stream := make([]uint8, total)
	switch hdr.Encoding() {
	case encDense:
		if err := newBitReader(payload).readCells(stream, hdr.BPP); err != nil {
			return nil, errors.Wrap(err, "dense payload")
		}
	case encSparse:
		br := newBitReader(payload)
		cnt, _ := br.read(32)
		ib := indexBits(total)
		for j := uint64(0); j < cnt; j++ {
			idx, err := br.read(ib)
			if err != nil {
				return nil, errors.Wrap(err, "sparse index")
			}
			col, err := br.read(hdr.BPP)
			if err != nil {
				return nil, errors.Wrap(err, "sparse value")
			}
			if idx >= uint64(total) {
				return nil, errors.Wrapf(ErrInvalidFormat, "sparse index %d", idx)
			}
			stream[idx] = uint8(col)
		}
	case encBitmap:
		n := (total + 7) / 8
		bitmap := payload[:n]
		br := newBitReader(payload[n:])
		for i := range stream {
			if (bitmap[i>>3]>>(uint(i)&7))&1 == 0 {
				continue
			}
			v, err := br.read(hdr.BPP)
			if err != nil {
				return nil, errors.Wrap(err, "bitmap values")
			}
			stream[i] = uint8(v)
		}
	}
	applyOrder(g, stream)
	return g, nil
}

// checkPayload rejects payloads too short for the layout they claim.
func checkPayload(enc int, payload []byte, total int, bpp uint8) error {
	bitsHave := len(payload) * 8
	switch enc {
	case encDense:
		if need := total * int(bpp); bitsHave < need {
			return errors.Wrapf(ErrInvalidFormat, "dense payload has %d bits, %d cells need %d", bitsHave, total, need)
		}
	case encSparse:
		cnt, err := newBitReader(payload).read(32)
		if err != nil {
			return errors.Wrap(err, "sparse count")
		}
		if cnt > uint64(total) {
			return errors.Wrapf(ErrInvalidFormat, "sparse count %d exceeds %d cells", cnt, total)
		}
		if need := 32 + int(cnt)*int(indexBits(total)+bpp); bitsHave < need {
			return errors.Wrapf(ErrInvalidFormat, "sparse payload has %d bits, %d entries need %d", bitsHave, cnt, need)
		}
	case encBitmap:
		if n := (total + 7) / 8; len(payload) < n {
			return errors.Wrapf(ErrInvalidFormat, "bitmap needs %d bytes, have %d", n, len(payload))
		}
	default:
		return errors.Wrapf(ErrInvalidFormat, "unknown encoding %d", enc)
	}
	return nil
}
