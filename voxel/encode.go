package voxel

import (
	"bytes"
	"io"
	"math/bits"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	encDense  = 0
	encSparse = 1
	encBitmap = 3 // occupancy bitmap + nonzero values

	encMask  = 0x0F
	flagZstd = 0x40
	flagZlib = 0x80
)

type encoded struct {
	encoding uint8
	payload  []byte
}

// bitsFor returns the bits needed to store every material in g, at least 1.
func bitsFor(g *Grid) uint8 {
	var hi uint8
	for _, c := range g.cells {
		hi = max(hi, c)
	}
	return uint8(max(bits.Len8(hi), 1))
}

func indexBits(total int) uint8 {
	return uint8(max(bits.Len(uint(total-1)), 1))
}

func encodeDense(stream []uint8, bpp uint8) []byte {
	bw := newBitWriter(len(stream) * int(bpp))
	bw.writeCells(stream, bpp)
	return bw.bytes()
}

func encodeSparse(stream []uint8, bpp uint8) []byte {
	count := 0
	for _, c := range stream {
		if c != 0 {
			count++
		}
	}
	ib := indexBits(len(stream))
	bw := newBitWriter(32 + count*int(ib+bpp))
	bw.write(uint64(count), 32)
	for i, c := range stream {
		if c == 0 {
			continue
		}
		bw.write(uint64(i), ib)
		bw.write(uint64(c), bpp)
	}
	return bw.bytes()
}

func encodeBitmap(stream []uint8, bpp uint8) []byte {
	bitmap := make([]byte, (len(stream)+7)/8)
	bw := newBitWriter(len(stream) * int(bpp))
	for i, v := range stream {
		if v != 0 {
			bitmap[i>>3] |= 1 << (uint(i) & 7)
			bw.write(uint64(v), bpp)
		}
	}
	return append(bitmap, bw.bytes()...)
}

func zlibCompress(b []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	_, _ = zw.Write(b)
	_ = zw.Close()
	return buf.Bytes()
}

// maxPayload bounds the decompressed payload of a grid with total cells.
// Sparse is the widest layout: a 32-bit count plus index and value per cell.
func maxPayload(total int, bpp uint8) int {
	return (32 + total*int(indexBits(total)+bpp) + 7) / 8
}

func zlibDecompress(b []byte, limit int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out, err := io.ReadAll(io.LimitReader(zr, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, errors.Wrapf(ErrInvalidFormat, "payload inflates past %d bytes", limit)
	}
	return out, nil
}

func zstdCompress(b []byte) []byte {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil)
}

func zstdDecompress(b []byte, limit int) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

// bestEncoding tries every layout, raw and compressed, and keeps the smallest.
func bestEncoding(stream []uint8, bpp uint8) encoded {
	candidates := []encoded{
		{encoding: encDense, payload: encodeDense(stream, bpp)},
		{encoding: encSparse, payload: encodeSparse(stream, bpp)},
		{encoding: encBitmap, payload: encodeBitmap(stream, bpp)},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.payload) < len(best.payload) {
			best = c
		}
	}
	for _, c := range candidates {
		if zb := zlibCompress(c.payload); len(zb) < len(best.payload) {
			best = encoded{encoding: c.encoding | flagZlib, payload: zb}
		}
		if zs := zstdCompress(c.payload); zs != nil && len(zs) < len(best.payload) {
			best = encoded{encoding: c.encoding | flagZstd, payload: zs}
		}
	}
	return best
}
