package voxel

import (
	"bytes"
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

const (
	gridMagic      = "VXGR"
	gridVersion    = 1
	gridHeaderSize = 17
	gridTrailer    = 8
)

var (
	// ErrInvalidFormat is returned for data that is not a grid file.
	ErrInvalidFormat = errors.New("invalid grid file")
	// ErrChecksumMismatch is returned when the trailer hash does not match.
	ErrChecksumMismatch = errors.New("grid file checksum mismatch")
)

// GridHeader holds the fixed fields of a .vxg file. Enc carries the payload
// encoding in its low bits and the compression flags in its high bits.
type GridHeader struct {
	Ver     uint8
	Enc     uint8
	BPP     uint8
	W, H, D uint16
	PLen    uint32
}

// Encoding is the payload layout without compression flags.
func (h GridHeader) Encoding() int { return int(h.Enc & encMask) }

// Compression names the codec applied to the payload.
func (h GridHeader) Compression() string {
	switch {
	case h.Enc&flagZstd != 0:
		return "zstd"
	case h.Enc&flagZlib != 0:
		return "zlib"
	}
	return "none"
}

// ParseHeader validates the framing of a .vxg file and returns its header
// and raw (possibly compressed) payload.
func ParseHeader(data []byte) (GridHeader, []byte, error) {
	var hdr GridHeader
	if len(data) < gridHeaderSize+gridTrailer || string(data[:4]) != gridMagic {
		return hdr, nil, errors.Wrap(ErrInvalidFormat, "bad magic or short file")
	}
	r := bytes.NewReader(data[4:gridHeaderSize])
	for _, v := range []any{&hdr.Ver, &hdr.Enc, &hdr.BPP, &hdr.W, &hdr.H, &hdr.D, &hdr.PLen} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return hdr, nil, errors.Wrap(err, "read header")
		}
	}
	if hdr.Ver != gridVersion {
		return hdr, nil, errors.Wrapf(ErrInvalidFormat, "unsupported version %d", hdr.Ver)
	}
	if uint64(len(data)) != uint64(gridHeaderSize)+uint64(hdr.PLen)+gridTrailer {
		return hdr, nil, errors.Wrapf(ErrInvalidFormat, "payload length %d does not match file size %d", hdr.PLen, len(data))
	}
	body := data[:len(data)-gridTrailer]
	if xxhash.Sum64(body) != binary.LittleEndian.Uint64(data[len(data)-gridTrailer:]) {
		return hdr, nil, ErrChecksumMismatch
	}
	return hdr, body[gridHeaderSize:], nil
}

func buildGridFile(h GridHeader, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(gridHeaderSize + len(payload) + gridTrailer)
	buf.WriteString(gridMagic)
	_ = binary.Write(&buf, binary.LittleEndian, h.Ver)
	_ = binary.Write(&buf, binary.LittleEndian, h.Enc)
	_ = binary.Write(&buf, binary.LittleEndian, h.BPP)
	_ = binary.Write(&buf, binary.LittleEndian, h.W)
	_ = binary.Write(&buf, binary.LittleEndian, h.H)
	_ = binary.Write(&buf, binary.LittleEndian, h.D)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	_, _ = buf.Write(payload)
	_ = binary.Write(&buf, binary.LittleEndian, xxhash.Sum64(buf.Bytes()))
	return buf.Bytes()
}
