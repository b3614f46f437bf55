package api

import (
	"strconv"

	"github.com/pkg/errors"
)

// Palette maps material ids to colours. Material 0 is air and never drawn;
// ids past the end wrap around.
var Palette = []string{
	"#00000000",
	"#7f7f7f", "#8b5a2b", "#5d9c3a", "#c2b280",
	"#3f76e4", "#9e9e9e", "#6b4226", "#d9d9d9",
	"#b03a2e", "#e67e22", "#f1c40f", "#27ae60",
	"#16a085", "#2980b9", "#8e44ad", "#2c3e50",
}

// MaterialColor returns the RGBA colour for a material id.
func MaterialColor(material uint8) ([4]float32, error) {
	if material == 0 {
		return ParseHexColor(Palette[0])
	}
	return ParseHexColor(Palette[1+(int(material)-1)%(len(Palette)-1)])
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(hex string) ([4]float32, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return [4]float32{}, errors.Errorf("invalid hex colour %q", hex)
	}
	h := hex[1:]
	if len(h) != 6 && len(h) != 8 {
		return [4]float32{}, errors.Errorf("invalid hex colour length %q", hex)
	}
	var rgba [4]float32
	rgba[3] = 1
	for i := 0; i < len(h)/2; i++ {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return [4]float32{}, errors.Wrapf(err, "hex colour %q", hex)
		}
		rgba[i] = float32(v) / 255
	}
	return rgba, nil
}
