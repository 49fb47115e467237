package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette clamp to its last entry; an empty
// palette clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillHeatRGBA maps byte intensities onto a translucent single-color ramp,
// used by the age overlays. Zero cells stay fully transparent.
func fillHeatRGBA(buf []byte, values []uint8, max uint8, tint color.RGBA) {
	if max == 0 {
		max = 1
	}
	for i, v := range values {
		base := i * 4
		if v == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		if v > max {
			v = max
		}
		// Premultiplied alpha ramp from faint to strong.
		alpha := uint32(64) + uint32(v)*176/uint32(max)
		buf[base+0] = uint8(uint32(tint.R) * alpha / 255)
		buf[base+1] = uint8(uint32(tint.G) * alpha / 255)
		buf[base+2] = uint8(uint32(tint.B) * alpha / 255)
		buf[base+3] = uint8(alpha)
	}
}
