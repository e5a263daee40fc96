package blipvert

// Fill writes a solid color across every pixel of a width x height
// image of format id. ry/gu/bv are R/G/B for RGB formats and Y/U/V for
// YUV formats, matching SetPixel's convention; alpha is honored only by
// alpha-bearing formats. Sub-sampled chroma formats end up with chroma
// written several times per lattice site (once per luma sample sharing
// it) with the same value each time, which is harmless and keeps Fill a
// single per-pixel loop over SetPixel rather than a second per-format
// routine to maintain.
//
// Palettized formats (RGB8/4/1) have no color-to-index mapping in this
// library (quantizing an arbitrary RGB triple into a caller's palette
// is outside its scope): Fill writes index 0 (ry/gu/bv/alpha are
// ignored) and it is the caller's responsibility to have placed the
// desired color at index 0 of the palette it intends to render
// through.
func Fill(id FormatId, ry, gu, bv, alpha uint8, width, height int, buf []byte, stride int) {
	d, ok := registry[id]
	if !ok {
		return
	}
	if stride == 0 {
		stride = MinStride(id, width)
	}

	if d.Family == FamilyPalettized {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				setPixelPalettized(id, 0, x, y, buf, stride)
			}
		}
		return
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			SetPixel(id, ry, gu, bv, alpha, x, y, width, height, buf, stride)
		}
	}
}
