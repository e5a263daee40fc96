package colorspace

import "github.com/chewxy/math32"

// SlowRGBToYUV is the floating-point BT.601 reference conversion that
// FastRGBToYUV is checked against. It uses the same studio-range
// coefficients as the fixed-point tables, carried at float32 precision
// (sufficient for 8-bit channel data, and the numeric type the rest of
// this codebase's pixel math uses).
func SlowRGBToYUV(r, g, b uint8) (y, u, v uint8) {
	rf, gf, bf := float32(r), float32(g), float32(b)
	yf := 0.257*rf + 0.504*gf + 0.098*bf + 16
	uf := -0.148*rf - 0.291*gf + 0.439*bf + 128
	vf := 0.439*rf - 0.368*gf - 0.071*bf + 128
	return clipF(yf), clipF(uf), clipF(vf)
}

// SlowYUVToRGB is the floating-point BT.601 reference conversion that
// FastYUVToRGB is checked against.
func SlowYUVToRGB(y, u, v uint8) (r, g, b uint8) {
	cy := float32(y) - 16
	cu := float32(u) - 128
	cv := float32(v) - 128
	rf := 1.164*cy + 1.596*cv
	gf := 1.164*cy - 0.392*cu - 0.813*cv
	bf := 1.164*cy + 2.017*cu
	return clipF(rf), clipF(gf), clipF(bf)
}

func clipF(v float32) uint8 {
	v = math32.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
