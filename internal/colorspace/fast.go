package colorspace

// BT.601 RGB<->YUV conversion using 32-bit fixed-point tables, matching
// the coefficients used throughout the video-pipeline tooling this
// package's kernels serve (studio-range BT.601, Y in [16,235], U/V in
// [16,240]). All tables are indexed directly by the 8-bit sample value
// and pre-multiplied by the fixed-point coefficient, so the hot path is
// three table lookups, a sum, a shift, and an offset.

const fixShift = 15

// RGB -> YUV coefficients, scaled by 1<<fixShift and rounded to the
// nearest integer. U and V coefficient triples each sum to exactly zero
// so that a grey input (R==G==B) produces U==V==128 exactly.
const (
	coeffYR = 8421  // 0.257 * 32768
	coeffYG = 16515 // 0.504 * 32768
	coeffYB = 3211  // 0.098 * 32768

	coeffUR = -4850 // -0.148 * 32768
	coeffUG = -9535 // -0.291 * 32768
	coeffUB = 14385 //  0.439 * 32768

	coeffVR = 14385  //  0.439 * 32768
	coeffVG = -12059 // -0.368 * 32768
	coeffVB = -2326  // -0.071 * 32768
)

// YUV -> RGB coefficients, scaled by 1<<fixShift. The additive bias
// constants fold in the (Y-16) and (U,V-128) offsets so that the hot
// path is a table sum followed by a single subtract-and-shift.
const (
	coeffRY = 38142 // 1.164 * 32768
	coeffRV = 52298 // 1.596 * 32768

	coeffGY = 38142 // 1.164 * 32768
	coeffGU = 12845 // 0.392 * 32768
	coeffGV = 26640 // 0.813 * 32768

	coeffBY = 38142 // 1.164 * 32768
	coeffBU = 66093 // 2.017 * 32768

	biasR = coeffRY*16 + coeffRV*128
	biasG = -coeffGY*16 + coeffGU*128 + coeffGV*128
	biasB = coeffBY*16 + coeffBU*128
)

var (
	yrTable, ygTable, ybTable [256]int32
	urTable, ugTable, ubTable [256]int32
	vrTable, vgTable, vbTable [256]int32

	ryTable, rvTable [256]int32
	gyTable, guTable, gvTable [256]int32
	byTable, buTable [256]int32
)

func init() {
	for i := 0; i < 256; i++ {
		yrTable[i] = coeffYR * int32(i)
		ygTable[i] = coeffYG * int32(i)
		ybTable[i] = coeffYB * int32(i)

		urTable[i] = coeffUR * int32(i)
		ugTable[i] = coeffUG * int32(i)
		ubTable[i] = coeffUB * int32(i)

		vrTable[i] = coeffVR * int32(i)
		vgTable[i] = coeffVG * int32(i)
		vbTable[i] = coeffVB * int32(i)

		ryTable[i] = coeffRY * int32(i)
		rvTable[i] = coeffRV * int32(i)

		gyTable[i] = coeffGY * int32(i)
		guTable[i] = coeffGU * int32(i)
		gvTable[i] = coeffGV * int32(i)

		byTable[i] = coeffBY * int32(i)
		buTable[i] = coeffBU * int32(i)
	}
}

// FastRGBToYUV converts an 8-bit RGB triple to YUV using the fixed-point
// tables above. It is the conversion every RGB->YUV kernel calls.
func FastRGBToYUV(r, g, b uint8) (y, u, v uint8) {
	yy := (yrTable[r] + ygTable[g] + ybTable[b]) >> fixShift
	uu := (urTable[r] + ugTable[g] + ubTable[b]) >> fixShift
	vv := (vrTable[r] + vgTable[g] + vbTable[b]) >> fixShift
	return Clip8(int(yy) + 16), Clip8(int(uu) + 128), Clip8(int(vv) + 128)
}

// FastYUVToRGB converts an 8-bit YUV triple to RGB using the fixed-point
// tables above, saturating each channel to [0,255].
func FastYUVToRGB(y, u, v uint8) (r, g, b uint8) {
	rr := (ryTable[y] + rvTable[v] - biasR) >> fixShift
	gg := (gyTable[y] - guTable[u] - gvTable[v] + biasG) >> fixShift
	bb := (byTable[y] + buTable[u] - biasB) >> fixShift
	return Clip8(int(rr)), Clip8(int(gg)), Clip8(int(bb))
}
