package kernel

import "github.com/blipvert-go/blipvert/internal/colorspace"

// ColorConv selects which colorspace arithmetic a kernel invocation
// uses: the integer lookup-table path or the floating-point reference
// path, per caller request. The dispatcher always calls with ConvFast;
// the colorspace precision tests call the Slow* functions directly.
type ColorConv int

const (
	ConvFast ColorConv = iota
	ConvSlow
)

func rgbToYUV(r, g, b uint8, conv ColorConv) (y, u, v uint8) {
	if conv == ConvSlow {
		return colorspace.SlowRGBToYUV(r, g, b)
	}
	return colorspace.FastRGBToYUV(r, g, b)
}

func yuvToRGB(y, u, v uint8, conv ColorConv) (r, g, b uint8) {
	if conv == ConvSlow {
		return colorspace.SlowYUVToRGB(y, u, v)
	}
	return colorspace.FastYUVToRGB(y, u, v)
}

// RGBToPacked422 converts a packed RGB buffer into 4:2:2 packed YUV.
// Each output chroma sample is computed from the left pixel of its
// macropixel pair (no averaging across the pair; the two source pixels
// already carry independent luma into Y0/Y1).
func RGBToPacked422(width, height int, dst []byte, dstStride int, dstOff Offsets422, src []byte, srcStride int, srcLayout RGBLayout, flipped bool, conv ColorConv) {
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*srcLayout.BytesPerPixel)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*2)
		for x := 0; x < width; x += 2 {
			w0 := readWord(srcRow, x*srcLayout.BytesPerPixel, srcLayout.BytesPerPixel)
			w1 := readWord(srcRow, (x+1)*srcLayout.BytesPerPixel, srcLayout.BytesPerPixel)
			r0, g0, b0, _ := extractRGBA(w0, srcLayout)
			r1, g1, b1, _ := extractRGBA(w1, srcLayout)
			y0, u0, v0 := rgbToYUV(r0, g0, b0, conv)
			y1, _, _ := rgbToYUV(r1, g1, b1, conv)
			di := x * 2
			dstRow[di+dstOff.Y0] = y0
			dstRow[di+dstOff.Y1] = y1
			dstRow[di+dstOff.U] = u0
			dstRow[di+dstOff.V] = v0
		}
	}
}

// Packed422ToRGB converts packed 4:2:2 YUV into a packed RGB layout,
// reusing each macropixel's single chroma sample for both of its luma
// samples.
func Packed422ToRGB(width, height int, dst []byte, dstStride int, dstLayout RGBLayout, src []byte, srcStride int, srcOff Offsets422, flipped bool, conv ColorConv) {
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*2)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*dstLayout.BytesPerPixel)
		for x := 0; x < width; x += 2 {
			si := x * 2
			u, v := srcRow[si+srcOff.U], srcRow[si+srcOff.V]
			r0, g0, b0 := yuvToRGB(srcRow[si+srcOff.Y0], u, v, conv)
			r1, g1, b1 := yuvToRGB(srcRow[si+srcOff.Y1], u, v, conv)
			writeWord(dstRow, x*dstLayout.BytesPerPixel, dstLayout.BytesPerPixel, packRGBA(r0, g0, b0, 255, dstLayout))
			writeWord(dstRow, (x+1)*dstLayout.BytesPerPixel, dstLayout.BytesPerPixel, packRGBA(r1, g1, b1, 255, dstLayout))
		}
	}
}

// RGBToPlanarYUV converts packed RGB into planar YUV with chroma
// sub-sampled by decim in both axes; chroma is derived from the
// top-left source pixel of each decim x decim block (matching the
// left-sample convention used by the packed-422 path).
func RGBToPlanarYUV(width, height int, yDst []byte, yStride int, uDst []byte, uStride int, vDst []byte, vStride int, src []byte, srcStride int, srcLayout RGBLayout, flipped bool, decim int, conv ColorConv) {
	chromaW := width / decim
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*srcLayout.BytesPerPixel)
		dy := DstRow(y, height, flipped)
		yRow := Row(yDst, yStride, dy, width)
		for x := 0; x < width; x++ {
			w := readWord(srcRow, x*srcLayout.BytesPerPixel, srcLayout.BytesPerPixel)
			r, g, b, _ := extractRGBA(w, srcLayout)
			yRow[x], _, _ = rgbToYUV(r, g, b, conv)
		}
		if y%decim == 0 {
			cy := y / decim
			dcy := DstRow(cy, height/decim, flipped)
			uRow := Row(uDst, uStride, dcy, chromaW)
			vRow := Row(vDst, vStride, dcy, chromaW)
			for cx := 0; cx < chromaW; cx++ {
				w := readWord(srcRow, cx*decim*srcLayout.BytesPerPixel, srcLayout.BytesPerPixel)
				r, g, b, _ := extractRGBA(w, srcLayout)
				_, uRow[cx], vRow[cx] = rgbToYUV(r, g, b, conv)
			}
		}
	}
}

// PlanarYUVToRGB converts planar YUV (chroma sub-sampled decim x decim)
// into packed RGB, broadcasting each chroma sample across its block.
func PlanarYUVToRGB(width, height int, dst []byte, dstStride int, dstLayout RGBLayout, yPlane []byte, yStride int, uPlane []byte, uStride int, vPlane []byte, vStride int, flipped bool, decim int, conv ColorConv) {
	chromaW := width / decim
	for y := 0; y < height; y++ {
		yRow := Row(yPlane, yStride, y, width)
		cy := y / decim
		uRow := Row(uPlane, uStride, cy, chromaW)
		vRow := Row(vPlane, vStride, cy, chromaW)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*dstLayout.BytesPerPixel)
		for x := 0; x < width; x++ {
			u, v := uRow[x/decim], vRow[x/decim]
			r, g, b := yuvToRGB(yRow[x], u, v, conv)
			writeWord(dstRow, x*dstLayout.BytesPerPixel, dstLayout.BytesPerPixel, packRGBA(r, g, b, 255, dstLayout))
		}
	}
}
