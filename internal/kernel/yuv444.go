package kernel

// AYUV stores one 4:4:4 macropixel per 4 bytes as A,U,V,Y (byte 0..3),
// matching the fourcc.org-documented little-endian layout.
const (
	ayuvA = 0
	ayuvU = 1
	ayuvV = 2
	ayuvY = 3
)

// Packed422ToAYUV upsamples a 4:2:2 packed stream to 4:4:4 AYUV,
// holding each macropixel's single chroma sample across both of its
// luma samples and writing full (255) alpha.
func Packed422ToAYUV(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, srcOff Offsets422) {
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*2)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*4)
		for x := 0; x < width; x += 2 {
			si := x * 2
			u, v := srcRow[si+srcOff.U], srcRow[si+srcOff.V]
			for i, yv := range [2]uint8{srcRow[si+srcOff.Y0], srcRow[si+srcOff.Y1]} {
				di := (x + i) * 4
				dstRow[di+ayuvA] = 255
				dstRow[di+ayuvU] = u
				dstRow[di+ayuvV] = v
				dstRow[di+ayuvY] = yv
			}
		}
	}
}

// AYUVToPacked422 downsamples 4:4:4 AYUV into 4:2:2 packed, taking the
// chroma of the macropixel's left (even) sample, matching the
// left-sample convention RGBToPacked422 uses (alpha is dropped: no
// 4:2:2 packed format in this library carries alpha).
func AYUVToPacked422(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, dstOff Offsets422) {
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*4)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*2)
		for x := 0; x < width; x += 2 {
			si := x * 4
			di := x * 2
			dstRow[di+dstOff.Y0] = srcRow[si+ayuvY]
			dstRow[di+dstOff.U] = srcRow[si+ayuvU]
			dstRow[di+dstOff.V] = srcRow[si+ayuvV]
			dstRow[di+dstOff.Y1] = srcRow[si+4+ayuvY]
		}
	}
}

// RGBToAYUV converts packed RGB directly to 4:4:4 AYUV: every pixel
// gets its own independently computed chroma sample (no sub-sampling),
// carrying source alpha through when the source layout has one.
func RGBToAYUV(width, height int, dst []byte, dstStride int, src []byte, srcStride int, srcLayout RGBLayout, flipped bool, conv ColorConv) {
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*srcLayout.BytesPerPixel)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*4)
		for x := 0; x < width; x++ {
			w := readWord(srcRow, x*srcLayout.BytesPerPixel, srcLayout.BytesPerPixel)
			r, g, b, a := extractRGBA(w, srcLayout)
			yv, u, v := rgbToYUV(r, g, b, conv)
			di := x * 4
			dstRow[di+ayuvA] = a
			dstRow[di+ayuvU] = u
			dstRow[di+ayuvV] = v
			dstRow[di+ayuvY] = yv
		}
	}
}

// AYUVToRGB converts 4:4:4 AYUV to packed RGB, dropping alpha into 255
// opaque when the destination layout has no alpha channel.
func AYUVToRGB(width, height int, dst []byte, dstStride int, dstLayout RGBLayout, src []byte, srcStride int, flipped bool, conv ColorConv) {
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, width*4)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, width*dstLayout.BytesPerPixel)
		for x := 0; x < width; x++ {
			si := x * 4
			r, g, b := yuvToRGB(srcRow[si+ayuvY], srcRow[si+ayuvU], srcRow[si+ayuvV], conv)
			writeWord(dstRow, x*dstLayout.BytesPerPixel, dstLayout.BytesPerPixel, packRGBA(r, g, b, srcRow[si+ayuvA], dstLayout))
		}
	}
}
