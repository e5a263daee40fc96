package kernel

// Offsets422 gives the byte offset within a 4-byte 4:2:2 macropixel of
// each of the four logical samples it carries.
type Offsets422 struct {
	Y0, Y1, U, V int
}

// Packed422ToPacked422 copies one 4:2:2 packed stream to another,
// permuting sample order per the source/destination offset tuples. It is
// pure permutation: no arithmetic, so it covers every YUY2/UYVY/YVYU/VYUY
// pair (and Y42T, which shares UYVY's layout).
func Packed422ToPacked422(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, srcOff, dstOff Offsets422) {
	macropixels := width / 2
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, macropixels*4)
		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, macropixels*4)
		for m := 0; m < macropixels; m++ {
			si := m * 4
			di := m * 4
			dstRow[di+dstOff.Y0] = srcRow[si+srcOff.Y0]
			dstRow[di+dstOff.Y1] = srcRow[si+srcOff.Y1]
			dstRow[di+dstOff.U] = srcRow[si+srcOff.U]
			dstRow[di+dstOff.V] = srcRow[si+srcOff.V]
		}
	}
}
