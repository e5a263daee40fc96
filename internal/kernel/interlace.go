package kernel

// Deinterlace reorders a buffer whose rows are stored even rows first,
// then odd rows (IUYV, IY41), into natural top-to-bottom row order
// (UYVY, Y41P). Interlace does the reverse.
// rowBytes is the byte width of one row in either layout.
func Deinterlace(height, rowBytes int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool) {
	half := (height + 1) / 2
	for y := 0; y < height; y++ {
		var srcY int
		if y%2 == 0 {
			srcY = y / 2
		} else {
			srcY = half + y/2
		}
		dy := DstRow(y, height, flipped)
		copy(Row(dst, dstStride, dy, rowBytes), Row(src, srcStride, srcY, rowBytes))
	}
}

// Interlace is the inverse of Deinterlace: it writes natural row y of
// the source into the even-first/odd-second destination slot. Per
// rows.go's DstRow convention the source is always read top-to-bottom
// (loop index y is never flipped); flipping instead has to pick which
// logical row y's content lands at before that row is mapped to its
// even/odd interlaced slot — applying the flip to the physical slot
// index afterward instead gives the wrong slot whenever height is odd,
// since the even and odd fields then hold different row counts.
func Interlace(height, rowBytes int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool) {
	half := (height + 1) / 2
	for y := 0; y < height; y++ {
		ly := DstRow(y, height, flipped)
		var dstY int
		if ly%2 == 0 {
			dstY = ly / 2
		} else {
			dstY = half + ly/2
		}
		copy(Row(dst, dstStride, dstY, rowBytes), Row(src, srcStride, y, rowBytes))
	}
}
