package kernel

// PlanarYUVToPlanarYUV converts between two planar YUV layouts whose
// chroma is sub-sampled by srcDecim and dstDecim respectively (2 or 4 in
// each axis). The luma plane is always a verbatim row copy. Chroma is:
//   - a direct copy when srcDecim == dstDecim (only the plane order or
//     strides may differ, e.g. IYUV <-> YV12),
//   - a 2x2 box average when going from 2 to 4 (down-sampling further),
//   - a 2D bilinear expansion when going from 4 to 2 (up-sampling),
//     whose second row of every produced pair is obtained by vertically
//     re-averaging two nearest-neighbour-expanded rows.
func PlanarYUVToPlanarYUV(width, height int,
	yDst []byte, yDstStride int, uDst []byte, uDstStride int, vDst []byte, vDstStride int,
	ySrc []byte, ySrcStride int, uSrc []byte, uSrcStride int, vSrc []byte, vSrcStride int,
	flipped bool, srcDecim, dstDecim int) {

	for y := 0; y < height; y++ {
		dy := DstRow(y, height, flipped)
		copy(Row(yDst, yDstStride, dy, width), Row(ySrc, ySrcStride, y, width))
	}

	srcChromaW, srcChromaH := width/srcDecim, height/srcDecim
	dstChromaW, dstChromaH := width/dstDecim, height/dstDecim

	switch {
	case srcDecim == dstDecim:
		for cy := 0; cy < srcChromaH; cy++ {
			dcy := DstRow(cy, dstChromaH, flipped)
			copy(Row(uDst, uDstStride, dcy, dstChromaW), Row(uSrc, uSrcStride, cy, srcChromaW))
			copy(Row(vDst, vDstStride, dcy, dstChromaW), Row(vSrc, vSrcStride, cy, srcChromaW))
		}

	case srcDecim == 2 && dstDecim == 4:
		for cy := 0; cy < dstChromaH; cy++ {
			row0U := Row(uSrc, uSrcStride, cy*2, srcChromaW)
			row1U := Row(uSrc, uSrcStride, cy*2+1, srcChromaW)
			row0V := Row(vSrc, vSrcStride, cy*2, srcChromaW)
			row1V := Row(vSrc, vSrcStride, cy*2+1, srcChromaW)
			dcy := DstRow(cy, dstChromaH, flipped)
			uRow := Row(uDst, uDstStride, dcy, dstChromaW)
			vRow := Row(vDst, vDstStride, dcy, dstChromaW)
			for cx := 0; cx < dstChromaW; cx++ {
				uRow[cx] = uint8((int(row0U[cx*2]) + int(row0U[cx*2+1]) + int(row1U[cx*2]) + int(row1U[cx*2+1])) >> 2)
				vRow[cx] = uint8((int(row0V[cx*2]) + int(row0V[cx*2+1]) + int(row1V[cx*2]) + int(row1V[cx*2+1])) >> 2)
			}
		}

	case srcDecim == 4 && dstDecim == 2:
		expandBilinear(uDst, uDstStride, uSrc, uSrcStride, srcChromaW, srcChromaH, dstChromaW, dstChromaH, flipped)
		expandBilinear(vDst, vDstStride, vSrc, vSrcStride, srcChromaW, srcChromaH, dstChromaW, dstChromaH, flipped)

	default:
		panic("kernel: unsupported chroma decimation pair")
	}
}

// expandBilinear doubles a chroma plane's resolution in both axes.
// Column doubling within a row is nearest-neighbour (each source sample
// covers two destination columns); row doubling nearest-neighbour-copies
// the even row and then re-averages it with the following doubled row to
// produce the odd row, approximating a 2D bilinear filter without
// reading past the last produced row.
func expandBilinear(dst []byte, dstStride int, src []byte, srcStride, srcW, srcH, dstW, dstH int, flipped bool) {
	doubled := make([][]byte, dstH)
	for dy := 0; dy < dstH; dy++ {
		doubled[dy] = make([]byte, dstW)
	}
	for sy := 0; sy < srcH; sy++ {
		srow := Row(src, srcStride, sy, srcW)
		drow := doubled[sy*2]
		for sx := 0; sx < srcW; sx++ {
			drow[sx*2] = srow[sx]
			drow[sx*2+1] = srow[sx]
		}
	}
	for dy := 1; dy < dstH; dy += 2 {
		top := doubled[dy-1]
		bottom := top
		if dy+1 < dstH {
			bottom = doubled[dy+1]
		}
		row := doubled[dy]
		for x := 0; x < dstW; x++ {
			row[x] = uint8((int(top[x]) + int(bottom[x])) >> 1)
		}
	}
	for dy := 0; dy < dstH; dy++ {
		ddy := DstRow(dy, dstH, flipped)
		copy(Row(dst, dstStride, ddy, dstW), doubled[dy])
	}
}
