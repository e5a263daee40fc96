package kernel

// Packed422ToPlanarYUV downsamples a 4:2:2 packed stream (with Y0/Y1/U/V
// byte offsets packedOff within each 4-byte macropixel) into a planar
// Y/U/V buffer whose chroma planes are sub-sampled horizontally by 2
// (matching the packed source) and vertically by decim (1 for 4:2:2
// planar, 2 for 4:2:0, 4 for 4:1:0).
//
// For decim==1 (YV16) no vertical averaging happens: each destination
// chroma row is its matching packed row's chroma, verbatim. For
// decim==2 the packed source's chroma rows already match the
// destination's chroma width, so only a vertical 2-tap box average
// (a+b)>>1 is needed. For decim==4 the packed source's chroma columns
// are twice the destination's chroma width, so each destination chroma
// sample is an 8-sample box average: 2 adjacent packed chroma columns
// across 4 packed rows, summed and reduced with >>3.
func Packed422ToPlanarYUV(width, height int, yDst []byte, yStride int, uDst []byte, uStride int, vDst []byte, vStride int, src []byte, srcStride int, flipped bool, packedOff Offsets422, decim int) {
	macropixels := width / 2
	chromaH := height / decim

	// Luma: verbatim copy, one destination row per source row.
	for y := 0; y < height; y++ {
		srcRow := Row(src, srcStride, y, macropixels*4)
		dy := DstRow(y, height, flipped)
		dstRow := Row(yDst, yStride, dy, width)
		for m := 0; m < macropixels; m++ {
			si := m * 4
			dstRow[m*2] = srcRow[si+packedOff.Y0]
			dstRow[m*2+1] = srcRow[si+packedOff.Y1]
		}
	}

	switch decim {
	case 1:
		chromaW := macropixels
		for cy := 0; cy < chromaH; cy++ {
			row := Row(src, srcStride, cy, macropixels*4)
			dcy := DstRow(cy, chromaH, flipped)
			uRow := Row(uDst, uStride, dcy, chromaW)
			vRow := Row(vDst, vStride, dcy, chromaW)
			for cx := 0; cx < chromaW; cx++ {
				si := cx * 4
				uRow[cx] = row[si+packedOff.U]
				vRow[cx] = row[si+packedOff.V]
			}
		}
	case 2:
		chromaW := macropixels
		for cy := 0; cy < chromaH; cy++ {
			row0 := Row(src, srcStride, cy*2, macropixels*4)
			row1 := Row(src, srcStride, cy*2+1, macropixels*4)
			dcy := DstRow(cy, chromaH, flipped)
			uRow := Row(uDst, uStride, dcy, chromaW)
			vRow := Row(vDst, vStride, dcy, chromaW)
			for cx := 0; cx < chromaW; cx++ {
				si := cx * 4
				uRow[cx] = uint8((int(row0[si+packedOff.U]) + int(row1[si+packedOff.U])) >> 1)
				vRow[cx] = uint8((int(row0[si+packedOff.V]) + int(row1[si+packedOff.V])) >> 1)
			}
		}
	case 4:
		chromaW := macropixels / 2
		for cy := 0; cy < chromaH; cy++ {
			dcy := DstRow(cy, chromaH, flipped)
			uRow := Row(uDst, uStride, dcy, chromaW)
			vRow := Row(vDst, vStride, dcy, chromaW)
			for cx := 0; cx < chromaW; cx++ {
				var sumU, sumV int
				for r := 0; r < 4; r++ {
					srow := Row(src, srcStride, cy*4+r, macropixels*4)
					for c := 0; c < 2; c++ {
						si := (cx*2 + c) * 4
						sumU += int(srow[si+packedOff.U])
						sumV += int(srow[si+packedOff.V])
					}
				}
				uRow[cx] = uint8(sumU >> 3)
				vRow[cx] = uint8(sumV >> 3)
			}
		}
	default:
		panic("kernel: unsupported chroma decimation")
	}
}
