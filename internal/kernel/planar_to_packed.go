package kernel

// chromaMixWeights returns the (top, bottom) fixed-point weights (base
// 1024) for upsampling row i of a decim-row output block from its
// bracketing chroma rows. decim==2 yields {1024,0},{512,512}; decim==4
// yields the {1.0,.75,.5,.25} mix named in spec, implemented as
// (top*w + bottom*(1024-w)) >> 10.
func chromaMixWeights(i, decim int) (top, bottom int) {
	step := 1024 / decim
	top = 1024 - i*step
	bottom = i * step
	return
}

// PlanarYUVToPacked422 upsamples a planar Y/U/V buffer whose chroma is
// sub-sampled by decim vertically (2 for 4:2:0, 4 for 4:1:0) into a
// packed 4:2:2 stream with Y0/Y1/U/V at packedOff within each 4-byte
// macropixel. Chroma is blended vertically only. Horizontal chroma
// decimation is taken as 2, or 4 when decim is 4 (YUV9/YVU9); in the
// 4:1:0 case each chroma sample is repeated for the two macropixels it
// covers, with no horizontal blending.
func PlanarYUVToPacked422(width, height int, dst []byte, dstStride int, yPlane []byte, yStride int, uPlane []byte, uStride int, vPlane []byte, vStride int, flipped bool, packedOff Offsets422, decim int) {
	macropixels := width / 2
	hd := 2
	if decim == 4 {
		hd = 4
	}
	chromaW := width / hd
	chromaH := height / decim

	for y := 0; y < height; y++ {
		cy := y / decim
		i := y % decim
		nextCy := cy + 1
		if nextCy >= chromaH {
			nextCy = chromaH - 1
		}
		top, bottom := chromaMixWeights(i, decim)

		uTopRow := Row(uPlane, uStride, cy, chromaW)
		vTopRow := Row(vPlane, vStride, cy, chromaW)
		uBotRow := Row(uPlane, uStride, nextCy, chromaW)
		vBotRow := Row(vPlane, vStride, nextCy, chromaW)
		yRow := Row(yPlane, yStride, y, width)

		dy := DstRow(y, height, flipped)
		dstRow := Row(dst, dstStride, dy, macropixels*4)

		for m := 0; m < macropixels; m++ {
			di := m * 4
			cx := m * 2 / hd
			u := (int(uTopRow[cx])*top + int(uBotRow[cx])*bottom) >> 10
			v := (int(vTopRow[cx])*top + int(vBotRow[cx])*bottom) >> 10
			dstRow[di+packedOff.Y0] = yRow[m*2]
			dstRow[di+packedOff.Y1] = yRow[m*2+1]
			dstRow[di+packedOff.U] = uint8(u)
			dstRow[di+packedOff.V] = uint8(v)
		}
	}
}
