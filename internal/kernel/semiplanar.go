package kernel

// UVOrder gives the byte order of the two chroma samples interleaved in
// a semi-planar UV plane: {0,1} for NV12 (U then V), {1,0} for NV21.
type UVOrder struct {
	U, V int
}

// PlanarYUVToSemiPlanar converts a fully planar 4:2:0 Y/U/V buffer into a
// semi-planar Y + interleaved-UV buffer (NV12/NV21); SemiPlanarToPlanarYUV
// does the reverse. Chroma is decim-2 in both axes in every format this
// kernel is wired to.
func PlanarYUVToSemiPlanar(width, height int, yDst []byte, yDstStride int, uvDst []byte, uvDstStride int, ySrc []byte, ySrcStride int, uSrc []byte, uSrcStride int, vSrc []byte, vSrcStride int, flipped bool, order UVOrder) {
	for y := 0; y < height; y++ {
		dy := DstRow(y, height, flipped)
		copy(Row(yDst, yDstStride, dy, width), Row(ySrc, ySrcStride, y, width))
	}

	chromaW, chromaH := width/2, height/2
	for cy := 0; cy < chromaH; cy++ {
		uRow := Row(uSrc, uSrcStride, cy, chromaW)
		vRow := Row(vSrc, vSrcStride, cy, chromaW)
		dcy := DstRow(cy, chromaH, flipped)
		uvRow := Row(uvDst, uvDstStride, dcy, chromaW*2)
		for cx := 0; cx < chromaW; cx++ {
			uvRow[cx*2+order.U] = uRow[cx]
			uvRow[cx*2+order.V] = vRow[cx]
		}
	}
}

// SemiPlanarToPlanarYUV splits a semi-planar Y + interleaved-UV buffer
// (NV12/NV21) into fully planar Y/U/V.
func SemiPlanarToPlanarYUV(width, height int, yDst []byte, yDstStride int, uDst []byte, uDstStride int, vDst []byte, vDstStride int, ySrc []byte, ySrcStride int, uvSrc []byte, uvSrcStride int, flipped bool, order UVOrder) {
	for y := 0; y < height; y++ {
		dy := DstRow(y, height, flipped)
		copy(Row(yDst, yDstStride, dy, width), Row(ySrc, ySrcStride, y, width))
	}

	chromaW, chromaH := width/2, height/2
	for cy := 0; cy < chromaH; cy++ {
		uvRow := Row(uvSrc, uvSrcStride, cy, chromaW*2)
		dcy := DstRow(cy, chromaH, flipped)
		uRow := Row(uDst, uDstStride, dcy, chromaW)
		vRow := Row(vDst, vDstStride, dcy, chromaW)
		for cx := 0; cx < chromaW; cx++ {
			uRow[cx] = uvRow[cx*2+order.U]
			vRow[cx] = uvRow[cx*2+order.V]
		}
	}
}

// PlaneOffsets describes the byte offset and row stride of an IMC-style
// plane pair that physically shares one contiguous allocation with luma:
// IMC1-4 place the chroma planes beneath the luma plane within the same
// buffer, with 16-row alignment (IMC1/IMC3) or half-width interlaced
// chroma (IMC2/IMC4) as the only differences between them.
type PlaneOffsets struct {
	YOffset, YStride             int
	UOffset, UStride, VOffset, VStride int
}

// IMCChromaRowAlign is the row-count alignment the IMC1/IMC3 layouts pad
// the luma plus first chroma plane rows to before the second chroma
// plane begins.
const IMCChromaRowAlign = 16

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// IMCPlaneLayout computes the plane offsets/strides for one of the four
// IMC buffer layouts within a single contiguous buffer of the given
// stride. interlacedChroma selects IMC2/IMC4 (chroma planes share full
// image width, U and V rows interleaved into one half-width scanline
// each); uvSwapped selects IMC1/IMC2 vs IMC3/IMC4 plane order.
func IMCPlaneLayout(width, height, stride int, interlacedChroma, uvSwapped bool) PlaneOffsets {
	chromaH := height / 2
	if interlacedChroma {
		yRows := height
		uOff := yRows * stride
		vOff := uOff + stride/2
		layout := PlaneOffsets{
			YOffset: 0, YStride: stride,
			UOffset: uOff, UStride: stride,
			VOffset: vOff, VStride: stride,
		}
		if uvSwapped {
			layout.UOffset, layout.VOffset = layout.VOffset, layout.UOffset
		}
		return layout
	}

	// The first chroma plane starts immediately below luma; the second
	// starts once that block is padded out to a 16-row boundary. Both
	// chroma planes are addressed at the full luma stride, not half of
	// it, matching CalcBufferSize_IMCx's non-interlaced branch.
	uOff := height * stride
	vOff := alignUp(height+chromaH, IMCChromaRowAlign) * stride
	layout := PlaneOffsets{
		YOffset: 0, YStride: stride,
		UOffset: uOff, UStride: stride,
		VOffset: vOff, VStride: stride,
	}
	if uvSwapped {
		layout.UOffset, layout.VOffset = layout.VOffset, layout.UOffset
	}
	return layout
}
