package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// planarSlices returns the Y/U/V plane sub-slices and their strides for
// any single-buffer planar YUV format (IYUV, YV12, YUV9, YVU9, YV16,
// IMC1-4), honoring each layout's own plane-ordering and offset rules
// (IMC1/IMC3's second chroma plane starting after the luma plus first
// chroma rows padded to a 16-row boundary, IMC2/IMC4's side-by-side chroma
// half-rows) the same way flip.go, greyscale.go and setpixel.go each
// compute them for their own purposes.
func planarSlices(id FormatId, d FormatDescriptor, buf []byte, width, height, stride int) (y, u, v []byte, yStride, uStride, vStride int) {
	chromaH := height / d.Planes.VertDecimation
	chromaW := width / d.Planes.HorizDecimation

	switch id {
	case FormatIMC1, FormatIMC3:
		layout := kernel.IMCPlaneLayout(width, height, stride, false, id == FormatIMC3)
		return buf[:height*stride], buf[layout.UOffset : layout.UOffset+chromaH*layout.UStride], buf[layout.VOffset : layout.VOffset+chromaH*layout.VStride], layout.YStride, layout.UStride, layout.VStride
	case FormatIMC2, FormatIMC4:
		layout := kernel.IMCPlaneLayout(width, height, stride, true, id == FormatIMC4)
		// Each plane's last row is only half a stride wide.
		uEnd := layout.UOffset + (chromaH-1)*layout.UStride + stride/2
		vEnd := layout.VOffset + (chromaH-1)*layout.VStride + stride/2
		return buf[:height*stride], buf[layout.UOffset:uEnd], buf[layout.VOffset:vEnd], layout.YStride, layout.UStride, layout.VStride
	default:
		ySize := height * stride
		uOff, vOff := ySize, ySize+chromaW*chromaH
		if !d.Planes.UFirst {
			uOff, vOff = vOff, uOff
		}
		return buf[:ySize], buf[uOff : uOff+chromaW*chromaH], buf[vOff : vOff+chromaW*chromaH], stride, chromaW, chromaW
	}
}

// semiPlanarSlices returns the Y and interleaved-UV plane sub-slices
// for NV12/NV21, whose chroma is always sub-sampled 2x2.
func semiPlanarSlices(d FormatDescriptor, buf []byte, width, height, stride int) (y, uv []byte, yStride, uvStride int) {
	ySize := height * stride
	chromaW := width / d.Planes.HorizDecimation
	chromaH := height / d.Planes.VertDecimation
	return buf[:ySize], buf[ySize : ySize+chromaW*2*chromaH], stride, chromaW * 2
}
