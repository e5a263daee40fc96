package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// flipSinglePlane swaps row y with row (height-1-y) in place for a
// single-plane buffer, matching the teacher's word-sliced swap down to
// 4-byte chunks with a trailing-byte remainder, expressed as a plain
// row swap since Go slices already give that loop for free without
// unsafe pointer arithmetic.
func flipSinglePlane(height int, buf []byte, stride int) {
	for y := 0; y < height/2; y++ {
		topOff := y * stride
		bottomOff := (height - 1 - y) * stride
		topRow := buf[topOff : topOff+stride]
		bottomRow := buf[bottomOff : bottomOff+stride]
		for i := 0; i < stride; i++ {
			topRow[i], bottomRow[i] = bottomRow[i], topRow[i]
		}
	}
}

// flipPlane is flipSinglePlane addressed from a plane's own offset
// within a larger buffer, for multi-plane formats whose planes are
// flipped independently using each plane's own height.
func flipPlane(buf []byte, offset, height, stride int) {
	flipSinglePlane(height, buf[offset:offset+height*stride], stride)
}

// flipPlaneStrided swaps row y with row (height-1-y) for a plane whose
// rows are only rowBytes wide but whose row-to-row address step is the
// wider rowStride — the shape IMC2/IMC4 need, since their U and V
// chroma rows share one full-width scanline side by side rather than
// owning a contiguous plane of their own.
func flipPlaneStrided(buf []byte, offset, height, rowBytes, rowStride int) {
	for y := 0; y < height/2; y++ {
		topOff := offset + y*rowStride
		bottomOff := offset + (height-1-y)*rowStride
		topRow := buf[topOff : topOff+rowBytes]
		bottomRow := buf[bottomOff : bottomOff+rowBytes]
		for i := 0; i < rowBytes; i++ {
			topRow[i], bottomRow[i] = bottomRow[i], topRow[i]
		}
	}
}

// FlipVertical flips a width x height image of format id in place,
// reversing the row order of every plane independently using that
// plane's own height, per spec.
func FlipVertical(id FormatId, width, height int, buf []byte, stride int) {
	d, ok := registry[id]
	if !ok {
		return
	}
	if stride == 0 {
		stride = MinStride(id, width)
	}

	switch d.Family {
	case FamilyYUVPlanar, FamilyYUVSemiPlanar:
		flipPlane(buf, 0, height, stride)
		chromaH := height / d.Planes.VertDecimation

		switch id {
		case FormatIMC1, FormatIMC2, FormatIMC3, FormatIMC4:
			layout := kernel.IMCPlaneLayout(width, height, stride, id == FormatIMC2 || id == FormatIMC4, id == FormatIMC3 || id == FormatIMC4)
			if d.Planes.Interlaced {
				half := stride / 2
				flipPlaneStrided(buf, layout.UOffset, chromaH, half, layout.UStride)
				flipPlaneStrided(buf, layout.VOffset, chromaH, half, layout.VStride)
				return
			}
			flipPlane(buf, layout.UOffset, chromaH, layout.UStride)
			flipPlane(buf, layout.VOffset, chromaH, layout.VStride)
			return
		}

		ySize := height * stride
		if d.Planes.SemiPlanar {
			flipPlane(buf, ySize, chromaH, (width/d.Planes.HorizDecimation)*2)
			return
		}
		chromaStride := width / d.Planes.HorizDecimation
		uOff, vOff := ySize, ySize+chromaStride*chromaH
		if !d.Planes.UFirst {
			uOff, vOff = vOff, uOff
		}
		flipPlane(buf, uOff, chromaH, chromaStride)
		flipPlane(buf, vOff, chromaH, chromaStride)

	default:
		flipSinglePlane(height, buf, stride)
	}
}
