package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// MinStride returns the minimum tightly-packed row stride in bytes for
// a format at the given width. A stride of 0 passed to any converter or
// to CalculateBufferSize means "derive it from here".
func MinStride(id FormatId, width int) int {
	d, ok := registry[id]
	if !ok {
		return 0
	}
	switch d.Family {
	case FamilyRGBPacked:
		return width * (d.EffectiveBPP / 8)
	case FamilyPalettized:
		switch d.EffectiveBPP {
		case 8:
			return width
		case 4:
			return (width + 1) / 2
		case 1:
			return (width + 7) / 8
		}
	case FamilyYUV422Packed, FamilyYUVInterlaced:
		return width * 2
	case FamilyYUV444Packed:
		return width * 4
	case FamilyYUVPlanar, FamilyYUVSemiPlanar:
		return width
	case FamilyYUVSubByte:
		switch id {
		case FormatIYU1, FormatY41P, FormatY41T, FormatY41PInterlaced:
			return width * 12 / 8
		case FormatIYU2:
			return width * 3
		case FormatCLJR:
			return width
		}
	case FamilyGreyscale8:
		return width
	case FamilyGreyscale16:
		return width * 2
	}
	return width
}

// chromaPlaneSize returns the byte size of one chroma plane (U or V)
// for a planar/semi-planar format, honoring IMC2/IMC4's interlaced
// half-width chroma row layout. IMC1/IMC3 aren't handled here: their
// two chroma planes don't each occupy a clean width*height rectangle
// (the first one is padded up to imcTotalRows' 16-row boundary before
// the second begins), so CalculateBufferSize sizes them directly via
// imcTotalRows instead of by doubling a single plane's size.
func chromaPlaneSize(id FormatId, d FormatDescriptor, width, height, yStride int) int {
	chromaW := width / d.Planes.HorizDecimation
	chromaH := height / d.Planes.VertDecimation
	if d.Planes.SemiPlanar {
		return chromaW * 2 * chromaH
	}
	if d.Planes.Interlaced {
		// IMC2/IMC4: each chroma row is half the luma stride wide and the
		// two chroma planes share one set of full-width scanlines.
		return (yStride / 2) * chromaH
	}
	return chromaW * chromaH
}

func alignUp16(n int) int {
	return (n + kernel.IMCChromaRowAlign - 1) / kernel.IMCChromaRowAlign * kernel.IMCChromaRowAlign
}

// imcTotalRows returns the number of full-stride rows an IMC1/IMC3
// buffer occupies: the luma plane, followed by the first chroma plane
// padded up to a 16-row boundary, followed by the second chroma plane
// unpadded. Matches CalcBufferSize_IMCx's non-interlaced branch: chroma
// rows are addressed at the luma stride, not half of it.
func imcTotalRows(height int) int {
	chromaH := height / 2
	return alignUp16(height+chromaH) + chromaH
}

// CalculateBufferSize returns the minimum number of bytes a caller must
// allocate to hold a width x height image in the given format with the
// given stride (0 meaning "derive the minimum from width"). When
// GetUseFasterLooping is true, RGB24 and IYU2 get one trailing sentinel
// byte appended; this package's own kernels never read or write it.
func CalculateBufferSize(id FormatId, width, height, stride int) int {
	d, ok := registry[id]
	if !ok {
		return 0
	}
	if stride == 0 {
		stride = MinStride(id, width)
	}

	var size int
	switch d.Family {
	case FamilyYUVPlanar, FamilyYUVSemiPlanar:
		if id == FormatIMC1 || id == FormatIMC3 {
			size = imcTotalRows(height) * stride
		} else {
			size = height * stride
			if d.Planes.SemiPlanar {
				size += chromaPlaneSize(id, d, width, height, stride)
			} else {
				size += 2 * chromaPlaneSize(id, d, width, height, stride)
			}
		}
	default:
		size = height * stride
	}

	if useFasterLooping && (id == FormatRGB24 || id == FormatIYU2) {
		size++
	}
	return size
}
