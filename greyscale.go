package blipvert

import (
	"github.com/blipvert-go/blipvert/internal/colorspace"
	"github.com/blipvert-go/blipvert/internal/kernel"
)

func rgbLayoutFor(id FormatId) (kernel.RGBLayout, bool) {
	switch id {
	case FormatRGB32:
		return kernel.LayoutRGB32, true
	case FormatRGBA:
		return kernel.LayoutRGBA, true
	case FormatRGB24:
		return kernel.LayoutRGB24, true
	case FormatRGB565:
		return kernel.LayoutRGB565, true
	case FormatRGB555:
		return kernel.LayoutRGB555, true
	}
	return kernel.RGBLayout{}, false
}

func lumaOf(r, g, b uint8) uint8 {
	y, _, _ := colorspace.FastRGBToYUV(r, g, b)
	return y
}

// rgbaGreyscaleTable re-encodes a studio-range Y sample (as lumaOf
// produces) back into a full-range RGB grey level, per spec.md §4.4.2's
// "rgba_greyscale lookup table". lumaOf's BT.601 coefficients compress
// full-range input toward the studio range, so writing lumaOf's output
// straight back as R=G=B would not be idempotent: grey(grey(x)) would
// keep compressing toward mid-grey on every pass. Each entry is instead
// the full-range grey level v whose own lumaOf(v,v,v) lands closest to
// that index, so re-deriving Y from an already-greyed pixel and looking
// it up again reproduces the same v exactly (testable property 5).
var rgbaGreyscaleTable [256]uint8

func init() {
	var forward [256]uint8
	for v := 0; v < 256; v++ {
		forward[v] = lumaOf(uint8(v), uint8(v), uint8(v))
	}
	for y := 0; y < 256; y++ {
		bestV, bestDiff := 0, 1<<30
		for v := 0; v < 256; v++ {
			diff := int(forward[v]) - y
			if diff < 0 {
				diff = -diff
			}
			if diff < bestDiff {
				bestDiff, bestV = diff, v
			}
		}
		rgbaGreyscaleTable[y] = uint8(bestV)
	}
}

// ToGreyscale converts a width x height image of format id to
// greyscale in place. Packed RGB formats have every pixel's three
// channels set to the grey level rgbaGreyscaleTable maps its luma to
// (alpha untouched). Palettized formats
// instead grey out the shared palette in place, leaving pixel indices
// untouched — callers must pass the same palette slice the image was
// built against. Every YUV layout zeroes its chroma samples (not the
// neutral 128 a blank frame decodes as) and leaves luma alone.
func ToGreyscale(id FormatId, width, height int, buf []byte, stride int, palette []PaletteEntry) {
	d, ok := registry[id]
	if !ok {
		return
	}
	if stride == 0 {
		stride = MinStride(id, width)
	}

	switch d.Family {
	case FamilyRGBPacked:
		layout, _ := rgbLayoutFor(id)
		greyscaleRGBPacked(width, height, buf, stride, layout)
	case FamilyPalettized:
		greyscalePalette(palette)
	case FamilyYUV422Packed:
		off := offsets422For(id)
		greyscalePacked422Chroma(width, height, buf, stride, off)
	case FamilyYUV444Packed:
		greyscaleAYUV(width, height, buf, stride)
	case FamilyYUVPlanar:
		greyscalePlanarChroma(id, d, width, height, buf, stride)
	case FamilyYUVSemiPlanar:
		greyscaleSemiPlanarChroma(d, width, height, buf, stride)
	case FamilyYUVSubByte:
		greyscaleSubByte(id, width, height, buf, stride)
	case FamilyYUVInterlaced:
		greyscaleInterlaced(id, width, height, buf, stride)
	}
}

func rgbWord(row []byte, i, n int) uint32 {
	var w uint32
	for b := 0; b < n; b++ {
		w |= uint32(row[i+b]) << (8 * b)
	}
	return w
}

func setRGBWord(row []byte, i, n int, w uint32) {
	for b := 0; b < n; b++ {
		row[i+b] = byte(w >> (8 * b))
	}
}

func greyscaleRGBPacked(width, height int, buf []byte, stride int, layout kernel.RGBLayout) {
	mask := func(bits int) uint32 { return (1 << uint(bits)) - 1 }
	for y := 0; y < height; y++ {
		row := kernel.Row(buf, stride, y, width*layout.BytesPerPixel)
		for x := 0; x < width; x++ {
			i := x * layout.BytesPerPixel
			word := rgbWord(row, i, layout.BytesPerPixel)
			r := uint8((word >> uint(layout.RShift)) & mask(layout.RBits))
			g := uint8((word >> uint(layout.GShift)) & mask(layout.GBits))
			b := uint8((word >> uint(layout.BShift)) & mask(layout.BBits))
			if layout.RBits < 8 {
				r <<= uint(8 - layout.RBits)
			}
			if layout.GBits < 8 {
				g <<= uint(8 - layout.GBits)
			}
			if layout.BBits < 8 {
				b <<= uint(8 - layout.BBits)
			}
			grey := rgbaGreyscaleTable[lumaOf(r, g, b)]

			newR := uint32(grey) >> uint(8-layout.RBits)
			newG := uint32(grey) >> uint(8-layout.GBits)
			newB := uint32(grey) >> uint(8-layout.BBits)
			word = (word &^ (mask(layout.RBits) << uint(layout.RShift))) | (newR << uint(layout.RShift))
			word = (word &^ (mask(layout.GBits) << uint(layout.GShift))) | (newG << uint(layout.GShift))
			word = (word &^ (mask(layout.BBits) << uint(layout.BShift))) | (newB << uint(layout.BShift))
			setRGBWord(row, i, layout.BytesPerPixel, word)
		}
	}
}

func greyscalePalette(palette []PaletteEntry) {
	for i := range palette {
		grey := rgbaGreyscaleTable[lumaOf(palette[i].R, palette[i].G, palette[i].B)]
		palette[i].R, palette[i].G, palette[i].B = grey, grey, grey
	}
}

func greyscalePacked422Chroma(width, height int, buf []byte, stride int, off kernel.Offsets422) {
	for y := 0; y < height; y++ {
		row := kernel.Row(buf, stride, y, width*2)
		for x := 0; x < width; x += 2 {
			i := x * 2
			row[i+off.U] = 0
			row[i+off.V] = 0
		}
	}
}

func greyscaleAYUV(width, height int, buf []byte, stride int) {
	for y := 0; y < height; y++ {
		row := kernel.Row(buf, stride, y, width*4)
		for x := 0; x < width; x++ {
			i := x * 4
			row[i+1] = 0
			row[i+2] = 0
		}
	}
}

func greyscalePlanarChroma(id FormatId, d FormatDescriptor, width, height int, buf []byte, stride int) {
	chromaH := height / d.Planes.VertDecimation
	chromaW := width / d.Planes.HorizDecimation

	switch id {
	case FormatIMC1, FormatIMC2, FormatIMC3, FormatIMC4:
		layout := kernel.IMCPlaneLayout(width, height, stride, id == FormatIMC2 || id == FormatIMC4, id == FormatIMC3 || id == FormatIMC4)
		if d.Planes.Interlaced {
			half := stride / 2
			zeroPlaneStrided(buf[layout.UOffset:], chromaH, half, layout.UStride)
			zeroPlaneStrided(buf[layout.VOffset:], chromaH, half, layout.VStride)
			return
		}
		zeroPlane(buf[layout.UOffset:], chromaH, layout.UStride, chromaW)
		zeroPlane(buf[layout.VOffset:], chromaH, layout.VStride, chromaW)
		return
	}

	ySize := height * stride
	uOff, vOff := ySize, ySize+chromaW*chromaH
	zeroPlane(buf[uOff:], chromaH, chromaW, chromaW)
	zeroPlane(buf[vOff:], chromaH, chromaW, chromaW)
}

func greyscaleSemiPlanarChroma(d FormatDescriptor, width, height int, buf []byte, stride int) {
	ySize := height * stride
	chromaH := height / d.Planes.VertDecimation
	chromaW := width / d.Planes.HorizDecimation
	zeroPlane(buf[ySize:], chromaH, chromaW*2, chromaW*2)
}

func zeroPlane(planeBuf []byte, rows, stride, width int) {
	for y := 0; y < rows; y++ {
		row := kernel.Row(planeBuf, stride, y, width)
		for i := range row {
			row[i] = 0
		}
	}
}

// zeroPlaneStrided is zeroPlane for a plane whose rows are narrower
// than the stride used to step between them (IMC2/IMC4's side-by-side
// chroma half-rows).
func zeroPlaneStrided(planeBuf []byte, rows, rowBytes, rowStride int) {
	for y := 0; y < rows; y++ {
		row := kernel.Row(planeBuf, rowStride, y, rowBytes)
		for i := range row {
			row[i] = 0
		}
	}
}

func greyscaleSubByte(id FormatId, width, height int, buf []byte, stride int) {
	for y := 0; y < height; y++ {
		switch id {
		case FormatIYU1:
			row := kernel.Row(buf, stride, y, width*12/8)
			for x := 0; x < width; x += 4 {
				i := x * 6 / 4
				row[i+0], row[i+3] = 0, 0
			}
		case FormatIYU2:
			row := kernel.Row(buf, stride, y, width*3)
			for x := 0; x < width; x++ {
				i := x * 3
				row[i+0], row[i+2] = 0, 0
			}
		case FormatY41P, FormatY41T:
			row := kernel.Row(buf, stride, y, width*12/8)
			for x := 0; x < width; x += 8 {
				i := x * 12 / 8
				row[i+0], row[i+2], row[i+4], row[i+6] = 0, 0, 0, 0
			}
		case FormatCLJR:
			row := kernel.Row(buf, stride, y, width)
			for x := 0; x < width; x += 4 {
				word := uint32(row[x]) | uint32(row[x+1])<<8 | uint32(row[x+2])<<16 | uint32(row[x+3])<<24
				word &^= 0xFFF00000
				row[x], row[x+1], row[x+2], row[x+3] = byte(word), byte(word>>8), byte(word>>16), byte(word>>24)
			}
		}
	}
}

// greyscaleInterlaced zeroes chroma for the interlaced row-order
// variants, whose per-row macropixel layout is identical to their
// progressive counterpart (UYVY for IUYV, Y41P for IY41) since
// interlacing only reorders whole rows, not bytes within a row.
func greyscaleInterlaced(id FormatId, width, height int, buf []byte, stride int) {
	switch id {
	case FormatUYVYInterlaced:
		greyscalePacked422Chroma(width, height, buf, stride, offsets422For(FormatUYVY))
	case FormatY41PInterlaced:
		greyscaleSubByte(FormatY41P, width, height, buf, stride)
	}
}
