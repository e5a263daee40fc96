package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// Transform converts one width x height frame from its source format to
// its destination format in place across two caller-owned buffers.
// flipped inverts vertical orientation per plane; palette is consulted
// only when the source or destination format is palettized.
type Transform func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, palette []PaletteEntry)

// GreyscaleFunc reduces a single buffer to a visually neutral greyscale
// image in place, per ToGreyscale's rules.
type GreyscaleFunc func(width, height int, buf []byte, stride int, palette []PaletteEntry)

// FillFunc writes a solid color across a single buffer, per Fill's
// rules.
type FillFunc func(ry, gu, bv, alpha uint8, width, height int, buf []byte, stride int)

// CheckFunc reports whether buf already holds the uniform color that
// Fill would write for the same parameters, used by the test harness to
// validate round trips without per-format pixel-decoding logic of its
// own (testable property 4).
type CheckFunc func(ry, gu, bv, alpha uint8, width, height int, buf []byte, stride int) bool

var (
	transformTable  = map[[2]FormatId]Transform{}
	greyscaleTable  = map[FormatId]GreyscaleFunc{}
	fillTable       = map[FormatId]FillFunc{}
	checkTable      = map[FormatId]CheckFunc{}
)

func register(src, dst FormatId, t Transform) {
	transformTable[[2]FormatId{src, dst}] = t
}

// FindVideoTransform returns the converter for (src,dst), or nil if the
// pair has no direct kernel.
func FindVideoTransform(src, dst FormatId) Transform {
	return transformTable[[2]FormatId{src, dst}]
}

// FindGreyscaleTransform returns the greyscale reducer for format id, or
// nil if id is unknown.
func FindGreyscaleTransform(id FormatId) GreyscaleFunc {
	return greyscaleTable[id]
}

// FindFillColorTransform returns the fill routine for format id, or nil
// if id is unknown.
func FindFillColorTransform(id FormatId) FillFunc {
	return fillTable[id]
}

// FindBufferCheck returns the fill-verification routine for format id,
// or nil if id is unknown.
func FindBufferCheck(id FormatId) CheckFunc {
	return checkTable[id]
}

func init() {
	for id := range registry {
		id := id
		d := registry[id]
		greyscaleTable[id] = func(width, height int, buf []byte, stride int, palette []PaletteEntry) {
			ToGreyscale(id, width, height, buf, stride, palette)
		}
		fillTable[id] = func(ry, gu, bv, alpha uint8, width, height int, buf []byte, stride int) {
			Fill(id, ry, gu, bv, alpha, width, height, buf, stride)
		}
		checkTable[id] = func(ry, gu, bv, alpha uint8, width, height int, buf []byte, stride int) bool {
			return checkFilled(id, d, ry, gu, bv, alpha, width, height, buf, stride)
		}
	}

	registerRGBToRGB()
	registerPalettizedToRGB()
	registerRGBPacked422()
	registerPacked422ToPacked422()
	registerPacked422Planar()
	registerPlanarToPlanar()
	registerPlanarSemiPlanar()
	registerSemiPlanarToSemiPlanar()
	registerRGBPlanar()
	registerAYUV()
	registerSubByte()
	registerPlanarToSubByte()
	registerGreyscaleFormats()
	registerInterlaced()
}

// checkFilled verifies buf already holds the uniform color Fill would
// write, by filling a scratch buffer of the same size and comparing
// byte-for-byte. This sidesteps writing a second, per-format pixel
// decoder solely for test verification: routine test-harness plumbing,
// per spec's own characterization of find_buffer_check.
func checkFilled(id FormatId, d FormatDescriptor, ry, gu, bv, alpha uint8, width, height int, buf []byte, stride int) bool {
	if stride == 0 {
		stride = MinStride(id, width)
	}
	size := CalculateBufferSize(id, width, height, stride)
	if len(buf) < size {
		return false
	}
	scratch := make([]byte, size)
	Fill(id, ry, gu, bv, alpha, width, height, scratch, stride)
	for i := 0; i < size; i++ {
		if buf[i] != scratch[i] {
			return false
		}
	}
	return true
}

var rgbFormats = []FormatId{FormatRGB32, FormatRGBA, FormatRGB24, FormatRGB565, FormatRGB555}
var palettizedFormats = []FormatId{FormatRGB8, FormatRGB4, FormatRGB1}
var packed422Formats = []FormatId{FormatYUY2, FormatUYVY, FormatYVYU, FormatVYUY, FormatY42T}

// planarQuadFormats share 2x2 chroma decimation and a simple (non-IMC)
// plane layout.
var planarQuadFormats = []FormatId{FormatIYUV, FormatYV12}

// planarNonaFormats share 4x4 chroma decimation.
var planarNonaFormats = []FormatId{FormatYUV9, FormatYVU9}

// imcFormats share 2x2 chroma decimation with DirectShow-specific
// in-buffer plane placement.
var imcFormats = []FormatId{FormatIMC1, FormatIMC2, FormatIMC3, FormatIMC4}

// decim2PlanarFormats is every planar format whose chroma is 2x2
// sub-sampled, spanning both plane-layout families.
var decim2PlanarFormats = append(append([]FormatId{}, planarQuadFormats...), imcFormats...)

var semiPlanarFormats = []FormatId{FormatNV12, FormatNV21}
var subByteFormats = []FormatId{FormatIYU1, FormatIYU2, FormatY41P, FormatY41T, FormatCLJR}

func rgbLayout(id FormatId) kernel.RGBLayout {
	l, _ := rgbLayoutFor(id)
	return l
}

func registerRGBToRGB() {
	for _, s := range rgbFormats {
		for _, t := range rgbFormats {
			if s == t {
				continue
			}
			s, t := s, t
			srcLayout, dstLayout := rgbLayout(s), rgbLayout(t)
			register(s, t, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(t, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(s, width)
				}
				kernel.RGBToRGB(width, height, dst, dstStride, dstLayout, src, srcStride, srcLayout, flipped)
			})
		}
	}
}

func registerPalettizedToRGB() {
	for _, s := range palettizedFormats {
		for _, t := range rgbFormats {
			s, t := s, t
			pixelBits := registry[s].EffectiveBPP
			dstLayout := rgbLayout(t)
			register(s, t, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, palette []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(t, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(s, width)
				}
				kernel.PalettizedToRGB(width, height, pixelBits, dst, dstStride, dstLayout, src, srcStride, palette, flipped)
			})
		}
	}
}

func registerRGBPacked422() {
	for _, r := range rgbFormats {
		for _, p := range packed422Formats {
			r, p := r, p
			rLayout := rgbLayout(r)
			pOff := offsets422For(p)
			register(r, p, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(p, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(r, width)
				}
				kernel.RGBToPacked422(width, height, dst, dstStride, pOff, src, srcStride, rLayout, flipped, kernel.ConvFast)
			})
			register(p, r, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(r, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(p, width)
				}
				kernel.Packed422ToRGB(width, height, dst, dstStride, rLayout, src, srcStride, pOff, flipped, kernel.ConvFast)
			})
		}
	}
}

func registerPacked422ToPacked422() {
	for _, s := range packed422Formats {
		for _, t := range packed422Formats {
			if s == t {
				continue
			}
			s, t := s, t
			sOff, tOff := offsets422For(s), offsets422For(t)
			register(s, t, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(t, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(s, width)
				}
				kernel.Packed422ToPacked422(width, height, dst, dstStride, src, srcStride, flipped, sOff, tOff)
			})
		}
	}
}

// planarChromaDecim returns the vertical decimation Packed422ToPlanarYUV
// / PlanarYUVToPacked422 expect for a planar format's pairing with a
// packed 4:2:2 source/destination. Both kernels also take a decim of 4
// to mean 4:1 horizontal chroma decimation on the planar side (YUV9/YVU9);
// otherwise the planar side's horizontal decimation is 2.
func planarChromaDecim(id FormatId) int {
	switch id {
	case FormatYV16:
		return 1
	case FormatYUV9, FormatYVU9:
		return 4
	default:
		return 2
	}
}

func registerPacked422Planar() {
	planarFmts := append(append(append([]FormatId{FormatYV16}, planarQuadFormats...), planarNonaFormats...), imcFormats...)
	for _, pk := range packed422Formats {
		for _, pl := range planarFmts {
			pk, pl := pk, pl
			pkOff := offsets422For(pk)
			decim := planarChromaDecim(pl)
			plDesc := registry[pl]
			register(pk, pl, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if srcStride == 0 {
					srcStride = MinStride(pk, width)
				}
				if dstStride == 0 {
					dstStride = MinStride(pl, width)
				}
				yPlane, uPlane, vPlane, yStride, uStride, vStride := planarSlices(pl, plDesc, dst, width, height, dstStride)
				kernel.Packed422ToPlanarYUV(width, height, yPlane, yStride, uPlane, uStride, vPlane, vStride, src, srcStride, flipped, pkOff, decim)
			})
			register(pl, pk, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(pk, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(pl, width)
				}
				yPlane, uPlane, vPlane, yStride, uStride, vStride := planarSlices(pl, plDesc, src, width, height, srcStride)
				kernel.PlanarYUVToPacked422(width, height, dst, dstStride, yPlane, yStride, uPlane, uStride, vPlane, vStride, flipped, pkOff, decim)
			})
		}
	}
}

// registerPlanarGroup wires every directed pair within a set of planar
// formats that share the same chroma decimation on both axes, via
// PlanarYUVToPlanarYUV.
func registerPlanarGroup(group []FormatId, decim int) {
	for _, s := range group {
		for _, t := range group {
			if s == t {
				continue
			}
			s, t := s, t
			sDesc, tDesc := registry[s], registry[t]
			register(s, t, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(t, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(s, width)
				}
				ySrc, uSrc, vSrc, ySrcStride, uSrcStride, vSrcStride := planarSlices(s, sDesc, src, width, height, srcStride)
				yDst, uDst, vDst, yDstStride, uDstStride, vDstStride := planarSlices(t, tDesc, dst, width, height, dstStride)
				kernel.PlanarYUVToPlanarYUV(width, height,
					yDst, yDstStride, uDst, uDstStride, vDst, vDstStride,
					ySrc, ySrcStride, uSrc, uSrcStride, vSrc, vSrcStride,
					flipped, decim, decim)
			})
		}
	}
}

func registerPlanarToPlanar() {
	registerPlanarGroup(decim2PlanarFormats, 2)
	registerPlanarGroup(planarNonaFormats, 4)
}

func registerPlanarSemiPlanar() {
	for _, pl := range planarQuadFormats {
		for _, sp := range semiPlanarFormats {
			pl, sp := pl, sp
			plDesc, spDesc := registry[pl], registry[sp]
			order := kernel.UVOrder{U: 0, V: 1}
			if sp == FormatNV21 {
				order = kernel.UVOrder{U: 1, V: 0}
			}
			register(pl, sp, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(sp, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(pl, width)
				}
				ySrc, uSrc, vSrc, ySrcStride, uSrcStride, vSrcStride := planarSlices(pl, plDesc, src, width, height, srcStride)
				yDst, uvDst, yDstStride, uvDstStride := semiPlanarSlices(spDesc, dst, width, height, dstStride)
				kernel.PlanarYUVToSemiPlanar(width, height, yDst, yDstStride, uvDst, uvDstStride, ySrc, ySrcStride, uSrc, uSrcStride, vSrc, vSrcStride, flipped, order)
			})
			register(sp, pl, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(pl, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(sp, width)
				}
				ySrc, uvSrc, ySrcStride, uvSrcStride := semiPlanarSlices(spDesc, src, width, height, srcStride)
				yDst, uDst, vDst, yDstStride, uDstStride, vDstStride := planarSlices(pl, plDesc, dst, width, height, dstStride)
				kernel.SemiPlanarToPlanarYUV(width, height, yDst, yDstStride, uDst, uDstStride, vDst, vDstStride, ySrc, ySrcStride, uvSrc, uvSrcStride, flipped, order)
			})
		}
	}
}

func registerSemiPlanarToSemiPlanar() {
	register(FormatNV12, FormatNV21, swapSemiPlanarUV)
	register(FormatNV21, FormatNV12, swapSemiPlanarUV)
}

// swapSemiPlanarUV converts NV12<->NV21: the luma plane copies
// verbatim, the chroma plane's U/V byte pairs swap order.
func swapSemiPlanarUV(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
	d := registry[FormatNV12]
	if dstStride == 0 {
		dstStride = MinStride(FormatNV12, width)
	}
	if srcStride == 0 {
		srcStride = MinStride(FormatNV12, width)
	}
	ySrc, uvSrc, ySrcStride, uvSrcStride := semiPlanarSlices(d, src, width, height, srcStride)
	yDst, uvDst, yDstStride, uvDstStride := semiPlanarSlices(d, dst, width, height, dstStride)
	chromaW := width / 2
	chromaH := height / 2
	for y := 0; y < height; y++ {
		dy := kernel.DstRow(y, height, flipped)
		copy(kernel.Row(yDst, yDstStride, dy, width), kernel.Row(ySrc, ySrcStride, y, width))
	}
	for cy := 0; cy < chromaH; cy++ {
		dcy := kernel.DstRow(cy, chromaH, flipped)
		srow := kernel.Row(uvSrc, uvSrcStride, cy, chromaW*2)
		drow := kernel.Row(uvDst, uvDstStride, dcy, chromaW*2)
		for cx := 0; cx < chromaW; cx++ {
			drow[cx*2], drow[cx*2+1] = srow[cx*2+1], srow[cx*2]
		}
	}
}

func registerRGBPlanar() {
	planarFmts := append(append([]FormatId{}, planarQuadFormats...), planarNonaFormats...)
	planarFmts = append(planarFmts, imcFormats...)
	for _, r := range rgbFormats {
		for _, pl := range planarFmts {
			r, pl := r, pl
			rLayout := rgbLayout(r)
			plDesc := registry[pl]
			decim := plDesc.Planes.HorizDecimation
			register(r, pl, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(pl, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(r, width)
				}
				yDst, uDst, vDst, yStride, uStride, vStride := planarSlices(pl, plDesc, dst, width, height, dstStride)
				kernel.RGBToPlanarYUV(width, height, yDst, yStride, uDst, uStride, vDst, vStride, src, srcStride, rLayout, flipped, decim, kernel.ConvFast)
			})
			register(pl, r, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if dstStride == 0 {
					dstStride = MinStride(r, width)
				}
				if srcStride == 0 {
					srcStride = MinStride(pl, width)
				}
				ySrc, uSrc, vSrc, yStride, uStride, vStride := planarSlices(pl, plDesc, src, width, height, srcStride)
				kernel.PlanarYUVToRGB(width, height, dst, dstStride, rLayout, ySrc, yStride, uSrc, uStride, vSrc, vStride, flipped, decim, kernel.ConvFast)
			})
		}
	}
}

func registerAYUV() {
	for _, p := range packed422Formats {
		p := p
		pOff := offsets422For(p)
		register(FormatAYUV, p, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(p, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(FormatAYUV, width)
			}
			kernel.AYUVToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		})
		register(p, FormatAYUV, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(FormatAYUV, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(p, width)
			}
			kernel.Packed422ToAYUV(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		})
	}
	for _, r := range rgbFormats {
		r := r
		rLayout := rgbLayout(r)
		register(FormatAYUV, r, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(r, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(FormatAYUV, width)
			}
			kernel.AYUVToRGB(width, height, dst, dstStride, rLayout, src, srcStride, flipped, kernel.ConvFast)
		})
		register(r, FormatAYUV, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(FormatAYUV, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(r, width)
			}
			kernel.RGBToAYUV(width, height, dst, dstStride, src, srcStride, rLayout, flipped, kernel.ConvFast)
		})
	}
}

func registerSubByte() {
	for _, p := range packed422Formats {
		for _, sb := range subByteFormats {
			p, sb := p, sb
			pOff := offsets422For(p)
			register(p, sb, packed422ToSubByte(p, sb, pOff))
			register(sb, p, subByteToPacked422(p, sb, pOff))
		}
	}
}

// registerPlanarToSubByte wires a direct Transform entry for every
// {IYUV,YV12} <-> {IYU1,IYU2,Y41P,CLJR} pair, per spec.md §4.4.1's
// generic-kernel list. Rather than duplicating the chroma-upsampling
// math PlanarYUVToPacked422 already implements (and that
// registerPacked422Planar already exercises for planar<->packed 4:2:2
// pairs), each direction composes the existing, already-tested
// PlanarYUVToPacked422/Packed422ToPlanarYUV kernel with the existing
// packed422ToSubByte/subByteToPacked422 kernel through a YUY2-shaped
// scratch buffer private to the call — one registered Transform, not a
// second hop the caller has to know to make.
func registerPlanarToSubByte() {
	scratchOff := offsets422For(FormatYUY2)
	for _, pl := range planarQuadFormats {
		for _, sb := range subByteFormats {
			pl, sb := pl, sb
			plDesc := registry[pl]
			decim := planarChromaDecim(pl)

			register(pl, sb, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if srcStride == 0 {
					srcStride = MinStride(pl, width)
				}
				if dstStride == 0 {
					dstStride = MinStride(sb, width)
				}
				scratchStride := MinStride(FormatYUY2, width)
				scratch := make([]byte, scratchStride*height)
				ySrc, uSrc, vSrc, yStride, uStride, vStride := planarSlices(pl, plDesc, src, width, height, srcStride)
				kernel.PlanarYUVToPacked422(width, height, scratch, scratchStride, ySrc, yStride, uSrc, uStride, vSrc, vStride, flipped, scratchOff, decim)
				packed422ToSubByte(FormatYUY2, sb, scratchOff)(width, height, dst, dstStride, scratch, scratchStride, false, nil)
			})
			register(sb, pl, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
				if srcStride == 0 {
					srcStride = MinStride(sb, width)
				}
				if dstStride == 0 {
					dstStride = MinStride(pl, width)
				}
				scratchStride := MinStride(FormatYUY2, width)
				scratch := make([]byte, scratchStride*height)
				subByteToPacked422(FormatYUY2, sb, scratchOff)(width, height, scratch, scratchStride, src, srcStride, false, nil)
				yDst, uDst, vDst, yStride, uStride, vStride := planarSlices(pl, plDesc, dst, width, height, dstStride)
				kernel.Packed422ToPlanarYUV(width, height, yDst, yStride, uDst, uStride, vDst, vStride, scratch, scratchStride, flipped, scratchOff, decim)
			})
		}
	}
}

func packed422ToSubByte(p, sb FormatId, pOff kernel.Offsets422) Transform {
	return func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
		if dstStride == 0 {
			dstStride = MinStride(sb, width)
		}
		if srcStride == 0 {
			srcStride = MinStride(p, width)
		}
		switch sb {
		case FormatIYU1:
			kernel.Packed422ToIYU1(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		case FormatIYU2:
			kernel.Packed422ToIYU2(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		case FormatY41P, FormatY41T:
			kernel.Packed422ToY41P(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		case FormatCLJR:
			kernel.Packed422ToCLJR(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		}
	}
}

func subByteToPacked422(p, sb FormatId, pOff kernel.Offsets422) Transform {
	return func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
		if dstStride == 0 {
			dstStride = MinStride(p, width)
		}
		if srcStride == 0 {
			srcStride = MinStride(sb, width)
		}
		switch sb {
		case FormatIYU1:
			kernel.IYU1ToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		case FormatIYU2:
			kernel.IYU2ToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		case FormatY41P, FormatY41T:
			kernel.Y41PToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		case FormatCLJR:
			kernel.CLJRToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		}
	}
}

func registerGreyscaleFormats() {
	for _, p := range packed422Formats {
		p := p
		pOff := offsets422For(p)
		register(p, FormatY800, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(FormatY800, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(p, width)
			}
			kernel.Packed422ToY800(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		})
		register(FormatY800, p, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(p, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(FormatY800, width)
			}
			kernel.Y800ToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		})
		register(p, FormatY16, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(FormatY16, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(p, width)
			}
			kernel.Packed422ToY16(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		})
		register(FormatY16, p, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
			if dstStride == 0 {
				dstStride = MinStride(p, width)
			}
			if srcStride == 0 {
				srcStride = MinStride(FormatY16, width)
			}
			kernel.Y16ToPacked422(width, height, dst, dstStride, src, srcStride, flipped, pOff)
		})
	}
}

func registerInterlaced() {
	register(FormatUYVYInterlaced, FormatUYVY, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
		if dstStride == 0 {
			dstStride = MinStride(FormatUYVY, width)
		}
		if srcStride == 0 {
			srcStride = MinStride(FormatUYVYInterlaced, width)
		}
		kernel.Deinterlace(height, width*2, dst, dstStride, src, srcStride, flipped)
	})
	register(FormatUYVY, FormatUYVYInterlaced, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
		if dstStride == 0 {
			dstStride = MinStride(FormatUYVYInterlaced, width)
		}
		if srcStride == 0 {
			srcStride = MinStride(FormatUYVY, width)
		}
		kernel.Interlace(height, width*2, dst, dstStride, src, srcStride, flipped)
	})
	register(FormatY41PInterlaced, FormatY41P, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
		if dstStride == 0 {
			dstStride = MinStride(FormatY41P, width)
		}
		if srcStride == 0 {
			srcStride = MinStride(FormatY41PInterlaced, width)
		}
		kernel.Deinterlace(height, width*12/8, dst, dstStride, src, srcStride, flipped)
	})
	register(FormatY41P, FormatY41PInterlaced, func(width, height int, dst []byte, dstStride int, src []byte, srcStride int, flipped bool, _ []PaletteEntry) {
		if dstStride == 0 {
			dstStride = MinStride(FormatY41PInterlaced, width)
		}
		if srcStride == 0 {
			srcStride = MinStride(FormatY41P, width)
		}
		kernel.Interlace(height, width*12/8, dst, dstStride, src, srcStride, flipped)
	})
}
