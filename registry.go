package blipvert

import "fmt"

// FormatId identifies a supported pixel format. It is a small comparable
// value suitable as a map key, per spec.
type FormatId int

// Supported format identifiers. Names follow the long-standing fourcc.org
// registry except for the palettized and bitmap RGB variants, which have
// no fourcc of their own and are named for their bit depth instead.
const (
	FormatUnknown FormatId = iota

	// RGB, no alpha.
	FormatRGB32
	FormatRGB24
	FormatRGB565
	FormatRGB555
	FormatRGB8
	FormatRGB4
	FormatRGB1

	// RGB, with alpha.
	FormatRGBA

	// YUV packed 4:2:2.
	FormatYUY2
	FormatUYVY
	FormatYVYU
	FormatVYUY

	// YUV packed 4:4:4 (with alpha).
	FormatAYUV

	// YUV planar.
	FormatIYUV // a.k.a. I420
	FormatYV12
	FormatYUV9
	FormatYVU9
	FormatYV16

	// YUV semi-planar.
	FormatNV12
	FormatNV21

	// YUV planar, DirectShow IMC layouts.
	FormatIMC1
	FormatIMC2
	FormatIMC3
	FormatIMC4

	// YUV sub-byte packed.
	FormatIYU1
	FormatIYU2
	FormatY41P
	FormatCLJR

	// YUV interlaced row order (even rows, then odd rows).
	FormatUYVYInterlaced // IUYV
	FormatY41PInterlaced // IY41

	// YUV 4:2:2 (Y42T) and 4:1:1 (Y41T), upper/lower field tagged (same layout as their
	// progressive counterpart; greyscale/fill share the UYVY/Y41P path).
	FormatY42T
	FormatY41T

	// Greyscale.
	FormatY800
	FormatY16

	numFormats
)

// Family groups formats that share a generic kernel shape, per the
// polymorphism-over-formats design: kernels dispatch on a pair of
// families plus a small parameter set, not on the full N*N format
// product.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyRGBPacked
	FamilyPalettized
	FamilyYUV422Packed
	FamilyYUV444Packed
	FamilyYUVPlanar
	FamilyYUVSemiPlanar
	FamilyYUVSubByte
	FamilyYUVInterlaced
	FamilyGreyscale8
	FamilyGreyscale16
)

// PlaneLayout describes the sub-sampling lattice and plane ordering of a
// multi-plane format.
type PlaneLayout struct {
	HorizDecimation int  // chroma horizontal sub-sampling factor (1, 2, or 4)
	VertDecimation  int  // chroma vertical sub-sampling factor (1, 2, or 4)
	UFirst          bool // U plane precedes V plane in memory
	SemiPlanar      bool // U and V are interleaved in one plane (NV12/NV21)
	Interlaced      bool // IMC2/IMC4: chroma rows concatenated side by side
}

// FormatDescriptor is the registry entry for a FormatId.
type FormatDescriptor struct {
	Id           FormatId
	Name         string // short ASCII name, e.g. "YUY2"
	FourCC       uint32
	XRefFourCC   uint32 // canonical alias this format's fourcc resolves to; 0 if canonical itself
	EffectiveBPP int    // bits per pixel, averaged over the full frame for sub-sampled formats
	Family       Family
	Planes       PlaneLayout // zero value for single-plane formats
}

func fourcc(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

var registry = map[FormatId]FormatDescriptor{
	FormatRGB32:  {Id: FormatRGB32, Name: "RGB32", FourCC: fourcc('R', 'G', 'B', 'X'), EffectiveBPP: 32, Family: FamilyRGBPacked},
	FormatRGB24:  {Id: FormatRGB24, Name: "RGB24", FourCC: fourcc('R', 'G', 'B', '3'), EffectiveBPP: 24, Family: FamilyRGBPacked},
	FormatRGB565: {Id: FormatRGB565, Name: "RGB565", FourCC: fourcc('R', 'G', 'B', 'P'), EffectiveBPP: 16, Family: FamilyRGBPacked},
	FormatRGB555: {Id: FormatRGB555, Name: "RGB555", FourCC: fourcc('R', 'G', 'B', 'O'), EffectiveBPP: 16, Family: FamilyRGBPacked},
	FormatRGB8:   {Id: FormatRGB8, Name: "RGB8", FourCC: fourcc('R', 'G', 'B', '8'), EffectiveBPP: 8, Family: FamilyPalettized},
	FormatRGB4:   {Id: FormatRGB4, Name: "RGB4", FourCC: fourcc('R', 'G', 'B', '4'), EffectiveBPP: 4, Family: FamilyPalettized},
	FormatRGB1:   {Id: FormatRGB1, Name: "RGB1", FourCC: fourcc('R', 'G', 'B', '1'), EffectiveBPP: 1, Family: FamilyPalettized},

	FormatRGBA: {Id: FormatRGBA, Name: "RGBA", FourCC: fourcc('R', 'G', 'B', 'A'), EffectiveBPP: 32, Family: FamilyRGBPacked},

	FormatYUY2: {Id: FormatYUY2, Name: "YUY2", FourCC: fourcc('Y', 'U', 'Y', '2'), EffectiveBPP: 16, Family: FamilyYUV422Packed},
	FormatUYVY: {Id: FormatUYVY, Name: "UYVY", FourCC: fourcc('U', 'Y', 'V', 'Y'), EffectiveBPP: 16, Family: FamilyYUV422Packed},
	FormatYVYU: {Id: FormatYVYU, Name: "YVYU", FourCC: fourcc('Y', 'V', 'Y', 'U'), EffectiveBPP: 16, Family: FamilyYUV422Packed},
	FormatVYUY: {Id: FormatVYUY, Name: "VYUY", FourCC: fourcc('V', 'Y', 'U', 'Y'), EffectiveBPP: 16, Family: FamilyYUV422Packed},

	FormatAYUV: {Id: FormatAYUV, Name: "AYUV", FourCC: fourcc('A', 'Y', 'U', 'V'), EffectiveBPP: 32, Family: FamilyYUV444Packed},

	FormatIYUV: {Id: FormatIYUV, Name: "IYUV", FourCC: fourcc('I', 'Y', 'U', 'V'), EffectiveBPP: 12, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: true}},
	FormatYV12: {Id: FormatYV12, Name: "YV12", FourCC: fourcc('Y', 'V', '1', '2'), EffectiveBPP: 12, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: false}},
	FormatYUV9: {Id: FormatYUV9, Name: "YUV9", FourCC: fourcc('Y', 'U', 'V', '9'), EffectiveBPP: 9, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 4, VertDecimation: 4, UFirst: true}},
	FormatYVU9: {Id: FormatYVU9, Name: "YVU9", FourCC: fourcc('Y', 'V', 'U', '9'), EffectiveBPP: 9, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 4, VertDecimation: 4, UFirst: false}},
	FormatYV16: {Id: FormatYV16, Name: "YV16", FourCC: fourcc('Y', 'V', '1', '6'), EffectiveBPP: 16, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 1, UFirst: false}},

	FormatNV12: {Id: FormatNV12, Name: "NV12", FourCC: fourcc('N', 'V', '1', '2'), EffectiveBPP: 12, Family: FamilyYUVSemiPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: true, SemiPlanar: true}},
	FormatNV21: {Id: FormatNV21, Name: "NV21", FourCC: fourcc('N', 'V', '2', '1'), EffectiveBPP: 12, Family: FamilyYUVSemiPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: false, SemiPlanar: true}},

	FormatIMC1: {Id: FormatIMC1, Name: "IMC1", FourCC: fourcc('I', 'M', 'C', '1'), EffectiveBPP: 16, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: true}},
	FormatIMC2: {Id: FormatIMC2, Name: "IMC2", FourCC: fourcc('I', 'M', 'C', '2'), EffectiveBPP: 16, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: true, Interlaced: true}},
	FormatIMC3: {Id: FormatIMC3, Name: "IMC3", FourCC: fourcc('I', 'M', 'C', '3'), EffectiveBPP: 16, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: false}},
	FormatIMC4: {Id: FormatIMC4, Name: "IMC4", FourCC: fourcc('I', 'M', 'C', '4'), EffectiveBPP: 16, Family: FamilyYUVPlanar,
		Planes: PlaneLayout{HorizDecimation: 2, VertDecimation: 2, UFirst: false, Interlaced: true}},

	FormatIYU1: {Id: FormatIYU1, Name: "IYU1", FourCC: fourcc('I', 'Y', 'U', '1'), EffectiveBPP: 12, Family: FamilyYUVSubByte},
	FormatIYU2: {Id: FormatIYU2, Name: "IYU2", FourCC: fourcc('I', 'Y', 'U', '2'), EffectiveBPP: 24, Family: FamilyYUVSubByte},
	FormatY41P: {Id: FormatY41P, Name: "Y41P", FourCC: fourcc('Y', '4', '1', 'P'), EffectiveBPP: 12, Family: FamilyYUVSubByte},
	FormatCLJR: {Id: FormatCLJR, Name: "CLJR", FourCC: fourcc('C', 'L', 'J', 'R'), EffectiveBPP: 8, Family: FamilyYUVSubByte},

	FormatUYVYInterlaced: {Id: FormatUYVYInterlaced, Name: "IUYV", FourCC: fourcc('I', 'U', 'Y', 'V'), EffectiveBPP: 16, Family: FamilyYUVInterlaced},
	FormatY41PInterlaced: {Id: FormatY41PInterlaced, Name: "IY41", FourCC: fourcc('I', 'Y', '4', '1'), EffectiveBPP: 12, Family: FamilyYUVInterlaced},

	FormatY42T: {Id: FormatY42T, Name: "Y42T", FourCC: fourcc('Y', '4', '2', 'T'), EffectiveBPP: 16, Family: FamilyYUV422Packed},
	FormatY41T: {Id: FormatY41T, Name: "Y41T", FourCC: fourcc('Y', '4', '1', 'T'), EffectiveBPP: 12, Family: FamilyYUVSubByte},

	FormatY800: {Id: FormatY800, Name: "Y800", FourCC: fourcc('Y', '8', '0', '0'), EffectiveBPP: 8, Family: FamilyGreyscale8},
	FormatY16:  {Id: FormatY16, Name: "Y16", FourCC: fourcc('Y', '1', '6', ' '), EffectiveBPP: 16, Family: FamilyGreyscale16},
}

// aliasFourCCs maps alias fourccs to their canonical FormatId. These are
// not separate formats: they resolve to the kernel for their xref target.
var aliasFourCCs = map[uint32]FormatId{
	fourcc('Y', 'U', 'N', 'V'): FormatYUY2,
	fourcc('Y', 'U', 'Y', 'V'): FormatYUY2,
	fourcc('c', 'y', 'u', 'v'): FormatUYVY,
	fourcc('U', 'Y', 'N', 'V'): FormatUYVY,
	fourcc('I', '4', '2', '0'): FormatIYUV,
	fourcc('P', '4', '2', '0'): FormatIYUV,
}

func init() {
	for id, d := range registry {
		if d.Id != id {
			panic(fmt.Sprintf("blipvert: registry key/Id mismatch for %v", id))
		}
	}
}

// GetVideoFormatInfo returns the descriptor for a format id.
func GetVideoFormatInfo(id FormatId) (FormatDescriptor, bool) {
	d, ok := registry[id]
	return d, ok
}

// GetVideoFormatId resolves a fourcc to its FormatId, following aliases
// to their canonical xref target.
func GetVideoFormatId(fourccVal uint32) (FormatId, bool) {
	for id, d := range registry {
		if d.FourCC == fourccVal {
			return id, true
		}
	}
	if id, ok := aliasFourCCs[fourccVal]; ok {
		return id, true
	}
	return FormatUnknown, false
}

// String returns the format's short registry name, or "unknown".
func (id FormatId) String() string {
	if d, ok := registry[id]; ok {
		return d.Name
	}
	return "unknown"
}

// FormatByName resolves a registry short name (e.g. "UYVY", "RGB32")
// to its FormatId, for command-line tools and config files that name
// formats as strings rather than linking against the FormatId constants.
func FormatByName(name string) (FormatId, bool) {
	for id, d := range registry {
		if d.Name == name {
			return id, true
		}
	}
	return FormatUnknown, false
}
