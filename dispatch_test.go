package blipvert

import (
	"testing"

	"github.com/blipvert-go/blipvert/internal/colorspace"
)

// TestFindVideoTransform_S1 exercises spec.md scenario S1: a 16x16 UYVY
// buffer filled with neutral grey (Y=U=V=128) converts to RGB32 with
// R=G=B=128 (within the ±1 colorspace precision bound) and A=0xFF.
func TestFindVideoTransform_S1(t *testing.T) {
	xf := FindVideoTransform(FormatUYVY, FormatRGB32)
	if xf == nil {
		t.Fatal("FindVideoTransform(UYVY,RGB32) = nil, want non-nil")
	}

	const w, h = 16, 16
	srcStride := MinStride(FormatUYVY, w)
	dstStride := MinStride(FormatRGB32, w)
	src := make([]byte, CalculateBufferSize(FormatUYVY, w, h, 0))
	dst := make([]byte, CalculateBufferSize(FormatRGB32, w, h, 0))
	Fill(FormatUYVY, 128, 128, 128, 0, w, h, src, srcStride)

	xf(w, h, dst, dstStride, src, srcStride, false, nil)

	layout := rgbLayout(FormatRGB32)
	for y := 0; y < h; y++ {
		row := dst[y*dstStride : y*dstStride+w*layout.BytesPerPixel]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			r, g, b := px[2], px[1], px[0]
			a := px[3]
			if absInt(int(r)-128) > 1 || absInt(int(g)-128) > 1 || absInt(int(b)-128) > 1 {
				t.Fatalf("pixel (%d,%d) = RGB(%d,%d,%d), want ~128 each", x, y, r, g, b)
			}
			if a != 0xFF {
				t.Fatalf("pixel (%d,%d) alpha = 0x%02x, want 0xFF", x, y, a)
			}
		}
	}
}

// TestFindVideoTransform_S2 exercises spec.md scenario S2: RGB555 ->
// RGBA expands each 5-bit channel by replication; 0x7FFF decodes to
// opaque white.
func TestFindVideoTransform_S2(t *testing.T) {
	xf := FindVideoTransform(FormatRGB555, FormatRGBA)
	if xf == nil {
		t.Fatal("FindVideoTransform(RGB555,RGBA) = nil, want non-nil")
	}

	const w, h = 2, 2
	src := make([]byte, CalculateBufferSize(FormatRGB555, w, h, 0))
	dst := make([]byte, CalculateBufferSize(FormatRGBA, w, h, 0))
	srcStride := MinStride(FormatRGB555, w)
	dstStride := MinStride(FormatRGBA, w)
	for i := 0; i < len(src); i += 2 {
		src[i] = 0xFF
		src[i+1] = 0x7F
	}

	xf(w, h, dst, dstStride, src, srcStride, false, nil)

	for i := 0; i < len(dst); i += 4 {
		px := dst[i : i+4]
		for c := 0; c < 4; c++ {
			if px[c] != 0xFF {
				t.Fatalf("pixel byte %d = 0x%02x, want 0xFF", i+c, px[c])
			}
		}
	}
}

// TestRoundTrip_S5 exercises spec.md scenario S5: round-tripping the six
// canonical colors through RGB32 -> YUY2 -> RGB32 reproduces the
// idealized round trip through FastRGBToYUV/FastYUVToRGB exactly, since
// YUY2 is lossless in Y and loses no chroma at its own lattice for a
// uniform-color image (chroma is sampled once per 2 luma samples, all
// identical).
func TestRoundTrip_S5(t *testing.T) {
	colors := [][4]uint8{
		{128, 128, 128, 255},
		{255, 255, 255, 255},
		{0, 0, 0, 255},
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}

	toYUY2 := FindVideoTransform(FormatRGB32, FormatYUY2)
	toRGB32 := FindVideoTransform(FormatYUY2, FormatRGB32)
	if toYUY2 == nil || toRGB32 == nil {
		t.Fatal("RGB32<->YUY2 transforms missing")
	}

	const w, h = 4, 4
	rgbStride := MinStride(FormatRGB32, w)
	yuyStride := MinStride(FormatYUY2, w)

	for _, c := range colors {
		r, g, b, a := c[0], c[1], c[2], c[3]
		src := make([]byte, CalculateBufferSize(FormatRGB32, w, h, 0))
		Fill(FormatRGB32, r, g, b, a, w, h, src, rgbStride)

		mid := make([]byte, CalculateBufferSize(FormatYUY2, w, h, 0))
		toYUY2(w, h, mid, yuyStride, src, rgbStride, false, nil)

		out := make([]byte, CalculateBufferSize(FormatRGB32, w, h, 0))
		toRGB32(w, h, out, rgbStride, mid, yuyStride, false, nil)

		y, u, v := colorspace.FastRGBToYUV(r, g, b)
		wantR, wantG, wantB := colorspace.FastYUVToRGB(y, u, v)

		layout := rgbLayout(FormatRGB32)
		px := out[0 : layout.BytesPerPixel]
		gotB, gotG, gotR, gotA := px[0], px[1], px[2], px[3]
		if gotR != wantR || gotG != wantG || gotB != wantB {
			t.Errorf("color %v: round trip = RGB(%d,%d,%d), want RGB(%d,%d,%d)", c, gotR, gotG, gotB, wantR, wantG, wantB)
		}
		if gotA != 0xFF {
			t.Errorf("color %v: round trip alpha = 0x%02x, want 0xFF", c, gotA)
		}
	}
}

// TestGreyscale_S6 exercises spec.md scenario S6: greyscaling a UYVY
// buffer filled with (Y,U,V)=(100,200,50) leaves Y untouched and zeroes
// both chroma bytes.
func TestGreyscale_S6(t *testing.T) {
	const w, h = 8, 8
	stride := MinStride(FormatUYVY, w)
	buf := make([]byte, CalculateBufferSize(FormatUYVY, w, h, 0))
	Fill(FormatUYVY, 100, 200, 50, 0, w, h, buf, stride)

	grey := FindGreyscaleTransform(FormatUYVY)
	if grey == nil {
		t.Fatal("FindGreyscaleTransform(UYVY) = nil, want non-nil")
	}
	grey(w, h, buf, stride, nil)

	off := offsets422For(FormatUYVY)
	for y := 0; y < h; y++ {
		row := buf[y*stride : y*stride+w*2]
		for x := 0; x < w; x += 2 {
			mp := row[x*2 : x*2+4]
			if mp[off.Y0] != 100 || mp[off.Y1] != 100 {
				t.Fatalf("row %d macropixel %d: Y bytes = %d/%d, want 100/100", y, x, mp[off.Y0], mp[off.Y1])
			}
			if mp[off.U] != 0 || mp[off.V] != 0 {
				t.Fatalf("row %d macropixel %d: U/V = %d/%d, want 0/0", y, x, mp[off.U], mp[off.V])
			}
		}
	}
}

// TestCheckFillRoundTrip is the generic form of testable property 4:
// check(fill(F,c)) == true for every format with both a fill and a
// check routine registered.
func TestCheckFillRoundTrip(t *testing.T) {
	for id := range registry {
		fill := FindFillColorTransform(id)
		check := FindBufferCheck(id)
		if fill == nil || check == nil {
			continue
		}
		const w, h = 16, 16
		stride := MinStride(id, w)
		buf := make([]byte, CalculateBufferSize(id, w, h, 0))
		fill(77, 133, 201, 255, w, h, buf, stride)
		if !check(77, 133, 201, 255, w, h, buf, stride) {
			t.Errorf("%v: check(fill(77,133,201,255)) = false, want true", id)
		}
	}
}

// TestFindVideoTransform_PlanarSubByteDirect checks spec.md §4.4.1's
// planar_yuv_to_IYU1/IYU2 generic kernels are reachable as a single
// direct Transform (registerPlanarToSubByte), not only via a two-hop
// packed-4:2:2 intermediate, for every {IYUV,YV12} x
// {IYU1,IYU2,Y41P,CLJR} pair in both directions.
func TestFindVideoTransform_PlanarSubByteDirect(t *testing.T) {
	for _, pl := range planarQuadFormats {
		for _, sb := range subByteFormats {
			if FindVideoTransform(pl, sb) == nil {
				t.Errorf("FindVideoTransform(%v,%v) = nil, want non-nil", pl, sb)
			}
			if FindVideoTransform(sb, pl) == nil {
				t.Errorf("FindVideoTransform(%v,%v) = nil, want non-nil", sb, pl)
			}
		}
	}
}

// TestPlanarToSubByte_UniformRoundTrip checks a direct IYUV<->IYU1 round
// trip preserves a uniform fill: with constant chroma across the image,
// the vertical chroma upsampling and downsampling the conversion does
// internally introduces no error, so the round trip should be exact.
func TestPlanarToSubByte_UniformRoundTrip(t *testing.T) {
	toIYU1 := FindVideoTransform(FormatIYUV, FormatIYU1)
	toIYUV := FindVideoTransform(FormatIYU1, FormatIYUV)
	if toIYU1 == nil || toIYUV == nil {
		t.Fatal("IYUV<->IYU1 transforms missing")
	}

	const w, h = 16, 8
	iyuvStride := MinStride(FormatIYUV, w)
	iyu1Stride := MinStride(FormatIYU1, w)

	src := make([]byte, CalculateBufferSize(FormatIYUV, w, h, 0))
	Fill(FormatIYUV, 100, 150, 90, 0, w, h, src, iyuvStride)

	mid := make([]byte, CalculateBufferSize(FormatIYU1, w, h, 0))
	toIYU1(w, h, mid, iyu1Stride, src, iyuvStride, false, nil)

	out := make([]byte, CalculateBufferSize(FormatIYUV, w, h, 0))
	toIYUV(w, h, out, iyuvStride, mid, iyu1Stride, false, nil)

	check := FindBufferCheck(FormatIYUV)
	if !check(100, 150, 90, 0, w, h, out, iyuvStride) {
		t.Errorf("IYUV->IYU1->IYUV round trip did not reproduce the uniform fill")
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
