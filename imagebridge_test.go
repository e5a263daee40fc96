package blipvert

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

// TestToImage_IYUV_DirectYCbCr checks IYUV decodes to a 4:2:0
// *image.YCbCr rather than through RGBA, with the luma value carried
// over unchanged.
func TestToImage_IYUV_DirectYCbCr(t *testing.T) {
	const w, h = 8, 8
	stride := MinStride(FormatIYUV, w)
	buf := make([]byte, CalculateBufferSize(FormatIYUV, w, h, 0))
	Fill(FormatIYUV, 100, 128, 128, 0, w, h, buf, stride)

	img, err := ToImage(FormatIYUV, w, h, buf, stride)
	if err != nil {
		t.Fatalf("ToImage(IYUV): %v", err)
	}
	yc, ok := img.(*image.YCbCr)
	if !ok {
		t.Fatalf("ToImage(IYUV) returned %T, want *image.YCbCr", img)
	}
	if yc.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		t.Errorf("SubsampleRatio = %v, want 420", yc.SubsampleRatio)
	}
	if yc.Y[0] != 100 {
		t.Errorf("Y[0] = %d, want 100", yc.Y[0])
	}
}

// TestFromImageToImage_RGBA_RoundTrip checks the generic RGBA32 bridge
// path for a format with no direct image.Image native representation.
func TestFromImageToImage_RGBA_RoundTrip(t *testing.T) {
	const w, h = 4, 4
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 10, G: 200, B: 30, A: 255})
		}
	}

	buf, stride, err := FromImage(src, FormatRGB565, 0)
	if err != nil {
		t.Fatalf("FromImage(RGB565): %v", err)
	}

	out, err := ToImage(FormatRGB565, w, h, buf, stride)
	if err != nil {
		t.Fatalf("ToImage(RGB565): %v", err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("ToImage(RGB565) returned %T, want *image.NRGBA", out)
	}
	r, g, b, a := nrgba.At(0, 0).RGBA()
	if a>>8 != 255 {
		t.Errorf("alpha = %d, want 255", a>>8)
	}
	// RGB565 truncates to 5/6/5 bits; just check the round trip stays close.
	if absInt(int(r>>8)-10) > 10 || absInt(int(g>>8)-200) > 10 || absInt(int(b>>8)-30) > 10 {
		t.Errorf("round trip RGBA = (%d,%d,%d), want close to (10,200,30)", r>>8, g>>8, b>>8)
	}
}

// TestFromImageToImage_DrawCrossCheck uses golang.org/x/image/draw's
// NearestNeighbor scaler, run at identity size, as an independently
// implemented reference for reading an image.Image's pixels back out.
// Cross-checking FromImage/ToImage's own RGBA32 bridge path against it
// catches drift a round trip through only our own code would never
// reveal.
func TestFromImageToImage_DrawCrossCheck(t *testing.T) {
	const w, h = 6, 6
	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}

	golden := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(golden, golden.Bounds(), src, src.Bounds(), draw.Src, nil)

	buf, stride, err := FromImage(src, FormatRGB32, 0)
	if err != nil {
		t.Fatalf("FromImage(RGB32): %v", err)
	}
	out, err := ToImage(FormatRGB32, w, h, buf, stride)
	if err != nil {
		t.Fatalf("ToImage(RGB32): %v", err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wr, wg, wb, wa := golden.At(x, y).RGBA()
			gr, gg, gb, ga := out.At(x, y).RGBA()
			if wr>>8 != gr>>8 || wg>>8 != gg>>8 || wb>>8 != gb>>8 || wa>>8 != ga>>8 {
				t.Fatalf("pixel (%d,%d): draw-golden=(%d,%d,%d,%d) bridge=(%d,%d,%d,%d)",
					x, y, wr>>8, wg>>8, wb>>8, wa>>8, gr>>8, gg>>8, gb>>8, ga>>8)
			}
		}
	}
}
