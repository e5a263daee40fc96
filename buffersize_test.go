package blipvert

import "testing"

func TestCalculateBufferSize_S3(t *testing.T) {
	if got := CalculateBufferSize(FormatUYVY, 2592, 1944, 0); got != 10077696 {
		t.Errorf("CalculateBufferSize(UYVY,2592,1944) = %d, want 10077696", got)
	}
	if got := CalculateBufferSize(FormatUYVY, 2592, 1944, 5500); got != 5500*1944 {
		t.Errorf("CalculateBufferSize(UYVY,2592,1944,stride=5500) = %d, want %d", got, 5500*1944)
	}
	if got := CalculateBufferSize(FormatIYU1, 12, 12, 0); got != 216 {
		t.Errorf("CalculateBufferSize(IYU1,12,12) = %d, want 216", got)
	}
}

func TestCalculateBufferSize_S4_FasterLooping(t *testing.T) {
	orig := GetUseFasterLooping()
	defer SetUseFasterLooping(orig)

	SetUseFasterLooping(false)
	if got := CalculateBufferSize(FormatRGB24, 12, 12, 0); got != 432 {
		t.Errorf("faster_looping=false: CalculateBufferSize(RGB24,12,12) = %d, want 432", got)
	}

	SetUseFasterLooping(true)
	if got := CalculateBufferSize(FormatRGB24, 12, 12, 0); got != 433 {
		t.Errorf("faster_looping=true: CalculateBufferSize(RGB24,12,12) = %d, want 433", got)
	}
}

func TestMinStride(t *testing.T) {
	cases := []struct {
		id    FormatId
		width int
		want  int
	}{
		{FormatRGB32, 100, 400},
		{FormatRGB24, 100, 300},
		{FormatRGB565, 100, 200},
		{FormatUYVY, 100, 200},
		{FormatAYUV, 100, 400},
		{FormatIYUV, 100, 100},
		{FormatRGB8, 100, 100},
		{FormatRGB4, 101, 51},
		{FormatRGB1, 100, 13},
		{FormatIYU2, 10, 30},
		{FormatY41P, 8, 12},
	}
	for _, c := range cases {
		if got := MinStride(c.id, c.width); got != c.want {
			t.Errorf("MinStride(%v,%d) = %d, want %d", c.id, c.width, got, c.want)
		}
	}
}

func TestCalculateBufferSize_PlanarMonotonic(t *testing.T) {
	// Testable property: buffer size is monotonically non-decreasing in
	// both width and height for every format.
	for id := range registry {
		small := CalculateBufferSize(id, 16, 16, 0)
		big := CalculateBufferSize(id, 32, 32, 0)
		if big < small {
			t.Errorf("%v: CalculateBufferSize not monotonic: 16x16=%d > 32x32=%d", id, small, big)
		}
	}
}

func TestCalculateBufferSize_IMCAlignment(t *testing.T) {
	// IMC1/IMC3 pad the Y-plus-first-chroma-plane row count to a 16-row
	// boundary before the second chroma plane begins, so an image whose
	// block is not a multiple of 16 rows (15 here) costs extra padded rows
	// relative to a same-size non-IMC planar format.
	h := 10
	w := 16
	iyuvSize := CalculateBufferSize(FormatIYUV, w, h, 0)
	imc1Size := CalculateBufferSize(FormatIMC1, w, h, 0)
	if imc1Size <= iyuvSize {
		t.Errorf("IMC1 size %d should exceed IYUV size %d for height=%d (16-row Y+first-chroma padding)", imc1Size, iyuvSize, h)
	}
}

// TestCalculateBufferSize_IMCWorkedExample pins IMC1/IMC3's size formula
// to CalcBufferSize_IMCx's worked case: width=16, height=10, stride=16.
// Y is 10 rows; the first chroma plane (5 rows) pads the 15-row Y+chroma
// block up to 16; the second chroma plane (5 more rows) is unpadded. All
// rows are addressed at the full 16-byte luma stride, not half of it:
// (align16(10+5) + 5) * 16 = (16+5) * 16 = 336.
func TestCalculateBufferSize_IMCWorkedExample(t *testing.T) {
	const w, h, stride = 16, 10, 16
	const want = 336
	if got := CalculateBufferSize(FormatIMC1, w, h, stride); got != want {
		t.Errorf("CalculateBufferSize(IMC1,%d,%d,stride=%d) = %d, want %d", w, h, stride, got, want)
	}
	if got := CalculateBufferSize(FormatIMC3, w, h, stride); got != want {
		t.Errorf("CalculateBufferSize(IMC3,%d,%d,stride=%d) = %d, want %d", w, h, stride, got, want)
	}
}
