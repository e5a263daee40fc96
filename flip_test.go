package blipvert

import (
	"bytes"
	"testing"
)

// TestFlipVertical_Involution asserts testable property 6: flipping
// twice reproduces the original buffer bytewise, for every registered
// format.
func TestFlipVertical_Involution(t *testing.T) {
	const w, h = 16, 16
	for id := range registry {
		stride := MinStride(id, w)
		size := CalculateBufferSize(id, w, h, 0)
		buf := make([]byte, size)
		if fill := FindFillColorTransform(id); fill != nil {
			fill(11, 222, 133, 255, w, h, buf, stride)
		}
		want := append([]byte(nil), buf...)

		FlipVertical(id, w, h, buf, stride)
		FlipVertical(id, w, h, buf, stride)

		if !bytes.Equal(buf, want) {
			t.Errorf("%v: flip(flip(x)) != x", id)
		}
	}
}

// TestFlipVertical_UYVY checks the actual row reordering (not just the
// involution) for a simple packed 4:2:2 format.
func TestFlipVertical_UYVY(t *testing.T) {
	const w, h = 4, 4
	stride := MinStride(FormatUYVY, w)
	buf := make([]byte, CalculateBufferSize(FormatUYVY, w, h, 0))
	for y := 0; y < h; y++ {
		row := buf[y*stride : y*stride+stride]
		for i := range row {
			row[i] = byte(y)
		}
	}
	FlipVertical(FormatUYVY, w, h, buf, stride)
	for y := 0; y < h; y++ {
		row := buf[y*stride : y*stride+stride]
		want := byte(h - 1 - y)
		for i, v := range row {
			if v != want {
				t.Fatalf("row %d byte %d = %d, want %d", y, i, v, want)
			}
		}
	}
}
