package colorspace

import "testing"

// TestFastRGBToYUVPrecision asserts the ±1-per-channel precision contract
// spec.md §4.3 requires, exhaustively over the full 2^24 (R,G,B) cube.
func TestFastRGBToYUVPrecision(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				fy, fu, fv := FastRGBToYUV(uint8(r), uint8(g), uint8(b))
				sy, su, sv := SlowRGBToYUV(uint8(r), uint8(g), uint8(b))
				if d := absDiff(fy, sy); d > 1 {
					t.Fatalf("Y mismatch at (%d,%d,%d): fast=%d slow=%d diff=%d", r, g, b, fy, sy, d)
				}
				if d := absDiff(fu, su); d > 1 {
					t.Fatalf("U mismatch at (%d,%d,%d): fast=%d slow=%d diff=%d", r, g, b, fu, su, d)
				}
				if d := absDiff(fv, sv); d > 1 {
					t.Fatalf("V mismatch at (%d,%d,%d): fast=%d slow=%d diff=%d", r, g, b, fv, sv, d)
				}
			}
		}
	}
}

// TestFastYUVToRGBPrecision is the inverse-direction half of the same
// contract, exhaustive over the (Y,U,V) cube.
func TestFastYUVToRGBPrecision(t *testing.T) {
	for y := 0; y < 256; y++ {
		for u := 0; u < 256; u++ {
			for v := 0; v < 256; v++ {
				fr, fg, fb := FastYUVToRGB(uint8(y), uint8(u), uint8(v))
				sr, sg, sb := SlowYUVToRGB(uint8(y), uint8(u), uint8(v))
				if d := absDiff(fr, sr); d > 1 {
					t.Fatalf("R mismatch at (%d,%d,%d): fast=%d slow=%d diff=%d", y, u, v, fr, sr, d)
				}
				if d := absDiff(fg, sg); d > 1 {
					t.Fatalf("G mismatch at (%d,%d,%d): fast=%d slow=%d diff=%d", y, u, v, fg, sg, d)
				}
				if d := absDiff(fb, sb); d > 1 {
					t.Fatalf("B mismatch at (%d,%d,%d): fast=%d slow=%d diff=%d", y, u, v, fb, sb, d)
				}
			}
		}
	}
}

func TestGreyInputProducesNeutralChroma(t *testing.T) {
	for i := 0; i < 256; i++ {
		_, u, v := FastRGBToYUV(uint8(i), uint8(i), uint8(i))
		if u != 128 || v != 128 {
			t.Errorf("grey input %d: U=%d V=%d, want 128/128", i, u, v)
		}
	}
}

func TestClip8(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{-500, 0}, {-1, 0}, {0, 0}, {255, 255}, {511, 255}, {512, 255}, {128, 128},
	}
	for _, c := range cases {
		if got := Clip8(c.in); got != c.want {
			t.Errorf("Clip8(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
