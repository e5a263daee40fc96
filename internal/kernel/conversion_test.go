package kernel

import "testing"

// TestPacked422ToPlanarYUV_VerticalBoxAverage checks the 4:2:0 (decim=2)
// chroma downsample is a truncating 2-tap box average of the two packed
// source rows that feed each destination chroma row.
func TestPacked422ToPlanarYUV_VerticalBoxAverage(t *testing.T) {
	const width, height = 4, 2
	off := Offsets422{Y0: 0, U: 1, Y1: 2, V: 3}
	// Two macropixels per row, two rows. Row0 chroma = 100, row1 chroma = 151.
	src := []byte{
		10, 100, 11, 200, 12, 100, 13, 200,
		20, 151, 21, 50, 22, 151, 23, 50,
	}
	srcStride := width * 2

	yDst := make([]byte, width*height)
	uDst := make([]byte, (width/2)*(height/2))
	vDst := make([]byte, (width/2)*(height/2))

	Packed422ToPlanarYUV(width, height, yDst, width, uDst, width/2, vDst, width/2, src, srcStride, false, off, 2)

	wantU := uint8((100 + 151) >> 1)
	wantV := uint8((200 + 50) >> 1)
	if uDst[0] != wantU {
		t.Errorf("U = %d, want %d", uDst[0], wantU)
	}
	if vDst[0] != wantV {
		t.Errorf("V = %d, want %d", vDst[0], wantV)
	}
	if yDst[0] != 10 || yDst[1] != 11 {
		t.Errorf("Y row0 = %d,%d, want 10,11 (verbatim luma copy)", yDst[0], yDst[1])
	}
}

// TestChromaMixWeights checks the fixed-point vertical mix coefficients
// spec.md §4.4.1 specifies for 4:1:0 upsampling: {1.0,.75,.5,.25} scaled
// by 1024, i.e. (top*768 + bottom*256) >> 10 for the second of four rows.
func TestChromaMixWeights(t *testing.T) {
	cases := []struct {
		i, decim       int
		wantTop, wantBottom int
	}{
		{0, 2, 1024, 0},
		{1, 2, 512, 512},
		{0, 4, 1024, 0},
		{1, 4, 768, 256},
		{2, 4, 512, 512},
		{3, 4, 256, 768},
	}
	for _, c := range cases {
		top, bottom := chromaMixWeights(c.i, c.decim)
		if top != c.wantTop || bottom != c.wantBottom {
			t.Errorf("chromaMixWeights(%d,%d) = (%d,%d), want (%d,%d)", c.i, c.decim, top, bottom, c.wantTop, c.wantBottom)
		}
	}
}

// TestPlanarYUVToPacked422_TopRowUsesChromaVerbatim checks that the
// first row of a 4:2:0 block (i=0) takes chroma directly from its own
// chroma row with no blending from the row below.
func TestPlanarYUVToPacked422_TopRowUsesChromaVerbatim(t *testing.T) {
	const width, height = 4, 2
	off := Offsets422{Y0: 0, U: 1, Y1: 2, V: 3}
	yPlane := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	uPlane := []byte{100}
	vPlane := []byte{200}

	dst := make([]byte, width*2*height)
	PlanarYUVToPacked422(width, height, dst, width*2, yPlane, width, uPlane, width/2, vPlane, width/2, false, off, 2)

	row0 := dst[0 : width*2]
	if row0[off.U] != 100 || row0[off.V] != 200 {
		t.Errorf("row0 chroma = (%d,%d), want (100,200) verbatim", row0[off.U], row0[off.V])
	}
}

// TestInterlace_RoundTrip checks Interlace and Deinterlace compose back
// to the original row order for both even and odd heights, with and
// without the vertical flip flag. Odd heights give the even/odd fields
// different row counts, which is what exposes a flip applied to the
// wrong side of the even/odd row mapping.
func TestInterlace_RoundTrip(t *testing.T) {
	const rowBytes = 4
	for _, height := range []int{4, 5} {
		for _, flipped := range []bool{false, true} {
			src := make([]byte, height*rowBytes)
			for y := 0; y < height; y++ {
				for i := 0; i < rowBytes; i++ {
					src[y*rowBytes+i] = byte(y*10 + i)
				}
			}

			mid := make([]byte, height*rowBytes)
			Interlace(height, rowBytes, mid, rowBytes, src, rowBytes, flipped)

			back := make([]byte, height*rowBytes)
			Deinterlace(height, rowBytes, back, rowBytes, mid, rowBytes, flipped)

			for y := 0; y < height; y++ {
				got := back[y*rowBytes : y*rowBytes+rowBytes]
				want := src[y*rowBytes : y*rowBytes+rowBytes]
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("height=%d flipped=%v row %d: got %v, want %v", height, flipped, y, got, want)
					}
				}
			}
		}
	}
}

// TestPacked422ToPacked422_Permutation checks the generic repacker is a
// pure byte permutation with no arithmetic: converting YUY2 <-> UYVY and
// back reproduces the original bytes.
func TestPacked422ToPacked422_Permutation(t *testing.T) {
	const width, height = 4, 2
	yuy2Off := Offsets422{Y0: 0, U: 1, Y1: 2, V: 3}
	uyvyOff := Offsets422{U: 0, Y0: 1, V: 2, Y1: 3}

	src := []byte{
		10, 20, 11, 30, 12, 20, 13, 30,
		40, 50, 41, 60, 42, 50, 43, 60,
	}
	stride := width * 2

	mid := make([]byte, len(src))
	Packed422ToPacked422(width, height, mid, stride, src, stride, false, yuy2Off, uyvyOff)

	back := make([]byte, len(src))
	Packed422ToPacked422(width, height, back, stride, mid, stride, false, uyvyOff, yuy2Off)

	for i := range src {
		if back[i] != src[i] {
			t.Fatalf("byte %d = %d, want %d (round trip through UYVY should be exact)", i, back[i], src[i])
		}
	}
}
