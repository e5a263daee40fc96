package kernel

import "testing"

// TestIMCPlaneLayout_NonInterlaced pins the IMC1/IMC3 plane layout to
// CalcBufferSize_IMCx's worked case: width=16, height=10, stride=16. The
// first chroma plane starts right after the 10-row luma plane; the
// second starts once that 15-row block is padded to a 16-row boundary.
// Both chroma planes are addressed at the full 16-byte luma stride.
func TestIMCPlaneLayout_NonInterlaced(t *testing.T) {
	layout := IMCPlaneLayout(16, 10, 16, false, false)
	if layout.YOffset != 0 || layout.YStride != 16 {
		t.Errorf("Y = offset %d stride %d, want 0,16", layout.YOffset, layout.YStride)
	}
	if layout.UOffset != 160 || layout.UStride != 16 {
		t.Errorf("U = offset %d stride %d, want 160,16", layout.UOffset, layout.UStride)
	}
	if layout.VOffset != 256 || layout.VStride != 16 {
		t.Errorf("V = offset %d stride %d, want 256,16", layout.VOffset, layout.VStride)
	}
}

// TestIMCPlaneLayout_UVSwap checks IMC3 swaps only which plane sits in
// which slot, not the slots' offsets or strides themselves.
func TestIMCPlaneLayout_UVSwap(t *testing.T) {
	imc1 := IMCPlaneLayout(16, 10, 16, false, false)
	imc3 := IMCPlaneLayout(16, 10, 16, false, true)
	if imc3.UOffset != imc1.VOffset || imc3.VOffset != imc1.UOffset {
		t.Errorf("IMC3 should swap IMC1's U/V offsets: imc1 U=%d V=%d, imc3 U=%d V=%d",
			imc1.UOffset, imc1.VOffset, imc3.UOffset, imc3.VOffset)
	}
}

// TestIMCPlaneLayout_Interlaced checks IMC2/IMC4's chroma rows sit
// side by side within the luma stride rather than below a padded block.
func TestIMCPlaneLayout_Interlaced(t *testing.T) {
	layout := IMCPlaneLayout(16, 10, 16, true, false)
	if layout.UOffset != 160 {
		t.Errorf("U offset = %d, want 160 (right after 10-row luma plane)", layout.UOffset)
	}
	if layout.VOffset != 168 {
		t.Errorf("V offset = %d, want 168 (half a stride after U)", layout.VOffset)
	}
}
