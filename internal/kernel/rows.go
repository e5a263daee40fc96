// Package kernel implements the generic pixel-format conversion kernels:
// a small family of parameterized transforms that the dispatch table in
// the parent package wires up to cover every supported format pair,
// instead of one hand-written function per pair.
package kernel

// DstRow returns the row index to write for logical row y of a
// planeHeight-row destination plane, honoring the flip flag. Per spec,
// flipping is realized by reversing the destination's row traversal
// while the source is always read top-to-bottom; each plane of a
// multi-plane destination flips independently using its own height.
func DstRow(y, planeHeight int, flipped bool) int {
	if flipped {
		return planeHeight - 1 - y
	}
	return y
}

// Row returns the byte slice for row y of a plane with the given stride,
// width bytes long starting at the row origin.
func Row(data []byte, stride, y, width int) []byte {
	off := y * stride
	return data[off : off+width]
}
