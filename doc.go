// Package blipvert performs in-memory pixel-format conversion between the
// raster image encodings used in video capture and playback pipelines:
// RGB variants (with and without alpha, 32/24/16/15/8/4/1 bits per pixel)
// and YUV/YCbCr variants in packed, planar, semi-planar, and sub-byte-packed
// layouts.
//
// The package does not decode compressed streams, does not allocate
// buffers on the caller's behalf, and does not resample across spatial
// resolutions. A single fixed BT.601-style matrix is used for every
// RGB<->YUV conversion; BT.709/BT.2020 are out of scope.
//
// Basic usage:
//
//	blipvert.InitializeLibrary()
//	transform := blipvert.FindVideoTransform(blipvert.FormatUYVY, blipvert.FormatRGB32)
//	if transform != nil {
//		transform(width, height, dst, dstStride, src, srcStride, false, nil)
//	}
package blipvert
