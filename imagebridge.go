package blipvert

import (
	"errors"
	"image"
)

// ErrUnsupportedImage is returned by FromImage/ToImage when passed a
// FormatId this bridge has no RGBA32 path for, and by ToImage for
// palettized formats.
var ErrUnsupportedImage = errors.New("blipvert: unsupported image type")

// ToImage decodes a width x height buffer of format id into a standard
// library image.Image, for interop with code built around the image
// package rather than this library's buffer/stride convention. IYUV and
// YV12 decode directly to *image.YCbCr, matching their native 4:2:0
// layout with no conversion; palettized formats return
// ErrUnsupportedImage, since no palette is passed in; every other format
// routes through RGBA32 and returns *image.NRGBA.
func ToImage(id FormatId, width, height int, buf []byte, stride int) (image.Image, error) {
	d, ok := registry[id]
	if !ok || d.Family == FamilyPalettized {
		return nil, ErrUnsupportedImage
	}
	if stride == 0 {
		stride = MinStride(id, width)
	}

	switch id {
	case FormatIYUV, FormatYV12:
		return toYCbCr(d, buf, width, height, stride), nil
	}

	rgbaBuf := buf
	rgbaStride := stride
	if id != FormatRGBA {
		t := FindVideoTransform(id, FormatRGBA)
		if t == nil {
			return nil, ErrUnsupportedImage
		}
		rgbaStride = width * 4
		rgbaBuf = make([]byte, height*rgbaStride)
		t(width, height, rgbaBuf, rgbaStride, buf, stride, false, nil)
	}

	// RGBA32 stores B, G, R, A in byte order; NRGBA wants R, G, B, A.
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := rgbaBuf[y*rgbaStride : y*rgbaStride+width*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width*4; x += 4 {
			dst[x+0], dst[x+1], dst[x+2], dst[x+3] = src[x+2], src[x+1], src[x+0], src[x+3]
		}
	}
	return img, nil
}

// toYCbCr wraps a IYUV/YV12 buffer's existing planes directly in an
// image.YCbCr, plane data shared rather than copied, so ToImage stays
// zero-allocation for the one format pair the stdlib already speaks
// natively. planarSlices already returns semantically-ordered U/V
// slices regardless of which plane comes first in memory, so IYUV and
// YV12 need no special casing here beyond passing the right descriptor.
func toYCbCr(d FormatDescriptor, buf []byte, width, height, stride int) *image.YCbCr {
	y, u, v, yStride, uStride, _ := planarSlices(d.Id, d, buf, width, height, stride)
	return &image.YCbCr{
		Y:              y,
		Cb:             u,
		Cr:             v,
		YStride:        yStride,
		CStride:        uStride,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}
}

// FromImage encodes a standard library image.Image into a freshly
// allocated width x height buffer of format id. *image.YCbCr sources
// with 4:2:0 subsampling feed IYUV/YV12 destinations by copying planes
// directly; every other combination is read back through the source's
// color.Color.RGBA method and converted via the usual RGBA32 dispatch
// path.
func FromImage(img image.Image, id FormatId, stride int) ([]byte, int, error) {
	if _, ok := registry[id]; !ok {
		return nil, 0, ErrUnsupportedImage
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if stride == 0 {
		stride = MinStride(id, width)
	}
	size := CalculateBufferSize(id, width, height, stride)
	dst := make([]byte, size)

	if ycbcr, ok := img.(*image.YCbCr); ok && ycbcr.SubsampleRatio == image.YCbCrSubsampleRatio420 && (id == FormatIYUV || id == FormatYV12) {
		d := registry[id]
		yDst, uDst, vDst, yStride, uStride, vStride := planarSlices(id, d, dst, width, height, stride)
		copyPlane(yDst, yStride, ycbcr.Y, ycbcr.YStride, width, height)
		copyPlane(uDst, uStride, ycbcr.Cb, ycbcr.CStride, width/2, height/2)
		copyPlane(vDst, vStride, ycbcr.Cr, ycbcr.CStride, width/2, height/2)
		return dst, stride, nil
	}

	rgbaBuf := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*width*4 + x*4
			rgbaBuf[i+0] = uint8(b >> 8)
			rgbaBuf[i+1] = uint8(g >> 8)
			rgbaBuf[i+2] = uint8(r >> 8)
			rgbaBuf[i+3] = uint8(a >> 8)
		}
	}
	if id == FormatRGBA {
		copy(dst, rgbaBuf)
		return dst, stride, nil
	}
	t := FindVideoTransform(FormatRGBA, id)
	if t == nil {
		return nil, 0, ErrUnsupportedImage
	}
	t(width, height, dst, stride, rgbaBuf, width*4, false, nil)
	return dst, stride, nil
}

func copyPlane(dst []byte, dstStride int, src []byte, srcStride, width, height int) {
	for y := 0; y < height; y++ {
		copy(dst[y*dstStride:y*dstStride+width], src[y*srcStride:y*srcStride+width])
	}
}
