package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// SetPixel writes one pixel of a width x height image of format id.
// ry/gu/bv name the same three generic color levels the whole family of
// per-format setters share: for RGB formats they are R/G/B; for YUV
// formats they are Y/U/V. alpha is honored only by alpha-bearing
// formats.
func SetPixel(id FormatId, ry, gu, bv, alpha uint8, x, y, width, height int, buf []byte, stride int) {
	d, ok := registry[id]
	if !ok {
		return
	}
	if stride == 0 {
		stride = MinStride(id, width)
	}

	switch d.Family {
	case FamilyRGBPacked:
		layout, _ := rgbLayoutFor(id)
		setPixelRGBPacked(ry, gu, bv, alpha, x, y, buf, stride, layout)
	case FamilyYUV422Packed:
		off := offsets422For(id)
		setPixelPacked422(ry, gu, bv, x, y, buf, stride, off)
	case FamilyYUV444Packed:
		setPixelAYUV(ry, gu, bv, alpha, x, y, buf, stride)
	case FamilyYUVPlanar:
		setPixelPlanarYUV(id, d, ry, gu, bv, x, y, width, height, buf, stride)
	case FamilyYUVSemiPlanar:
		setPixelSemiPlanar(d, ry, gu, bv, x, y, width, height, buf, stride)
	case FamilyYUVSubByte:
		setPixelSubByte(id, ry, gu, bv, x, y, buf, stride)
	case FamilyGreyscale8:
		kernel.Row(buf, stride, y, width)[x] = ry
	case FamilyGreyscale16:
		row := kernel.Row(buf, stride, y, width*2)
		row[x*2], row[x*2+1] = ry, ry
	case FamilyPalettized:
		setPixelPalettized(id, ry, x, y, buf, stride)
	case FamilyYUVInterlaced:
		setPixelInterlaced(id, ry, gu, bv, x, y, height, buf, stride)
	}
}

// setPixelPalettized writes an 8/4/1-bit palette index (passed in ry)
// at (x,y). Fill and SetPixel never map RGB colors to palette entries:
// that quantization is outside this library's scope, so callers of a
// palettized format pass the index directly.
func setPixelPalettized(id FormatId, index uint8, x, y int, buf []byte, stride int) {
	row := kernel.Row(buf, stride, y, stride)
	switch id {
	case FormatRGB8:
		row[x] = index
	case FormatRGB4:
		if x%2 == 0 {
			row[x/2] = (row[x/2] &^ 0xf0) | (index << 4)
		} else {
			row[x/2] = (row[x/2] &^ 0x0f) | (index & 0x0f)
		}
	case FormatRGB1:
		shift := 7 - uint(x%8)
		if index&1 != 0 {
			row[x/8] |= 1 << shift
		} else {
			row[x/8] &^= 1 << shift
		}
	}
}

// setPixelInterlaced writes one pixel of the even-rows-first/odd-rows-
// second interlaced row order (IUYV, IY41) by remapping y to its
// physical row and delegating to the progressive setter for that row's
// layout, since interlacing only reorders whole rows.
func setPixelInterlaced(id FormatId, ry, gu, bv uint8, x, y, height int, buf []byte, stride int) {
	half := (height + 1) / 2
	physY := y / 2
	if y%2 == 1 {
		physY = half + y/2
	}
	switch id {
	case FormatUYVYInterlaced:
		setPixelPacked422(ry, gu, bv, x, physY, buf, stride, offsets422For(FormatUYVY))
	case FormatY41PInterlaced:
		setPixelSubByte(FormatY41P, ry, gu, bv, x, physY, buf, stride)
	}
}

func setPixelRGBPacked(r, g, b, a uint8, x, y int, buf []byte, stride int, layout kernel.RGBLayout) {
	i := y*stride + x*layout.BytesPerPixel
	scale := func(v uint8, bits int) uint32 { return uint32(v) >> uint(8-bits) }
	word := scale(r, layout.RBits)<<uint(layout.RShift) | scale(g, layout.GBits)<<uint(layout.GShift) | scale(b, layout.BBits)<<uint(layout.BShift)
	if layout.ABits > 0 {
		word |= scale(a, layout.ABits) << uint(layout.AShift)
	}
	for n := 0; n < layout.BytesPerPixel; n++ {
		buf[i+n] = byte(word >> (8 * n))
	}
}

func setPixelPacked422(y8, u, v uint8, x, y int, buf []byte, stride int, off kernel.Offsets422) {
	mpOff := y*stride + (x/2)*4
	yOff := off.Y0
	if x%2 == 1 {
		yOff = off.Y1
	}
	buf[mpOff+yOff] = y8
	buf[mpOff+off.U] = u
	buf[mpOff+off.V] = v
}

func setPixelAYUV(y8, u, v, a uint8, x, y int, buf []byte, stride int) {
	i := y*stride + x*4
	buf[i+0] = a
	buf[i+1] = u
	buf[i+2] = v
	buf[i+3] = y8
}

func setPixelPlanarYUV(id FormatId, d FormatDescriptor, y8, u, v uint8, x, y, width, height int, buf []byte, stride int) {
	buf[y*stride+x] = y8

	cx, cy := x/d.Planes.HorizDecimation, y/d.Planes.VertDecimation
	switch id {
	case FormatIMC1, FormatIMC2, FormatIMC3, FormatIMC4:
		layout := kernel.IMCPlaneLayout(width, height, stride, id == FormatIMC2 || id == FormatIMC4, id == FormatIMC3 || id == FormatIMC4)
		buf[layout.UOffset+cy*layout.UStride+cx] = u
		buf[layout.VOffset+cy*layout.VStride+cx] = v
	default:
		ySize := height * stride
		chromaH := height / d.Planes.VertDecimation
		chromaW := width / d.Planes.HorizDecimation
		uOff, vOff := ySize, ySize+chromaW*chromaH
		if !d.Planes.UFirst {
			uOff, vOff = vOff, uOff
		}
		buf[uOff+cy*chromaW+cx] = u
		buf[vOff+cy*chromaW+cx] = v
	}
}

func setPixelSemiPlanar(d FormatDescriptor, y8, u, v uint8, x, y, width, height int, buf []byte, stride int) {
	ySize := height * stride
	chromaW := width / d.Planes.HorizDecimation
	cx, cy := x/d.Planes.HorizDecimation, y/d.Planes.VertDecimation
	uvRowOff := ySize + cy*(chromaW*2) + cx*2
	buf[y*stride+x] = y8
	if d.Planes.UFirst {
		buf[uvRowOff], buf[uvRowOff+1] = u, v
	} else {
		buf[uvRowOff], buf[uvRowOff+1] = v, u
	}
}

func setPixelSubByte(id FormatId, y8, u, v uint8, x, y int, buf []byte, stride int) {
	switch id {
	case FormatIYU1:
		mp := y*stride + (x/4)*6
		buf[mp+0] = u
		buf[mp+3] = v
		switch x % 4 {
		case 0:
			buf[mp+1] = y8
		case 1:
			buf[mp+2] = y8
		case 2:
			buf[mp+4] = y8
		case 3:
			buf[mp+5] = y8
		}
	case FormatIYU2:
		p := y*stride + x*3
		buf[p+0] = u
		buf[p+1] = y8
		buf[p+2] = v
	case FormatY41P, FormatY41T:
		mp := y*stride + (x/8)*12
		switch x % 8 {
		case 0:
			buf[mp+0], buf[mp+1] = u, y8
		case 1:
			buf[mp+2], buf[mp+3] = v, y8
		case 2:
			buf[mp+4], buf[mp+5] = u, y8
		case 3:
			buf[mp+6], buf[mp+7] = v, y8
		case 4:
			buf[mp+8] = y8
		case 5:
			buf[mp+9] = y8
		case 6:
			buf[mp+10] = y8
		case 7:
			buf[mp+11] = y8
		}
	case FormatCLJR:
		mp := y*stride + (x/4)*4
		word := uint32(buf[mp]) | uint32(buf[mp+1])<<8 | uint32(buf[mp+2])<<16 | uint32(buf[mp+3])<<24
		_, _, y0, y1, y2, y3 := kernel.UnpackCLJR(word)
		switch x % 4 {
		case 0:
			y0 = y8
		case 1:
			y1 = y8
		case 2:
			y2 = y8
		case 3:
			y3 = y8
		}
		word = kernel.PackCLJR(u, v, y0, y1, y2, y3)
		buf[mp], buf[mp+1], buf[mp+2], buf[mp+3] = byte(word), byte(word>>8), byte(word>>16), byte(word>>24)
	}
}
