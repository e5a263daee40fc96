package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// offsets422For returns the byte offsets of each 4:2:2 macropixel's
// four logical samples for the packed formats that share this layout
// family. Y42T is UYVY's field-tagged twin and shares its byte order.
func offsets422For(id FormatId) kernel.Offsets422 {
	switch id {
	case FormatYUY2:
		return kernel.Offsets422{Y0: 0, U: 1, Y1: 2, V: 3}
	case FormatUYVY, FormatY42T, FormatUYVYInterlaced:
		return kernel.Offsets422{U: 0, Y0: 1, V: 2, Y1: 3}
	case FormatYVYU:
		return kernel.Offsets422{Y0: 0, V: 1, Y1: 2, U: 3}
	case FormatVYUY:
		return kernel.Offsets422{V: 0, Y0: 1, U: 2, Y1: 3}
	default:
		return kernel.Offsets422{Y0: 0, U: 1, Y1: 2, V: 3}
	}
}
