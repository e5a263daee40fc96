package blipvert

import "github.com/blipvert-go/blipvert/internal/kernel"

// PaletteEntry is one slot of the 256-entry-or-fewer palette a
// palettized RGB format (RGB8/RGB4/RGB1) indexes into. Order is BGR to
// match the on-disk convention those formats inherit from their
// Windows DIB heritage.
type PaletteEntry = kernel.PaletteEntry
