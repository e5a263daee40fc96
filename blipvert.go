package blipvert

import "github.com/blipvert-go/blipvert/internal/cpuflags"

// useFasterLooping is the process-wide, intentionally unsynchronized
// flag controlling whether CalculateBufferSize pads RGB24/IYU2 buffers
// with a trailing sentinel byte for faster unrolled loops. It is a
// plain package variable, not behind a mutex or atomic: callers are
// expected to set it once at startup, not race it against converters.
var useFasterLooping = cpuflags.DefaultFasterLooping()

// InitializeLibrary resets package-wide state to its defaults. It must
// be called before any other exported function; it is not safe to call
// concurrently with conversions.
func InitializeLibrary() {
	useFasterLooping = cpuflags.DefaultFasterLooping()
}

// GetUseFasterLooping reports the current faster-looping setting.
func GetUseFasterLooping() bool {
	return useFasterLooping
}

// SetUseFasterLooping overrides the faster-looping default. The flag is
// read by CalculateBufferSize only; it has no effect on already
// allocated buffers.
func SetUseFasterLooping(v bool) {
	useFasterLooping = v
}
