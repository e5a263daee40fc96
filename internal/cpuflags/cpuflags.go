// Package cpuflags picks the process-wide default for the faster-looping
// buffer-size heuristic from the host's CPU feature set, the way the
// teacher package picks its AVX2 dispatch default at init time.
package cpuflags

import "golang.org/x/sys/cpu"

// fasterLoopingDefault is true on hosts whose CPU exposes wide SIMD
// (AVX2), where the sentinel-byte-padded, faster-looping buffer layout
// pays for itself; narrower hosts default to the exact layout.
var fasterLoopingDefault bool

func init() {
	fasterLoopingDefault = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// DefaultFasterLooping returns the CPU-derived default for the
// use-faster-looping flag, consulted once at library initialization.
func DefaultFasterLooping() bool {
	return fasterLoopingDefault
}
