package art

import "os"

// useSIMD is the feature selector from §6 ("Feature selector (env/build)"):
// a toggle between a scalar and a vector implementation of the Sorted16
// lookup. Set ART_SIMD=0 to force the scalar path; it is on by default.
// Both paths call the same findChildNode16, which is already the scalar
// fallback — Go lacks portable SIMD intrinsics in the standard toolchain,
// so there is no separate vector code path to select here, and the two
// "modes" are intentionally bit-identical. The toggle exists so a future
// assembly or compiler-intrinsic backend can be wired in behind it without
// changing node16's exported behavior.
var useSIMD = true

func init() {
	if v := os.Getenv("ART_SIMD"); v == "0" || v == "false" {
		useSIMD = false
	}
}

// findChildNode16Vector is the selected path when useSIMD is true. It is
// scalar today for the reason documented above, but kept as its own
// function (rather than an alias) so a real vectorized implementation can
// replace its body without touching call sites or the scalar fallback.
func findChildNode16Vector(keys *[16]byte, numChildren uint16, b byte) int {
	return findChildNode16(keys, numChildren, b)
}
