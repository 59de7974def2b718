package style

import "sync"

// DefaultFontSizeSP is the platform default text size in scaled pixels,
// applied beneath every flattened buffer whose root has no explicit size.
const DefaultFontSizeSP = 14.0

var (
	scaleMu   sync.RWMutex
	fontScale = 1.0
)

// SetFontScale configures the scaled-pixel to pixel ratio. Hosts set
// this from the display density and user font-size preference; the
// default of 1.0 makes sp and px coincide, which headless use and tests
// rely on.
func SetFontScale(scale float64) {
	scaleMu.Lock()
	defer scaleMu.Unlock()
	if scale > 0 {
		fontScale = scale
	}
}

// FontScale returns the current scaled-pixel ratio.
func FontScale() float64 {
	scaleMu.RLock()
	defer scaleMu.RUnlock()
	return fontScale
}

// PixelsFromSP converts a scaled-pixel value to pixels using the
// current font scale.
func PixelsFromSP(sp float64) float64 {
	return sp * FontScale()
}
