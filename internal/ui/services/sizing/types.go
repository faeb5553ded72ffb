package sizing

// Width increments for menu width snapping, in layout units
const (
	DesktopIncrement float64 = 64
	MobileIncrement  float64 = 56
)

// minIncrements is the narrowest a snapped width may be, in increments
const minIncrements = 1.5

// Increment returns the increment a menu uses for the given density
func Increment(desktop bool) float64 {
	if desktop {
		return DesktopIncrement
	}
	return MobileIncrement
}
