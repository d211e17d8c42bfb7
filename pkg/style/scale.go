package style

// Default visual size range for node rendering, in pixels.
const (
	DefaultMinSize = 15
	DefaultMaxSize = 70
)

// SizeScale maps weight values from an observed range into a visual size
// range by linear interpolation.
type SizeScale struct {
	Range   WeightRange
	MinSize float64
	MaxSize float64
}

// NewSizeScale creates a scale over the given weight range.
// Non-positive size bounds fall back to the defaults.
func NewSizeScale(r WeightRange, minSize, maxSize float64) SizeScale {
	if minSize <= 0 {
		minSize = DefaultMinSize
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return SizeScale{Range: r, MinSize: minSize, MaxSize: maxSize}
}

// Value maps a weight to its visual size. Values outside the range clamp to
// the size bounds; that cannot happen when the range was extracted from the
// same elements, but ranges may be supplied independently.
func (s SizeScale) Value(v float64) float64 {
	return Scale(v, s.Range, s.MinSize, s.MaxSize)
}

// Scale linearly interpolates v from r into [minSize, maxSize], clamping
// results outside the bounds. A degenerate range (Min == Max) maps
// everything to minSize.
func Scale(v float64, r WeightRange, minSize, maxSize float64) float64 {
	if r.Max == r.Min {
		return minSize
	}
	size := minSize + (v-r.Min)/(r.Max-r.Min)*(maxSize-minSize)
	if size < minSize {
		return minSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}
