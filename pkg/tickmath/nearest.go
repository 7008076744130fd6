package tickmath

import "fmt"

// NearestUsableTick rounds tick to the nearest multiple of tickSpacing, ties
// towards positive infinity. A result outside [MinTick, MaxTick] is moved one
// spacing back inside.
func NearestUsableTick(tick, tickSpacing int) (int, error) {
	if tickSpacing <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTickSpacing, tickSpacing)
	}
	if tick < MinTick || tick > MaxTick {
		return 0, fmt.Errorf("%w: %d", ErrTickOutOfRange, tick)
	}

	// floor(tick/spacing + 1/2) == floor((2*tick + spacing) / (2*spacing))
	rounded := floorDiv(2*tick+tickSpacing, 2*tickSpacing) * tickSpacing
	switch {
	case rounded < MinTick:
		return rounded + tickSpacing, nil
	case rounded > MaxTick:
		return rounded - tickSpacing, nil
	default:
		return rounded, nil
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
