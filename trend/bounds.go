package trend

import (
	"math"

	"github.com/bitmark-inc/covid-trends/schema"
)

const (
	boundsFloor           = 50
	normalizedBoundsFloor = 6
	boundsPadding         = 1.05
)

// BoundsFloor is the smallest axis maximum for the given mode.
func BoundsFloor(normalized bool) float64 {
	if normalized {
		return normalizedBoundsFloor
	}
	return boundsFloor
}

// CalculateBounds derives the axis ranges from the visible series.
//
//	x: [0, ceil(1.05*xmax)]
//	y: [-10^(floor(log10(ymax))-2), ceil(1.05*ymax)]
//
// xmax and ymax never drop below BoundsFloor, so an empty set still yields
// finite ranges.
func CalculateBounds(visible []schema.CountrySeries, normalized bool) schema.AxisRanges {
	floor := BoundsFloor(normalized)
	xmax, ymax := floor, floor

	for _, s := range visible {
		if m, ok := s.Cases.Max(); ok && m > xmax {
			xmax = m
		}
		if m, ok := s.Slope.Max(); ok && m > ymax {
			ymax = m
		}
	}

	return schema.AxisRanges{
		X: schema.AxisRange{0, math.Ceil(boundsPadding * xmax)},
		Y: schema.AxisRange{
			-math.Pow(10, math.Floor(math.Log10(ymax))-2),
			math.Ceil(boundsPadding * ymax),
		},
	}
}
