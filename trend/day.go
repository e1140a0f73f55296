package trend

import (
	"github.com/bitmark-inc/covid-trends/schema"
)

// MinDay returns the first day (1-based) on which any visible series has a
// positive slope, or -1 when none does.
func MinDay(visible []schema.CountrySeries) int {
	min := -1
	for _, s := range visible {
		for i, v := range s.Slope {
			if schema.IsDefined(v) && v > 0 {
				if min == -1 || i < min {
					min = i
				}
				break
			}
		}
	}

	if min == -1 {
		return -1
	}
	return min + 1
}

// ClampDay keeps the day cursor within [minDay, maxDay]. A non-positive day
// means the latest one.
func ClampDay(day, minDay, maxDay int) int {
	if day <= 0 || day > maxDay {
		day = maxDay
	}
	if minDay > 0 && day < minDay {
		day = minDay
	}
	if day > maxDay {
		day = maxDay
	}
	return day
}
