package trend

import (
	"github.com/bitmark-inc/covid-trends/schema"
)

const perPopulation = 100000

// Transform masks counts below minCases and computes the trailing-window
// slope. cases[i] is cumulative[i] when it reaches minCases, otherwise
// undefined. slope[i] is cumulative[i]-cumulative[i-windowSize], undefined for
// the first windowSize points and wherever cases[i] is undefined.
func Transform(cumulative schema.Values, windowSize int, minCases float64) (cases, slope schema.Values) {
	cases = make(schema.Values, len(cumulative))
	slope = make(schema.Values, len(cumulative))

	for i, c := range cumulative {
		if schema.IsDefined(c) && c >= minCases {
			cases[i] = c
		} else {
			cases[i] = schema.Undefined()
		}

		if i < windowSize || windowSize <= 0 || !schema.IsDefined(cases[i]) {
			slope[i] = schema.Undefined()
			continue
		}
		slope[i] = cumulative[i] - cumulative[i-windowSize]
	}

	return cases, slope
}

// Normalize scales every defined value to a rate per 100,000 people.
func Normalize(values schema.Values, population float64) schema.Values {
	out := make(schema.Values, len(values))
	scale := population / perPopulation
	for i, v := range values {
		if !schema.IsDefined(v) || scale <= 0 {
			out[i] = schema.Undefined()
			continue
		}
		out[i] = v / scale
	}
	return out
}
