package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-trends/schema"
)

func finite(t *testing.T, r schema.AxisRanges) {
	t.Helper()
	for _, v := range []float64{r.X[0], r.X[1], r.Y[0], r.Y[1]} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "range should be finite: %v", r)
	}
}

func TestCalculateBoundsEmpty(t *testing.T) {
	r := CalculateBounds(nil, false)
	finite(t, r)
	assert.Equal(t, schema.AxisRange{0, 53}, r.X)
	assert.Equal(t, schema.AxisRange{-0.1, 53}, r.Y)

	r = CalculateBounds([]schema.CountrySeries{}, true)
	finite(t, r)
	assert.Equal(t, schema.AxisRange{0, 7}, r.X)
	assert.Equal(t, schema.AxisRange{-0.01, 7}, r.Y)
}

func TestCalculateBounds(t *testing.T) {
	visible := []schema.CountrySeries{
		{Cases: schema.Values{nan, 55, 1000}, Slope: schema.Values{nan, nan, 945}},
		{Cases: schema.Values{nan, 20000}, Slope: schema.Values{nan, 12345}},
	}

	r := CalculateBounds(visible, false)
	finite(t, r)
	assert.Equal(t, schema.AxisRange{0, 21000}, r.X)
	assert.Equal(t, float64(-100), r.Y[0])
	assert.Equal(t, math.Ceil(1.05*12345), r.Y[1])
}

func TestCalculateBoundsAllUndefined(t *testing.T) {
	visible := []schema.CountrySeries{{Cases: schema.Values{nan}, Slope: schema.Values{nan}}}
	r := CalculateBounds(visible, false)
	finite(t, r)
	assert.Equal(t, schema.AxisRange{0, 53}, r.X)
}
