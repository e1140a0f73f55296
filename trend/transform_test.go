package trend

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-trends/schema"
)

var nan = math.NaN()

func equalValues(t *testing.T, expected, actual schema.Values) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform(t *testing.T) {
	cumulative := schema.Values{10, 20, 55, 80, 140, 200, 260, 300}

	cases, slope := Transform(cumulative, 7, 50)

	equalValues(t, schema.Values{nan, nan, 55, 80, 140, 200, 260, 300}, cases)
	equalValues(t, schema.Values{nan, nan, nan, nan, nan, nan, nan, 290}, slope)
}

func TestTransformMasksLookbackUnderflow(t *testing.T) {
	cumulative := schema.Values{100, 200, 300, 400}

	_, slope := Transform(cumulative, 2, 0)

	equalValues(t, schema.Values{nan, nan, 200, 200}, slope)
}

func TestTransformSlopeInheritsCaseMask(t *testing.T) {
	cumulative := schema.Values{60, 70, 80, 40, 90}

	cases, slope := Transform(cumulative, 1, 50)

	for i := range cases {
		if !cases.Defined(i) {
			assert.False(t, slope.Defined(i), "slope %d should be undefined", i)
		}
	}
	assert.False(t, slope.Defined(3))
	assert.Equal(t, float64(50), slope[4])
}

func TestTransformLengths(t *testing.T) {
	for _, n := range []int{0, 1, 7, 30} {
		cumulative := make(schema.Values, n)
		for i := range cumulative {
			cumulative[i] = float64(i * 10)
		}
		for _, w := range []int{7, 14} {
			cases, slope := Transform(cumulative, w, 50)
			assert.Len(t, cases, n)
			assert.Len(t, slope, n)
			for i := 0; i < w && i < n; i++ {
				assert.False(t, slope.Defined(i))
			}
		}
	}
}

func TestTransformIsPure(t *testing.T) {
	cumulative := schema.Values{10, 20, 55, 80, 140, 200, 260, 300, 330}
	original := cumulative.Clone()

	c1, s1 := Transform(cumulative, 7, 50)
	c2, s2 := Transform(cumulative, 7, 50)

	equalValues(t, c1, c2)
	equalValues(t, s1, s2)
	equalValues(t, original, cumulative)
}

func TestNormalize(t *testing.T) {
	equalValues(t, schema.Values{250, nan}, Normalize(schema.Values{250, nan}, 100000))
	equalValues(t, schema.Values{125}, Normalize(schema.Values{250}, 200000))
}
