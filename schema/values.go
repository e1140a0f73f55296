package schema

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Values is a numeric series in which NaN marks an undefined point. On the
// wire undefined points are encoded as null.
type Values []float64

// Undefined returns the sentinel used for a masked point.
func Undefined() float64 {
	return math.NaN()
}

// IsDefined reports whether v is a plottable number.
func IsDefined(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Defined reports whether the i-th point is defined.
func (v Values) Defined(i int) bool {
	if i < 0 || i >= len(v) {
		return false
	}
	return IsDefined(v[i])
}

// At returns the i-th point, or NaN when i is out of range.
func (v Values) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return math.NaN()
	}
	return v[i]
}

// Max returns the largest defined value. ok is false when nothing is defined.
func (v Values) Max() (max float64, ok bool) {
	for _, f := range v {
		if !IsDefined(f) {
			continue
		}
		if !ok || f > max {
			max = f
			ok = true
		}
	}
	return max, ok
}

// Clone returns a copy that shares no memory with v.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	c := make(Values, len(v))
	copy(c, v)
	return c
}

// Head returns a copy of the first n points, n clamped to [0, len(v)].
func (v Values) Head(n int) Values {
	if n < 0 {
		n = 0
	}
	if n > len(v) {
		n = len(v)
	}
	return v[:n].Clone()
}

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !IsDefined(f) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (v *Values) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*v = nil
		return nil
	}

	out := make(Values, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *p
		}
	}
	*v = out
	return nil
}
