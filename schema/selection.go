package schema

import (
	"sort"
	"strconv"
	"strings"
)

// Selection holds the user toggles that change the shape of the chart.
// A change of Selection is structural: it triggers a new fetch and resets any
// user-set axis range.
type Selection struct {
	DataType  DataType `json:"data_type"`
	Countries []string `json:"countries"`
	Window    int      `json:"window"`
	Normalize bool     `json:"normalize"`
}

// Clone returns a copy that shares no memory with s.
func (s Selection) Clone() Selection {
	c := s
	c.Countries = append([]string(nil), s.Countries...)
	return c
}

// Includes reports whether the country is part of the selection.
func (s Selection) Includes(country string) bool {
	for _, c := range s.Countries {
		if c == country {
			return true
		}
	}
	return false
}

// Key is a canonical string for the selection. Country order is ignored.
func (s Selection) Key() string {
	countries := append([]string(nil), s.Countries...)
	sort.Strings(countries)
	return strings.Join([]string{
		string(s.DataType),
		strconv.Itoa(s.Window),
		strconv.FormatBool(s.Normalize),
		strings.Join(countries, "|"),
	}, ";")
}

// Equal compares two selections, ignoring country order.
func (s Selection) Equal(o Selection) bool {
	return s.Key() == o.Key()
}
