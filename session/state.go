package session

import (
	"github.com/bitmark-inc/covid-trends/chart"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/trend"
)

// State is the whole application state of one session. Derived values are
// never stored here; Derive recomputes them from State on every render.
type State struct {
	// Selection is the selection the current Dataset was fetched for.
	Selection schema.Selection
	Dataset   schema.Dataset
	// Day is the requested day cursor; 0 means the latest date.
	Day int
	// UserRange is a range set by manual zoom or pan. It only applies while
	// the selection equals RangeState.
	UserRange  *schema.AxisRanges
	RangeState schema.Selection
}

// Clone returns a copy of the state that shares no mutable memory with s.
// Dataset records are immutable once fetched and are shared.
func (s State) Clone() State {
	c := s
	c.Selection = s.Selection.Clone()
	c.RangeState = s.RangeState.Clone()
	if s.UserRange != nil {
		r := *s.UserRange
		c.UserRange = &r
	}
	return c
}

// ActiveUserRange returns the user range when it still belongs to the
// current selection.
func (s State) ActiveUserRange() *schema.AxisRanges {
	if s.UserRange == nil || !s.RangeState.Equal(s.Selection) {
		return nil
	}
	r := *s.UserRange
	return &r
}

// Params are the fixed inputs of the derivation graph.
type Params struct {
	MinCases   float64
	Population trend.PopulationLookup
	Labels     chart.Labels
}

// Series is the first stage of the graph: every country of the dataset that
// crosses the threshold, transformed for the current selection.
func Series(state State, params Params) []schema.CountrySeries {
	return trend.Build(state.Dataset, schema.SeriesParams{
		WindowSize: state.Selection.Window,
		MinCases:   params.MinCases,
		Normalize:  state.Selection.Normalize,
	}, params.Population)
}

// Derive recomputes a render top-down:
//
//	dataset -> series -> visible -> bounds, minDay, day -> traces, layout
func Derive(state State, params Params) schema.ChartData {
	series := Series(state, params)
	visible := trend.Visible(series, state.Selection.Countries)
	bounds := trend.CalculateBounds(visible, state.Selection.Normalize)
	minDay := trend.MinDay(visible)
	day := trend.ClampDay(state.Day, minDay, len(state.Dataset.Dates))

	return chart.New(chart.Input{
		Selection: state.Selection,
		Dates:     state.Dataset.Dates,
		Visible:   visible,
		Day:       day,
		MinDay:    minDay,
		Bounds:    bounds,
		UserRange: state.ActiveUserRange(),
	}, params.Labels)
}
