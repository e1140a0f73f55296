// Package chart turns the visible country series into the plain data a
// front end draws: traces, layout, config and the day cursor. Nothing here
// depends on a charting library.
package chart

import (
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/utils"
)

const (
	GreyColor      = "rgba(0,0,0,0.15)"
	HighlightColor = "rgba(254, 52, 110, 1)"
	titleColor     = "rgba(254, 52, 110,1)"

	// at most this many countries get per-day markers on their lines
	dailyMarkerLimit = 2

	exportHeight = 600
	exportWidth  = 600
)

// Labels translates message ids into display text.
type Labels interface {
	Translate(id string, data map[string]interface{}) string
}

// Input is everything one render depends on.
type Input struct {
	Selection schema.Selection
	Dates     []string
	Visible   []schema.CountrySeries
	Day       int
	MinDay    int
	Bounds    schema.AxisRanges
	UserRange *schema.AxisRanges
}

// New builds the ChartData for one render. The result shares no slices with
// the input.
func New(in Input, labels Labels) schema.ChartData {
	ranges := in.Bounds
	if in.UserRange != nil {
		ranges = *in.UserRange
	}

	return schema.ChartData{
		UIState:   in.Selection.Clone(),
		Traces:    Traces(in, labels),
		Layout:    NewLayout(in, ranges, labels),
		Config:    NewConfig(labels),
		Highlight: schema.Highlight{On: schema.Line{Color: HighlightColor}, Off: schema.Line{Color: GreyColor}},
		Cursor:    NewCursor(in),
		Bounds:    in.Bounds,
		UserRange: in.UserRange != nil,
	}
}

// NewCursor describes the current day.
func NewCursor(in Input) schema.Cursor {
	c := schema.Cursor{
		Day:    in.Day,
		MinDay: in.MinDay,
		MaxDay: len(in.Dates),
	}
	if in.Day > 0 && in.Day <= len(in.Dates) {
		label := in.Dates[in.Day-1]
		c.Date = utils.FormatDate(label)
		c.DateLabel = utils.DateToText(label)
	}
	return c
}

// DataTypeLabel is the display name of a data type.
func DataTypeLabel(d schema.DataType, labels Labels) string {
	switch d {
	case schema.DataTypeDeaths:
		return labels.Translate("ReportedDeaths", nil)
	default:
		return labels.Translate("ConfirmedCases", nil)
	}
}

func dataTypeData(d schema.DataType, labels Labels) map[string]interface{} {
	return map[string]interface{}{"DataType": DataTypeLabel(d, labels)}
}
