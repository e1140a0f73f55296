package chart

import (
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/utils"
)

// Traces returns one grey line per visible country, followed by one red
// marker per country for the current day.
func Traces(in Input, labels Labels) []schema.Trace {
	data := dataTypeData(in.Selection.DataType, labels)
	total := labels.Translate("HoverTotal", data)
	window := labels.Translate(windowMessage("HoverWeek", "HoverTwoWeeks", in.Selection.Window), data)
	template := "<br>" + total + ": %{x:,}<br>" + window + ": %{y:,}<extra></extra>"

	mode := "lines"
	if len(in.Visible) <= dailyMarkerLimit {
		mode = "lines+markers"
	}

	traces := make([]schema.Trace, 0, 2*len(in.Visible))
	for i, s := range in.Visible {
		n := clampDay(in.Day, len(s.Cases))
		text := make([]string, n)
		for j := 0; j < n && j < len(in.Dates); j++ {
			text[j] = s.Country + "<br>" + utils.FormatDate(in.Dates[j])
		}

		traces = append(traces, schema.Trace{
			X:             s.Cases.Head(n),
			Y:             s.Slope.Head(n),
			Name:          s.Country,
			Text:          text,
			Mode:          mode,
			Type:          "scatter",
			LegendGroup:   i,
			Marker:        schema.Marker{Size: 4, Color: GreyColor},
			Line:          &schema.Line{Color: GreyColor},
			HoverInfo:     "x+y+text",
			HoverTemplate: "%{text}" + template,
		})
	}

	for i, s := range in.Visible {
		last := clampDay(in.Day, len(s.Cases)) - 1
		traces = append(traces, schema.Trace{
			X:             schema.Values{s.Cases.At(last)},
			Y:             schema.Values{s.Slope.At(last)},
			Name:          s.Country,
			Text:          []string{s.Country},
			Mode:          "markers+text",
			Type:          "scatter",
			LegendGroup:   i,
			TextPosition:  "center right",
			Marker:        schema.Marker{Size: 6, Color: HighlightColor},
			HoverTemplate: "%{text}" + template,
		})
	}

	return traces
}

func clampDay(day, length int) int {
	if day < 0 {
		return 0
	}
	if day > length {
		return length
	}
	return day
}

func windowMessage(week, twoWeeks string, window int) string {
	if window > 7 {
		return twoWeeks
	}
	return week
}
