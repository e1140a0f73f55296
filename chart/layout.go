package chart

import (
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/utils"
)

// NewLayout describes titles and axes. ranges is either the computed bounds
// or a range the user picked.
func NewLayout(in Input, ranges schema.AxisRanges, labels Labels) schema.Layout {
	data := dataTypeData(in.Selection.DataType, labels)

	date := ""
	if in.Day > 0 && in.Day <= len(in.Dates) {
		date = utils.FormatDate(in.Dates[in.Day-1])
	}
	data["Date"] = date

	xTitle := labels.Translate("XAxisTitle", data)
	yTitle := labels.Translate(windowMessage("YAxisTitleWeek", "YAxisTitleTwoWeeks", in.Selection.Window), data)
	if in.Selection.Normalize {
		xTitle = labels.Translate("PerPopulation", map[string]interface{}{"Title": xTitle})
		yTitle = labels.Translate("PerPopulation", map[string]interface{}{"Title": yTitle})
	}

	titleFont := schema.Font{Size: 24, Color: titleColor}

	return schema.Layout{
		Title:      labels.Translate("ChartTitle", data),
		ShowLegend: false,
		AutoRange:  false,
		XAxis: schema.Axis{
			Title:     xTitle,
			Type:      "linear",
			Range:     ranges.X,
			TitleFont: titleFont,
		},
		YAxis: schema.Axis{
			Title:     yTitle,
			Type:      "linear",
			Range:     ranges.Y,
			TitleFont: titleFont,
		},
		HoverMode: "closest",
		Font: schema.Font{
			Family: "Open Sans, sans-serif",
			Color:  "black",
			Size:   14,
		},
	}
}

// NewConfig holds the renderer options.
func NewConfig(labels Labels) schema.Config {
	return schema.Config{
		Responsive: true,
		ToImageButtonOptions: schema.ImageOptions{
			Format:   "png",
			Filename: labels.Translate("ExportFilename", nil),
			Height:   exportHeight,
			Width:    exportWidth,
			Scale:    1,
		},
	}
}
