package schema

// AxisRange is a [min, max] pair.
type AxisRange [2]float64

// AxisRanges groups the ranges of both axes.
type AxisRanges struct {
	X AxisRange `json:"x"`
	Y AxisRange `json:"y"`
}

type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

type Marker struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type Line struct {
	Color string `json:"color"`
}

// Trace is one drawable series, independent of any charting library.
type Trace struct {
	X             Values   `json:"x"`
	Y             Values   `json:"y"`
	Name          string   `json:"name"`
	Text          []string `json:"text"`
	Mode          string   `json:"mode"`
	Type          string   `json:"type"`
	LegendGroup   int      `json:"legendgroup"`
	TextPosition  string   `json:"textposition,omitempty"`
	Marker        Marker   `json:"marker"`
	Line          *Line    `json:"line,omitempty"`
	HoverInfo     string   `json:"hoverinfo,omitempty"`
	HoverTemplate string   `json:"hovertemplate"`
}

type Axis struct {
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Range     AxisRange `json:"range"`
	TitleFont Font      `json:"titlefont"`
}

type Layout struct {
	Title      string `json:"title"`
	ShowLegend bool   `json:"showlegend"`
	AutoRange  bool   `json:"autorange"`
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	HoverMode  string `json:"hovermode"`
	Font       Font   `json:"font"`
}

type ImageOptions struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	Height   int    `json:"height"`
	Width    int    `json:"width"`
	Scale    int    `json:"scale"`
}

type Config struct {
	Responsive           bool         `json:"responsive"`
	ToImageButtonOptions ImageOptions `json:"toImageButtonOptions"`
}

// Highlight describes the style a front end applies to every trace of a
// hovered country, and the style it restores afterwards.
type Highlight struct {
	On  Line `json:"on"`
	Off Line `json:"off"`
}

// Cursor is the animation position. Day is 1-based: the chart shows the
// first Day dates.
type Cursor struct {
	Day       int    `json:"day"`
	MinDay    int    `json:"min_day"`
	MaxDay    int    `json:"max_day"`
	Date      string `json:"date"`
	DateLabel string `json:"date_label"`
}

// ChartData is everything a front end needs for one render.
type ChartData struct {
	UIState   Selection  `json:"uistate"`
	Traces    []Trace    `json:"traces"`
	Layout    Layout     `json:"layout"`
	Config    Config     `json:"config"`
	Highlight Highlight  `json:"highlight"`
	Cursor    Cursor     `json:"cursor"`
	Bounds    AxisRanges `json:"bounds"`
	UserRange bool       `json:"user_range"`
}
