package schema

// CountrySeries is the per-country trajectory derived from one Dataset.
// Dates, Cumulative, Cases and Slope always have the same length.
type CountrySeries struct {
	Country    string   `json:"country"`
	Dates      []string `json:"dates"`
	Cumulative Values   `json:"cumulative"`
	Cases      Values   `json:"cases"`
	Slope      Values   `json:"slope"`
	MaxCases   float64  `json:"max_cases"`
}

// SeriesParams are the knobs of the Series Transformer.
type SeriesParams struct {
	WindowSize int     `json:"window_size"`
	MinCases   float64 `json:"min_cases"`
	Normalize  bool    `json:"normalize"`
}
