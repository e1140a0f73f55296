package consts

// CountriesOfInterest is the default country selection.
var CountriesOfInterest = []string{
	"Austria",
	"France",
	"Germany",
	"Israel",
	"Italy",
	"Spain",
	"Sweden",
	"Switzerland",
	"United Kingdom",
}

const (
	// DefaultWindowSize is the default slope window in days.
	DefaultWindowSize = 7
	// DefaultMinCases is the threshold below which a count is not plotted.
	DefaultMinCases = 50
)

// WindowSizes are the supported slope window lengths.
var WindowSizes = []int{7, 14}

// ValidWindowSize - check whether the slope window is supported
func ValidWindowSize(days int) bool {
	for _, w := range WindowSizes {
		if w == days {
			return true
		}
	}
	return false
}
