package trend

import (
	"github.com/bitmark-inc/covid-trends/external/csse"
	"github.com/bitmark-inc/covid-trends/schema"
)

// Aggregate is the per-date sum of every row sharing one country name.
type Aggregate struct {
	Country    string
	Cumulative schema.Values
}

// AggregateByCountry groups records by Country/Region and sums their counts
// for every date. Countries come out in order of first appearance.
// Unparsable cells count as zero.
func AggregateByCountry(records []schema.RawRecord, dates []string) []Aggregate {
	index := make(map[string]int)
	aggregated := make([]Aggregate, 0)

	for _, r := range records {
		i, ok := index[r.Country]
		if !ok {
			i = len(aggregated)
			index[r.Country] = i
			aggregated = append(aggregated, Aggregate{
				Country:    r.Country,
				Cumulative: make(schema.Values, len(dates)),
			})
		}

		sum := aggregated[i].Cumulative
		for j, d := range dates {
			sum[j] += float64(csse.ParseCount(r.Counts[d]))
		}
	}

	return aggregated
}
