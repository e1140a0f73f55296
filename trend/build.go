package trend

import (
	"github.com/bitmark-inc/covid-trends/schema"
)

// PopulationLookup returns the population of a country.
type PopulationLookup func(country string) (float64, error)

// Build runs the whole reshaping pipeline for one dataset: aggregation,
// transformation, the maxCases filter and, when requested, normalization.
// Threshold and maxCases apply to raw counts. In normalized mode countries
// without a population entry are left out.
func Build(dataset schema.Dataset, params schema.SeriesParams, population PopulationLookup) []schema.CountrySeries {
	if dataset.Empty() {
		return []schema.CountrySeries{}
	}

	aggregated := AggregateByCountry(dataset.Records, dataset.Dates)

	result := make([]schema.CountrySeries, 0, len(aggregated))
	for _, a := range aggregated {
		cases, slope := Transform(a.Cumulative, params.WindowSize, params.MinCases)

		maxCases, ok := cases.Max()
		if !ok || maxCases <= params.MinCases {
			continue
		}

		s := schema.CountrySeries{
			Country:    a.Country,
			Dates:      append([]string(nil), dataset.Dates...),
			Cumulative: a.Cumulative,
			Cases:      cases,
			Slope:      slope,
			MaxCases:   maxCases,
		}

		if params.Normalize {
			if population == nil {
				continue
			}
			p, err := population(a.Country)
			if err != nil || p <= 0 {
				continue
			}
			s.Cases = Normalize(cases, p)
			s.Slope = Normalize(slope, p)
			s.MaxCases, _ = s.Cases.Max()
		}

		result = append(result, s)
	}

	return result
}

// Visible keeps the series whose country is part of the selection, in
// dataset order.
func Visible(series []schema.CountrySeries, countries []string) []schema.CountrySeries {
	selected := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		selected[c] = struct{}{}
	}

	visible := make([]schema.CountrySeries, 0, len(countries))
	for _, s := range series {
		if _, ok := selected[s.Country]; ok {
			visible = append(visible, s)
		}
	}
	return visible
}
