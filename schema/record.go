package schema

import "time"

type DataType string

const (
	DataTypeConfirmed DataType = "confirmed"
	DataTypeDeaths    DataType = "deaths"
)

// DataTypes lists the supported data types in display order.
var DataTypes = []DataType{DataTypeConfirmed, DataTypeDeaths}

// Valid reports whether d is a known data type.
func (d DataType) Valid() bool {
	for _, t := range DataTypes {
		if t == d {
			return true
		}
	}
	return false
}

// RawRecord is one row of a CSSE time-series file. Counts maps a date label
// (M/D/YY) to the raw cell text.
type RawRecord struct {
	Province string            `json:"province"`
	Country  string            `json:"country"`
	Lat      string            `json:"lat"`
	Long     string            `json:"long"`
	Counts   map[string]string `json:"counts"`
}

// Dataset is the result of a single fetch. A new fetch replaces it entirely.
type Dataset struct {
	ID        string      `json:"id"`
	Seq       uint64      `json:"seq"`
	DataType  DataType    `json:"data_type"`
	Dates     []string    `json:"dates"`
	Records   []RawRecord `json:"-"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// Empty reports whether the dataset carries no rows.
func (d Dataset) Empty() bool {
	return len(d.Records) == 0
}
