package csse

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-trends/schema"
)

const (
	logPrefix = "csse"

	ConfirmedURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_confirmed_global.csv"
	DeathsURL    = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/time_series_covid19_deaths_global.csv"

	defaultTimeout = 30 * time.Second

	// number of fixed columns before the first date column
	fixedColumns = 4
)

var (
	ErrUnknownDataType = fmt.Errorf("unknown data type")
	ErrResponseStatus  = fmt.Errorf("unexpected response status")
	ErrInvalidHeader   = fmt.Errorf("invalid csv header")
)

// Source - interface to fetch a CSSE time series
type Source interface {
	Fetch(ctx context.Context, dataType schema.DataType) (schema.Dataset, error)
}

type csse struct {
	client *http.Client
	urls   map[schema.DataType]string
}

// Fetch downloads and decodes the time series of the given data type.
func (c *csse) Fetch(ctx context.Context, dataType schema.DataType) (schema.Dataset, error) {
	url, ok := c.urls[dataType]
	if !ok {
		return schema.Dataset{}, ErrUnknownDataType
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return schema.Dataset{}, err
	}

	resp, err := c.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get csse time series")
		return schema.Dataset{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Error("get csse time series")
		return schema.Dataset{}, fmt.Errorf("%w: %d", ErrResponseStatus, resp.StatusCode)
	}

	dates, records, err := Decode(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("decode csse time series")
		return schema.Dataset{}, err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"type":    dataType,
		"dates":   len(dates),
		"records": len(records),
	}).Debug("data from csse")

	return schema.Dataset{
		DataType:  dataType,
		Dates:     dates,
		Records:   records,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Decode reads a CSSE time-series csv. The first four header columns are
// Province/State, Country/Region, Lat and Long, every following column is a
// date label. An empty input or a header without rows is not an error.
func Decode(r io.Reader) ([]string, []schema.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []string{}, []schema.RawRecord{}, nil
	}
	if nil != err {
		return nil, nil, err
	}
	if len(header) < fixedColumns {
		return nil, nil, fmt.Errorf("%w: %d columns", ErrInvalidHeader, len(header))
	}

	dates := make([]string, 0, len(header)-fixedColumns)
	for _, h := range header[fixedColumns:] {
		dates = append(dates, strings.TrimSpace(h))
	}

	records := make([]schema.RawRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, nil, err
		}
		records = append(records, parseRow(row, dates))
	}

	return dates, records, nil
}

func parseRow(row []string, dates []string) schema.RawRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	record := schema.RawRecord{
		Province: strings.TrimSpace(cell(0)),
		Country:  strings.TrimSpace(cell(1)),
		Lat:      cell(2),
		Long:     cell(3),
		Counts:   make(map[string]string, len(dates)),
	}
	for i, d := range dates {
		record.Counts[d] = cell(fixedColumns + i)
	}
	return record
}

// NewCSSE - new csse time series source. Empty urls fall back to the
// upstream CSSE files.
func NewCSSE(client *http.Client, confirmedURL, deathsURL string) Source {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if confirmedURL == "" {
		confirmedURL = ConfirmedURL
	}
	if deathsURL == "" {
		deathsURL = DeathsURL
	}

	return &csse{
		client: client,
		urls: map[schema.DataType]string{
			schema.DataTypeConfirmed: confirmedURL,
			schema.DataTypeDeaths:    deathsURL,
		},
	}
}
