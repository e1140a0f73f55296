package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-trends/consts"
	"github.com/bitmark-inc/covid-trends/external/csse"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/utils"
)

const logPrefix = "session"

var (
	ErrUnknownDataType = fmt.Errorf("unknown data type")
	ErrInvalidWindow   = fmt.Errorf("unsupported slope window")
	ErrInvalidRange    = fmt.Errorf("invalid axis range")
	ErrStaleFetch      = fmt.Errorf("fetch superseded by a newer one")
)

// Status describes the last fetch.
type Status struct {
	DataType  schema.DataType `json:"data_type"`
	DatasetID string          `json:"dataset_id"`
	Seq       uint64          `json:"seq"`
	Started   uint64          `json:"started"`
	Dates     int             `json:"dates"`
	Records   int             `json:"records"`
	FetchedAt time.Time       `json:"fetched_at"`
	Pending   bool            `json:"pending"`
	LastError string          `json:"last_error,omitempty"`
}

// Country is one entry of the country catalogue.
type Country struct {
	Name     string  `json:"name"`
	MaxCases float64 `json:"max_cases"`
	Selected bool    `json:"selected"`
}

// Session owns the state of a single user session and runs the
// fetch-and-transform cycle whenever the selection changes.
type Session struct {
	sync.RWMutex

	source csse.Source
	params Params
	scope  tally.Scope

	state State
	// desired is the latest requested selection; it becomes state.Selection
	// once its fetch commits.
	desired   schema.Selection
	started   uint64
	finished  uint64
	lastError string
}

// Option customises a Session.
type Option func(*Session)

// WithScope reports fetch metrics to scope.
func WithScope(scope tally.Scope) Option {
	return func(s *Session) {
		s.scope = scope
	}
}

// WithMinCases overrides the minimum count threshold.
func WithMinCases(minCases float64) Option {
	return func(s *Session) {
		s.params.MinCases = minCases
	}
}

// WithLanguage selects the language of chart labels.
func WithLanguage(lang string) Option {
	return func(s *Session) {
		s.params.Labels = utils.NewTranslator(lang)
	}
}

// New creates a session with the given initial selection. No data is
// fetched until Refresh is called.
func New(source csse.Source, initial schema.Selection, opts ...Option) *Session {
	s := &Session{
		source: source,
		params: Params{
			MinCases:   consts.DefaultMinCases,
			Population: consts.Population,
			Labels:     utils.NewTranslator("en"),
		},
		scope:   tally.NoopScope,
		desired: initial.Clone(),
		state: State{
			Selection: initial.Clone(),
			Dataset:   schema.Dataset{DataType: initial.DataType, Dates: []string{}},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateSelection checks the toggles of a selection.
func ValidateSelection(sel schema.Selection) error {
	if !sel.DataType.Valid() {
		return ErrUnknownDataType
	}
	if !consts.ValidWindowSize(sel.Window) {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, sel.Window)
	}
	return nil
}

// Select records a new selection and, when it differs from the latest
// requested one or from the applied one, runs a full fetch-and-transform
// cycle for it.
func (s *Session) Select(ctx context.Context, sel schema.Selection) error {
	if err := ValidateSelection(sel); err != nil {
		return err
	}

	s.Lock()
	// A selection whose last fetch failed is retried once nothing is in
	// flight.
	idle := s.finished == s.started
	changed := !s.desired.Equal(sel) || (idle && !s.state.Selection.Equal(sel))
	s.desired = sel.Clone()
	s.Unlock()

	if !changed {
		return nil
	}
	return s.Refresh(ctx)
}

// Desired returns the latest requested selection.
func (s *Session) Desired() schema.Selection {
	s.RLock()
	defer s.RUnlock()
	return s.desired.Clone()
}

// Refresh fetches the dataset for the latest requested selection and
// replaces the current one. A result is discarded when a newer fetch has
// been started in the meantime. A failed fetch keeps the prior state.
func (s *Session) Refresh(ctx context.Context) error {
	s.Lock()
	s.started++
	seq := s.started
	sel := s.desired.Clone()
	s.Unlock()

	id := uuid.New().String()
	logger := log.WithFields(log.Fields{"prefix": logPrefix, "fetch": id, "seq": seq, "type": sel.DataType})
	logger.Debug("fetch started")

	timer := s.scope.Timer("fetch.latency").Start()
	dataset, err := s.source.Fetch(ctx, sel.DataType)
	timer.Stop()

	s.Lock()
	defer s.Unlock()

	if seq != s.started {
		s.scope.Counter("fetch.discarded").Inc(1)
		logger.WithField("latest", s.started).Info("discard superseded fetch")
		return ErrStaleFetch
	}

	s.finished = seq
	if err != nil {
		s.scope.Counter("fetch.failed").Inc(1)
		s.lastError = err.Error()
		logger.WithField("error", err).Error("fetch failed, keep prior state")
		sentry.CaptureException(err)
		return err
	}

	dataset.ID = id
	dataset.Seq = seq
	if dataset.Dates == nil {
		dataset.Dates = []string{}
	}

	if !s.state.Selection.Equal(sel) {
		s.state.UserRange = nil
	}
	s.state.Selection = sel
	s.state.Dataset = dataset
	s.state.Day = 0
	s.lastError = ""

	if dataset.Empty() {
		logger.Warn("fetched dataset has no rows")
	}

	s.scope.Counter("fetch.success").Inc(1)
	logger.WithFields(log.Fields{"dates": len(dataset.Dates), "records": len(dataset.Records)}).Info("dataset replaced")
	return nil
}

// SetDay moves the day cursor. It is clamped to the visible range on render.
func (s *Session) SetDay(day int) {
	s.Lock()
	defer s.Unlock()
	s.state.Day = day
}

// SetUserRange keeps a manually chosen axis range for the current selection.
func (s *Session) SetUserRange(r schema.AxisRanges) error {
	if !(r.X[0] < r.X[1]) || !(r.Y[0] < r.Y[1]) {
		return ErrInvalidRange
	}
	for _, v := range []float64{r.X[0], r.X[1], r.Y[0], r.Y[1]} {
		if !schema.IsDefined(v) {
			return ErrInvalidRange
		}
	}

	s.Lock()
	defer s.Unlock()
	s.state.UserRange = &r
	s.state.RangeState = s.state.Selection.Clone()
	return nil
}

// ClearUserRange goes back to the computed bounds.
func (s *Session) ClearUserRange() {
	s.Lock()
	defer s.Unlock()
	s.state.UserRange = nil
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.RLock()
	defer s.RUnlock()
	return s.state.Clone()
}

// Render derives the chart data from the current state.
func (s *Session) Render() schema.ChartData {
	state := s.State()
	s.scope.Counter("render").Inc(1)
	return Derive(state, s.params)
}

// Countries lists every country of the current dataset that crosses the
// threshold, sorted by name.
func (s *Session) Countries() []Country {
	state := s.State()
	series := Series(state, s.params)

	countries := make([]Country, 0, len(series))
	for _, c := range series {
		countries = append(countries, Country{
			Name:     c.Country,
			MaxCases: c.MaxCases,
			Selected: state.Selection.Includes(c.Country),
		})
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries
}

// Status reports the last fetch.
func (s *Session) Status() Status {
	s.RLock()
	defer s.RUnlock()

	d := s.state.Dataset
	return Status{
		DataType:  d.DataType,
		DatasetID: d.ID,
		Seq:       d.Seq,
		Started:   s.started,
		Dates:     len(d.Dates),
		Records:   len(d.Records),
		FetchedAt: d.FetchedAt,
		Pending:   s.finished != s.started,
		LastError: s.lastError,
	}
}
