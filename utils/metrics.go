package utils

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// NewMetricsScope creates the root metrics scope shared by the session and
// the api. Values are reported to the log every interval. The returned
// closer flushes and stops reporting.
func NewMetricsScope(prefix string, interval time.Duration) (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   prefix,
		Tags:     map[string]string{},
		Reporter: NewLogReporter(log.InfoLevel),
	}, interval)
}

type logCapabilities struct{}

func (logCapabilities) Reporting() bool { return true }
func (logCapabilities) Tagging() bool   { return true }

// LogReporter is a tally.StatsReporter writing every reported value as a
// logrus entry with the "metrics" prefix.
type LogReporter struct {
	level log.Level
}

func NewLogReporter(level log.Level) *LogReporter {
	return &LogReporter{level: level}
}

func (r *LogReporter) entry(name string, tags map[string]string) *log.Entry {
	fields := log.Fields{"prefix": "metrics", "metric": name}
	for k, v := range tags {
		fields["tag."+k] = v
	}
	return log.WithFields(fields)
}

func (r *LogReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("counter", value).Log(r.level, "counter")
}

func (r *LogReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("gauge", value).Log(r.level, "gauge")
}

func (r *LogReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("timer", interval).Log(r.level, "timer")
}

func (r *LogReporter) ReportHistogramValueSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound float64,
	samples int64,
) {
	r.entry(name, tags).WithFields(log.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Log(r.level, "histogram")
}

func (r *LogReporter) ReportHistogramDurationSamples(
	name string,
	tags map[string]string,
	buckets tally.Buckets,
	bucketLowerBound,
	bucketUpperBound time.Duration,
	samples int64,
) {
	r.entry(name, tags).WithFields(log.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Log(r.level, "histogram")
}

func (r *LogReporter) Capabilities() tally.Capabilities {
	return logCapabilities{}
}

func (r *LogReporter) Flush() {}
