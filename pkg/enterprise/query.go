package enterprise

import (
	"net/url"
	"strconv"
	"time"
)

// Log ordering values accepted by the cluster event log endpoint.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// statsTimeFormat is the timestamp layout the API accepts for stime/etime.
const statsTimeFormat = "2006-01-02T15:04:05Z07:00"

// LogsQuery filters the cluster event log. Every field is optional and the
// fields combine independently; the zero value selects everything.
type LogsQuery struct {
	// Since and Until bound the time range (stime/etime).
	Since time.Time
	Until time.Time

	// Order is OrderAsc or OrderDesc.
	Order string

	// Limit caps the number of returned entries; Offset skips past entries
	// for paging. Zero values are omitted from the request.
	Limit  int
	Offset int
}

// NewLogsQuery creates an empty log query.
func NewLogsQuery() *LogsQuery {
	return &LogsQuery{}
}

// ToValues converts the query to URL values. Nil-safe.
func (q *LogsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if !q.Since.IsZero() {
		values.Set("stime", q.Since.Format(statsTimeFormat))
	}

	if !q.Until.IsZero() {
		values.Set("etime", q.Until.Format(statsTimeFormat))
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	return values
}

// StatsQuery selects a time-series window for cluster, node, database, and
// shard statistics endpoints.
type StatsQuery struct {
	// Interval is the aggregation bucket, e.g. "1sec", "1min", "1hour".
	Interval string

	// Since and Until bound the window (stime/etime).
	Since time.Time
	Until time.Time
}

// NewStatsQuery creates an empty stats query.
func NewStatsQuery() *StatsQuery {
	return &StatsQuery{}
}

// ToValues converts the query to URL values. Nil-safe.
func (q *StatsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Interval != "" {
		values.Set("interval", q.Interval)
	}

	if !q.Since.IsZero() {
		values.Set("stime", q.Since.Format(statsTimeFormat))
	}

	if !q.Until.IsZero() {
		values.Set("etime", q.Until.Format(statsTimeFormat))
	}

	return values
}
