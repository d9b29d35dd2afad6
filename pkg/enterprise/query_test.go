package enterprise_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

func TestLogsQuery_ToValues(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	until := time.Date(2026, 8, 20, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    *enterprise.LogsQuery
		expected url.Values
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: url.Values{},
		},
		{
			name:     "empty query",
			query:    enterprise.NewLogsQuery(),
			expected: url.Values{},
		},
		{
			name:  "time range",
			query: &enterprise.LogsQuery{Since: since, Until: until},
			expected: url.Values{
				"stime": []string{"2026-08-20T09:30:00Z"},
				"etime": []string{"2026-08-20T17:00:00Z"},
			},
		},
		{
			name:  "ordering and paging",
			query: &enterprise.LogsQuery{Order: enterprise.OrderDesc, Limit: 25, Offset: 50},
			expected: url.Values{
				"order":  []string{"desc"},
				"limit":  []string{"25"},
				"offset": []string{"50"},
			},
		},
		{
			name:     "zero paging values are omitted",
			query:    &enterprise.LogsQuery{Limit: 0, Offset: 0},
			expected: url.Values{},
		},
		{
			name: "all fields",
			query: &enterprise.LogsQuery{
				Since: since,
				Until: until,
				Order: enterprise.OrderAsc,
				Limit: 10,
			},
			expected: url.Values{
				"stime": []string{"2026-08-20T09:30:00Z"},
				"etime": []string{"2026-08-20T17:00:00Z"},
				"order": []string{"asc"},
				"limit": []string{"10"},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.query.ToValues())
		})
	}
}

func TestStatsQuery_ToValues(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    *enterprise.StatsQuery
		expected url.Values
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: url.Values{},
		},
		{
			name:     "empty query",
			query:    enterprise.NewStatsQuery(),
			expected: url.Values{},
		},
		{
			name:     "interval only",
			query:    &enterprise.StatsQuery{Interval: "1hour"},
			expected: url.Values{"interval": []string{"1hour"}},
		},
		{
			name:  "interval with window",
			query: &enterprise.StatsQuery{Interval: "1min", Since: since},
			expected: url.Values{
				"interval": []string{"1min"},
				"stime":    []string{"2026-08-20T00:00:00Z"},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.query.ToValues())
		})
	}
}
