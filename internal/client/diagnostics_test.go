package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDiagnosticsClient(t *testing.T) {
	t.Parallel()

	t.Run("run with explicit checks", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.DiagnosticReport{
			ReportID: "report-1",
			Results: []enterprise.DiagnosticResult{
				{CheckName: "node_memory", Status: "pass"},
				{CheckName: "shard_placement", Status: "warn", Message: "uneven shard distribution"},
			},
			Summary: &enterprise.DiagnosticSummary{TotalChecks: 2, Passed: 1, Warnings: 1},
		})

		report, err := server.Client().Diagnostics().Run(context.Background(), &enterprise.DiagnosticCheckRequest{
			Checks:   []string{"node_memory", "shard_placement"},
			NodeUIDs: []uint32{1, 2},
		})
		require.NoError(t, err)
		require.Len(t, report.Results, 2)
		assert.Equal(t, "warn", report.Results[1].Status)
		require.NotNil(t, report.Summary)
		assert.Equal(t, uint32(1), report.Summary.Warnings)

		server.AssertCalled(t, "POST", "/v1/diagnostics")
		assert.Contains(t, string(server.LastCall(t).Body), `"checks":["node_memory","shard_placement"]`)
		assert.Contains(t, string(server.LastCall(t).Body), `"node_uids":[1,2]`)
	})

	t.Run("run with nil request sends empty object", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.DiagnosticReport{ReportID: "report-2"})

		report, err := server.Client().Diagnostics().Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "report-2", report.ReportID)

		server.AssertCalled(t, "POST", "/v1/diagnostics")
		assert.JSONEq(t, `{}`, string(server.LastCall(t).Body))
	})

	t.Run("checks is never nil", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []string{})

		checks, err := server.Client().Diagnostics().Checks(context.Background())
		require.NoError(t, err)
		require.NotNil(t, checks)
		assert.Empty(t, checks)
		server.AssertCalled(t, "GET", "/v1/diagnostics/checks")
	})

	t.Run("last report", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.DiagnosticReport{ReportID: "report-3"})

		report, err := server.Client().Diagnostics().LastReport(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "report-3", report.ReportID)
		server.AssertCalled(t, "GET", "/v1/diagnostics/last")
	})

	t.Run("report by id escapes the path", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, enterprise.DiagnosticReport{ReportID: "report/4"})

		report, err := server.Client().Diagnostics().Report(context.Background(), "report/4")
		require.NoError(t, err)
		assert.Equal(t, "report/4", report.ReportID)
		server.AssertCalled(t, "GET", "/v1/diagnostics/reports/report%2F4")
	})

	t.Run("reports is never nil", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []enterprise.DiagnosticReport{})

		reports, err := server.Client().Diagnostics().Reports(context.Background())
		require.NoError(t, err)
		require.NotNil(t, reports)
		assert.Empty(t, reports)
		server.AssertCalled(t, "GET", "/v1/diagnostics/reports")
	})
}
