package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redisops-io/enterprise-go/internal/http"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

const diagnosticsPath = "/v1/diagnostics"

// DiagnosticsClient implements enterprise.DiagnosticsClient.
type DiagnosticsClient struct {
	httpClient *http.Client
}

// NewDiagnosticsClient creates a diagnostics client.
func NewDiagnosticsClient(httpClient *http.Client) *DiagnosticsClient {
	return &DiagnosticsClient{httpClient: httpClient}
}

// Run executes diagnostic checks. A nil request runs every check on every
// node and database.
func (c *DiagnosticsClient) Run(ctx context.Context, request *enterprise.DiagnosticCheckRequest) (*enterprise.DiagnosticReport, error) {
	if request == nil {
		request = &enterprise.DiagnosticCheckRequest{}
	}

	var out enterprise.DiagnosticReport
	if err := c.httpClient.Post(ctx, diagnosticsPath, request, &out); err != nil {
		return nil, fmt.Errorf("running diagnostics: %w", err)
	}

	return &out, nil
}

// Checks returns the names of the available diagnostic checks.
func (c *DiagnosticsClient) Checks(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.httpClient.Get(ctx, diagnosticsPath+"/checks", nil, &out); err != nil {
		return nil, fmt.Errorf("listing diagnostic checks: %w", err)
	}

	if out == nil {
		out = []string{}
	}

	return out, nil
}

// LastReport returns the most recent diagnostic report.
func (c *DiagnosticsClient) LastReport(ctx context.Context) (*enterprise.DiagnosticReport, error) {
	var out enterprise.DiagnosticReport
	if err := c.httpClient.Get(ctx, diagnosticsPath+"/last", nil, &out); err != nil {
		return nil, fmt.Errorf("getting last diagnostic report: %w", err)
	}

	return &out, nil
}

// Report returns one diagnostic report by its id.
func (c *DiagnosticsClient) Report(ctx context.Context, reportID string) (*enterprise.DiagnosticReport, error) {
	var out enterprise.DiagnosticReport

	path := diagnosticsPath + "/reports/" + url.PathEscape(reportID)
	if err := c.httpClient.Get(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("getting diagnostic report: %w", err)
	}

	return &out, nil
}

// Reports returns all stored diagnostic reports.
func (c *DiagnosticsClient) Reports(ctx context.Context) ([]enterprise.DiagnosticReport, error) {
	return listResources[enterprise.DiagnosticReport](ctx, c.httpClient, diagnosticsPath+"/reports", "diagnostic reports")
}
