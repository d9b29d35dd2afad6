package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// NewLogsCommand creates the logs command.
func NewLogsCommand() *cobra.Command {
	var (
		since  string
		until  string
		order  string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Read the cluster event log",
		Long:  "Read cluster events, newest first by default, with optional time-range filtering and paging",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &enterprise.LogsQuery{
				Order:  order,
				Limit:  limit,
				Offset: offset,
			}

			if since != "" {
				parsed, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("invalid --since timestamp: %w", err)
				}

				query.Since = parsed
			}

			if until != "" {
				parsed, err := time.Parse(time.RFC3339, until)
				if err != nil {
					return fmt.Errorf("invalid --until timestamp: %w", err)
				}

				query.Until = parsed
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			entries, err := client.Logs().List(cmd.Context(), query)
			if err != nil {
				return err
			}

			return renderOutput(entries, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Time", "Type", "Severity")

				for _, entry := range entries {
					_ = table.Append(entry.Time, entry.EventType, formatOrNA(entry.Severity))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "earliest event time (RFC 3339)")
	cmd.Flags().StringVar(&until, "until", "", "latest event time (RFC 3339)")
	cmd.Flags().StringVar(&order, "order", enterprise.OrderDesc, "sort order (asc, desc)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events (0 for the server default)")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of events to skip")

	return cmd
}
