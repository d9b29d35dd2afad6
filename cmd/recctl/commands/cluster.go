package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// NewClusterCommand creates the cluster command group.
func NewClusterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Manage the cluster",
		Long:  "Inspect and update cluster-wide settings, policy, and licensing",
	}

	cmd.AddCommand(newClusterInfoCommand())
	cmd.AddCommand(newClusterUpdateCommand())
	cmd.AddCommand(newClusterPolicyCommand())
	cmd.AddCommand(newClusterTopologyCommand())
	cmd.AddCommand(newClusterAlertsCommand())
	cmd.AddCommand(newClusterLicenseCommand())
	cmd.AddCommand(newClusterStatsCommand())

	return cmd
}

func newClusterInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cluster information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			info, err := client.Cluster().Info(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(info, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Name", info.Name)
				_ = table.Append("Version", formatOrNA(info.Version))
				_ = table.Append("Status", formatOrNA(info.Status))
				_ = table.Append("Nodes", formatUID(uint32(len(info.Nodes))))
				_ = table.Append("Databases", formatUID(uint32(len(info.Databases))))
				_ = table.Append("Created", formatOrNA(info.Created))

				if info.RackAware != nil {
					_ = table.Append("Rack Aware", formatBool(*info.RackAware))
				}

				if info.LicenseExpired != nil {
					_ = table.Append("License Expired", formatBool(*info.LicenseExpired))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newClusterUpdateCommand() *cobra.Command {
	var (
		name     string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update cluster settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &enterprise.ClusterUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("timezone") {
				request.Timezone = &timezone
			}

			info, err := client.Cluster().Update(cmd.Context(), request)
			if err != nil {
				return err
			}

			return renderOutput(info, func() error {
				fmt.Printf("Updated cluster %s\n", info.Name)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new cluster name")
	cmd.Flags().StringVar(&timezone, "timezone", "", "cluster timezone")

	return cmd
}

func newClusterPolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Show the cluster policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			policy, err := client.Cluster().Policy(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(policy, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				if policy.AutoRecovery != nil {
					_ = table.Append("Auto Recovery", formatBool(*policy.AutoRecovery))
				}

				if policy.RackAware != nil {
					_ = table.Append("Rack Aware", formatBool(*policy.RackAware))
				}

				_ = table.Append("Default Shards Placement", formatOrNA(policy.DefaultShardsPlacement))
				_ = table.Append("Redis Upgrade Policy", formatOrNA(policy.RedisUpgradePolicy))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newClusterTopologyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topology",
		Short: "Show node placement across the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			topology, err := client.Cluster().Topology(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(topology, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Address", "Role", "Status", "Memory Used", "Memory Total")

				for _, node := range topology.Nodes {
					_ = table.Append(
						formatUID(node.UID),
						formatOrNA(node.Address),
						formatOrNA(node.Role),
						formatOrNA(node.Status),
						formatMemory(node.UsedMemory),
						formatMemory(node.TotalMemory),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newClusterAlertsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show cluster alert state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			alerts, err := client.Cluster().Alerts(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(alerts, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Alert", "Enabled", "Triggered", "Severity", "Changed")

				for name, alert := range alerts {
					enabled, triggered := NotAvailable, NotAvailable
					if alert.Enabled != nil {
						enabled = formatBool(*alert.Enabled)
					}

					if alert.State != nil {
						triggered = formatBool(*alert.State)
					}

					_ = table.Append(name, enabled, triggered, formatOrNA(alert.Severity), formatOrNA(alert.ChangeTime))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newClusterLicenseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "license",
		Short: "Show the cluster license",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			license, err := client.License().Get(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(license, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Type", formatOrNA(license.Type))
				_ = table.Append("Owner", formatOrNA(license.Owner))
				_ = table.Append("Expired", formatBool(license.Expired))
				_ = table.Append("Expiration", formatOrNA(license.ExpirationDate))
				_ = table.Append("Shards Limit", formatUID(license.ShardsLimit))
				_ = table.Append("Node Limit", formatUID(license.NodeLimit))
				_ = table.Append("Features", formatOrNA(strings.Join(license.Features, ", ")))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newClusterStatsCommand() *cobra.Command {
	var interval string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cluster statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var query *enterprise.StatsQuery
			if interval != "" {
				query = &enterprise.StatsQuery{Interval: interval}
			}

			stats, err := client.Stats().Cluster(cmd.Context(), query)
			if err != nil {
				return err
			}

			return renderOutput(stats, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Interval", "Start", "End", "Samples")

				for _, bucket := range stats.Intervals {
					_ = table.Append(
						formatOrNA(bucket.Interval),
						formatOrNA(bucket.STime),
						formatOrNA(bucket.ETime),
						formatUID(uint32(len(bucket.Values))),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&interval, "interval", "", "aggregation interval, e.g. 1hour")

	return cmd
}
