package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// NewNodesCommand creates the nodes command group.
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Manage cluster nodes",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesGetCommand())
	cmd.AddCommand(newNodesUpdateCommand())
	cmd.AddCommand(newNodesRemoveCommand())
	cmd.AddCommand(newNodesActionCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cluster nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			nodes, err := client.Nodes().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(nodes, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Address", "Status", "Shards", "Cores", "Memory", "Version")

				for _, node := range nodes {
					_ = table.Append(
						formatUID(node.UID),
						formatOrNA(node.Addr),
						formatOrNA(node.Status),
						formatUID(node.ShardCount),
						formatUID(node.Cores),
						formatMemory(node.TotalMemory),
						formatOrNA(node.SoftwareVersion),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newNodesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get UID",
		Short: "Show a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			node, err := client.Nodes().Get(cmd.Context(), uid)
			if err != nil {
				return err
			}

			return renderOutput(node, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("UID", formatUID(node.UID))
				_ = table.Append("Address", formatOrNA(node.Addr))
				_ = table.Append("Status", formatOrNA(node.Status))
				_ = table.Append("Architecture", formatOrNA(node.Architecture))
				_ = table.Append("Cores", formatUID(node.Cores))
				_ = table.Append("Memory", formatMemory(node.TotalMemory))
				_ = table.Append("OS", formatOrNA(node.OSVersion))
				_ = table.Append("Software", formatOrNA(node.SoftwareVersion))
				_ = table.Append("Rack", formatOrNA(node.RackID))
				_ = table.Append("Shards", formatUID(node.ShardCount))
				_ = table.Append("Uptime", formatUint(node.Uptime))
				_ = table.Append("External Addresses", formatOrNA(strings.Join(node.ExternalAddr, ", ")))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newNodesUpdateCommand() *cobra.Command {
	var rackID string

	cmd := &cobra.Command{
		Use:   "update UID",
		Short: "Update a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &enterprise.NodeUpdateRequest{}
			if cmd.Flags().Changed("rack-id") {
				request.RackID = &rackID
			}

			node, err := client.Nodes().Update(cmd.Context(), uid, request)
			if err != nil {
				return err
			}

			return renderOutput(node, func() error {
				fmt.Printf("Updated node %d\n", node.UID)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&rackID, "rack-id", "", "rack identifier for rack-aware placement")

	return cmd
}

func newNodesRemoveCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove UID",
		Short: "Remove a node from the cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really remove node %d? Re-run with --force to confirm\n", uid)

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := client.Cluster().RemoveNode(cmd.Context(), uid)
			if err != nil {
				return err
			}

			return renderOutput(action, func() error {
				fmt.Printf("Node removal started (action %s)\n", formatOrNA(action.ActionUID))

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newNodesActionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "action UID NAME",
		Short: "Trigger a maintenance action on a node",
		Long:  "Trigger a named node action such as check, maintenance_on, or maintenance_off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			action, err := client.Nodes().Action(cmd.Context(), uid, args[1])
			if err != nil {
				return err
			}

			return renderOutput(action, func() error {
				fmt.Printf("Action %s started on node %d (action %s)\n", args[1], uid, formatOrNA(action.ActionUID))

				return nil
			})
		},
	}
}
