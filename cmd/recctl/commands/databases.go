package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// NewDatabasesCommand creates the databases command group.
func NewDatabasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "databases",
		Aliases: []string{"database", "db", "bdbs"},
		Short:   "Manage databases",
		Long:    "List, inspect, create, update, and delete cluster databases",
	}

	cmd.AddCommand(newDatabasesListCommand())
	cmd.AddCommand(newDatabasesGetCommand())
	cmd.AddCommand(newDatabasesCreateCommand())
	cmd.AddCommand(newDatabasesUpdateCommand())
	cmd.AddCommand(newDatabasesDeleteCommand())
	cmd.AddCommand(newDatabasesExportCommand())
	cmd.AddCommand(newDatabasesFlushCommand())
	cmd.AddCommand(newDatabasesBackupCommand())
	cmd.AddCommand(newDatabasesShardsCommand())
	cmd.AddCommand(newDatabasesUpgradeCommand())

	return cmd
}

// parseUID converts a positional UID argument.
func parseUID(arg string) (uint32, error) {
	uid, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid UID %q: %w", arg, err)
	}

	return uint32(uid), nil
}

func newDatabasesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			databases, err := client.Databases().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(databases, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Name", "Type", "Status", "Memory", "Shards", "Port")

				for _, database := range databases {
					_ = table.Append(
						formatUID(database.UID),
						database.Name,
						formatOrNA(database.Type),
						formatOrNA(database.Status),
						formatMemory(database.MemorySize),
						formatUID(database.ShardsCount),
						formatUID(uint32(database.Port)),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newDatabasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get UID",
		Short: "Show a database",
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

			database, err := client.Databases().Get(cmd.Context(), uid)
			if err != nil {
				return err
			}

			return renderOutput(database, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("UID", formatUID(database.UID))
				_ = table.Append("Name", database.Name)
				_ = table.Append("Type", formatOrNA(database.Type))
				_ = table.Append("Status", formatOrNA(database.Status))
				_ = table.Append("Version", formatOrNA(database.Version))
				_ = table.Append("Memory Limit", formatMemory(database.MemorySize))
				_ = table.Append("Memory Used", formatMemory(database.MemoryUsed))
				_ = table.Append("Port", formatUID(uint32(database.Port)))
				_ = table.Append("Sharding", formatBool(database.Sharding))
				_ = table.Append("Replication", formatBool(database.Replication))
				_ = table.Append("Persistence", formatOrNA(database.DataPersistence))
				_ = table.Append("Eviction Policy", formatOrNA(database.EvictionPolicy))
				_ = table.Append("Created", formatOrNA(database.CreatedTime))

				_ = table.Render()

				return nil
			})
		},
	}
}

//nolint:funlen // Command constructors with many flags run long
func newDatabasesCreateCommand() *cobra.Command {
	var (
		memorySize  uint64
		port        uint16
		shards      uint32
		replication bool
		persistence string
		eviction    string
		password    string
		useV2       bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &enterprise.DatabaseCreateRequest{
				Name:            args[0],
				MemorySize:      memorySize,
				Port:            port,
				DataPersistence: persistence,
				EvictionPolicy:  eviction,
				Password:        password,
			}

			if shards > 1 {
				request.Sharding = true
				request.ShardsCount = shards
			}

			if cmd.Flags().Changed("replication") {
				request.Replication = &replication
			}

			create := client.Databases().Create
			if useV2 {
				create = client.Databases().CreateV2
			}

			database, err := create(cmd.Context(), request)
			if err != nil {
				return err
			}

			return renderOutput(database, func() error {
				fmt.Printf("Created database %s (UID %d)\n", database.Name, database.UID)

				return nil
			})
		},
	}

	cmd.Flags().Uint64Var(&memorySize, "memory-size", 0, "memory limit in bytes")
	cmd.Flags().Uint16Var(&port, "port", 0, "endpoint port (0 for auto-assignment)")
	cmd.Flags().Uint32Var(&shards, "shards", 1, "number of shards")
	cmd.Flags().BoolVar(&replication, "replication", false, "enable replication")
	cmd.Flags().StringVar(&persistence, "persistence", "", "data persistence (disabled, aof, snapshot)")
	cmd.Flags().StringVar(&eviction, "eviction-policy", "", "eviction policy, e.g. volatile-lru")
	cmd.Flags().StringVar(&password, "redis-password", "", "database password")
	cmd.Flags().BoolVar(&useV2, "v2", false, "create through the asynchronous v2 endpoint")

	return cmd
}

func newDatabasesUpdateCommand() *cobra.Command {
	var (
		name       string
		memorySize uint64
	)

	cmd := &cobra.Command{
		Use:   "update UID",
		Short: "Update a database",
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

			request := &enterprise.DatabaseUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("memory-size") {
				request.MemorySize = &memorySize
			}

			database, err := client.Databases().Update(cmd.Context(), uid, request)
			if err != nil {
				return err
			}

			return renderOutput(database, func() error {
				fmt.Printf("Updated database %s (UID %d)\n", database.Name, database.UID)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new database name")
	cmd.Flags().Uint64Var(&memorySize, "memory-size", 0, "new memory limit in bytes")

	return cmd
}

func newDatabasesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete UID",
		Short: "Delete a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete database %d? Re-run with --force to confirm\n", uid)

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Databases().Delete(cmd.Context(), uid)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted database %d\n", uid)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newDatabasesExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export UID",
		Short: "Export a database's dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  databaseActionRunE(func(client enterprise.Client) databaseAction { return client.Databases().Export }, "Export"),
	}
}

func newDatabasesFlushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flush UID",
		Short: "Flush all data from a database",
		Args:  cobra.ExactArgs(1),
		RunE:  databaseActionRunE(func(client enterprise.Client) databaseAction { return client.Databases().Flush }, "Flush"),
	}
}

func newDatabasesBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup UID",
		Short: "Back up a database",
		Args:  cobra.ExactArgs(1),
		RunE:  databaseActionRunE(func(client enterprise.Client) databaseAction { return client.Databases().Backup }, "Backup"),
	}
}

func newDatabasesShardsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shards UID",
		Short: "List a database's shards",
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

			shards, err := client.Databases().Shards(cmd.Context(), uid)
			if err != nil {
				return err
			}

			return renderOutput(shards, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Node", "Role", "Status", "Slots", "Memory")

				for _, shard := range shards {
					_ = table.Append(
						shard.UID,
						formatOrNA(shard.NodeUID),
						formatOrNA(shard.Role),
						formatOrNA(shard.Status),
						formatOrNA(shard.Slots),
						formatMemory(shard.UsedMemory),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newDatabasesUpgradeCommand() *cobra.Command {
	var redisVersion string

	cmd := &cobra.Command{
		Use:   "upgrade UID",
		Short: "Upgrade a database's Redis version",
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

			database, err := client.Databases().Upgrade(cmd.Context(), uid, &enterprise.DatabaseUpgradeRequest{
				RedisVersion: redisVersion,
			})
			if err != nil {
				return err
			}

			return renderOutput(database, func() error {
				fmt.Printf("Upgrade started for database %s (UID %d)\n", database.Name, database.UID)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&redisVersion, "redis-version", "", "target Redis version")
	_ = cmd.MarkFlagRequired("redis-version")

	return cmd
}

// databaseAction is the shape shared by the export/flush/backup operations.
type databaseAction func(ctx context.Context, uid uint32) (*enterprise.ActionResponse, error)

func databaseActionRunE(pick func(enterprise.Client) databaseAction, verb string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		uid, err := parseUID(args[0])
		if err != nil {
			return err
		}

		client, err := CreateClient()
		if err != nil {
			return err
		}

		action, err := pick(client)(cmd.Context(), uid)
		if err != nil {
			return err
		}

		return renderOutput(action, func() error {
			fmt.Printf("%s started for database %d (action %s)\n", verb, uid, formatOrNA(action.ActionUID))

			return nil
		})
	}
}
