package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewModulesCommand creates the modules command group.
func NewModulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "modules",
		Aliases: []string{"module"},
		Short:   "Manage Redis modules",
	}

	cmd.AddCommand(newModulesListCommand())
	cmd.AddCommand(newModulesGetCommand())
	cmd.AddCommand(newModulesUploadCommand())
	cmd.AddCommand(newModulesDeleteCommand())

	return cmd
}

func newModulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			modules, err := client.Modules().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(modules, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Name", "Version", "Min Redis", "Author")

				for _, module := range modules {
					_ = table.Append(
						module.UID,
						formatOrNA(module.ModuleName),
						formatOrNA(module.SemanticVersion),
						formatOrNA(module.MinRedisVersion),
						formatOrNA(module.Author),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newModulesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get UID",
		Short: "Show a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			module, err := client.Modules().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderOutput(module, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("UID", module.UID)
				_ = table.Append("Name", formatOrNA(module.ModuleName))
				_ = table.Append("Display Name", formatOrNA(module.DisplayName))
				_ = table.Append("Version", formatOrNA(module.SemanticVersion))
				_ = table.Append("Author", formatOrNA(module.Author))
				_ = table.Append("Description", formatOrNA(module.Description))
				_ = table.Append("Min Redis", formatOrNA(module.MinRedisVersion))
				_ = table.Append("SHA256", formatOrNA(module.SHA256))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newModulesUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a module package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening module package: %w", err)
			}
			defer func() { _ = file.Close() }()

			module, err := client.Modules().Upload(cmd.Context(), filepath.Base(args[0]), file)
			if err != nil {
				return err
			}

			return renderOutput(module, func() error {
				fmt.Printf("Uploaded module %s %s (UID %s)\n",
					formatOrNA(module.ModuleName), formatOrNA(module.SemanticVersion), module.UID)

				return nil
			})
		},
	}
}

func newModulesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete UID",
		Short: "Delete a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete module %s? Re-run with --force to confirm\n", args[0])

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Modules().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted module %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
