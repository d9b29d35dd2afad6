package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redisops-io/enterprise-go/pkg/enterprise"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage control-plane users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersRolesCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(users, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Email", "Name", "Role", "Status", "Auth")

				for _, user := range users {
					_ = table.Append(
						formatUID(user.UID),
						user.Email,
						formatOrNA(user.Name),
						formatOrNA(user.Role),
						formatOrNA(user.Status),
						formatOrNA(user.AuthMethod),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get UID",
		Short: "Show a user",
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

			user, err := client.Users().Get(cmd.Context(), uid)
			if err != nil {
				return err
			}

			return renderOutput(user, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("UID", formatUID(user.UID))
				_ = table.Append("Email", user.Email)
				_ = table.Append("Name", formatOrNA(user.Name))
				_ = table.Append("Role", formatOrNA(user.Role))
				_ = table.Append("Status", formatOrNA(user.Status))
				_ = table.Append("Auth Method", formatOrNA(user.AuthMethod))
				_ = table.Append("Password Issued", formatOrNA(user.PasswordIssueDate))

				_ = table.Render()

				return nil
			})
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	var (
		password string
		role     string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Create(cmd.Context(), &enterprise.UserCreateRequest{
				Email:    args[0],
				Password: password,
				Role:     role,
				Name:     name,
			})
			if err != nil {
				return err
			}

			return renderOutput(user, func() error {
				fmt.Printf("Created user %s (UID %d)\n", user.Email, user.UID)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "initial password")
	cmd.Flags().StringVar(&role, "role", "", "management role, e.g. admin or db_viewer")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete UID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := parseUID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete user %d? Re-run with --force to confirm\n", uid)

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Users().Delete(cmd.Context(), uid)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted user %d\n", uid)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newUsersRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			roles, err := client.Roles().List(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(roles, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("UID", "Name", "Management", "Data Access")

				for _, role := range roles {
					_ = table.Append(
						formatUID(role.UID),
						role.Name,
						formatOrNA(role.Management),
						formatOrNA(strings.TrimSpace(role.DataAccess)),
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}
