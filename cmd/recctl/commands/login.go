package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/redisops-io/enterprise-go/internal/constants"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
	"github.com/redisops-io/enterprise-go/pkg/reclient"
)

// cliConfig is the subset of settings persisted in the config file.
type cliConfig struct {
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Insecure bool   `yaml:"insecure,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login [CLUSTER_URL]",
		Short: "Log in to a cluster",
		Long: `Authenticate against a Redis Enterprise cluster and save the
credentials to the recctl config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterURL := viper.GetString("url")
			if len(args) > 0 {
				clusterURL = args[0]
			}

			reader := bufio.NewReader(os.Stdin)

			if clusterURL == "" {
				fmt.Print("Cluster URL: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading cluster URL: %w", err)
				}

				clusterURL = strings.TrimSpace(line)
			}

			if clusterURL == "" {
				return constants.ErrNoClusterConfigured
			}

			if username == "" {
				fmt.Print("Username: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading username: %w", err)
				}

				username = strings.TrimSpace(line)
			}

			if password == "" {
				fmt.Print("Password: ")

				passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}

				fmt.Println()

				password = string(passwordBytes)
			}

			insecure := viper.GetBool("insecure")

			client, err := reclient.New(&enterprise.Config{
				BaseURL:  clusterURL,
				Username: username,
				Password: password,
				Insecure: insecure,
			})
			if err != nil {
				return err
			}

			info, err := client.Cluster().Info(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			err = saveConfig(&cliConfig{
				URL:      clusterURL,
				User:     username,
				Password: password,
				Insecure: insecure,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged in to %s as %s\n", formatOrNA(info.Name), username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "cluster username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "cluster password (prompted if omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove saved credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(path)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Println("Not logged in")

					return nil
				}

				return fmt.Errorf("removing config file: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".recctl", "config.yml"), nil
}

func saveConfig(config *cliConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
