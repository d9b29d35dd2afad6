// Package commands implements the recctl command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/redisops-io/enterprise-go/internal/constants"
	"github.com/redisops-io/enterprise-go/pkg/enterprise"
	"github.com/redisops-io/enterprise-go/pkg/reclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// CreateClient builds an API client from the resolved configuration
// (flags, config file, and REDIS_ENTERPRISE_* environment variables).
func CreateClient() (enterprise.Client, error) {
	clusterURL := viper.GetString("url")
	if clusterURL == "" {
		return nil, constants.ErrNoClusterConfigured
	}

	username := viper.GetString("user")
	password := viper.GetString("password")

	if username == "" || password == "" {
		return nil, constants.ErrNoCredentials
	}

	client, err := reclient.New(&enterprise.Config{
		BaseURL:  clusterURL,
		Username: username,
		Password: password,
		Insecure: viper.GetBool("insecure"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderOutput writes data in the configured output format, falling back to
// the caller-provided table renderer for the default "table" format.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("encoding to YAML: %w", err)
		}

		return nil
	case "", "table":
		return renderTable()
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, viper.GetString("output"))
	}
}

func formatUint(value uint64) string {
	return strconv.FormatUint(value, 10)
}

func formatUID(uid uint32) string {
	return strconv.FormatUint(uint64(uid), 10)
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func formatOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// formatMemory renders a byte count the way the cluster UI does, in
// binary units with one decimal.
func formatMemory(bytes uint64) string {
	const unit = 1024

	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
