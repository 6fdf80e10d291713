package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigDirName is the directory under $HOME holding the CLI configuration.
const ConfigDirName = ".stripe-client"

// Config represents the CLI configuration file.
type Config struct {
	APIKey        string `json:"api_key,omitempty"        yaml:"api_key,omitempty"`
	APIBase       string `json:"api_base,omitempty"       yaml:"api_base,omitempty"`
	APIVersion    string `json:"api_version,omitempty"    yaml:"api_version,omitempty"`
	StripeAccount string `json:"stripe_account,omitempty" yaml:"stripe_account,omitempty"`
	Output        string `json:"output,omitempty"         yaml:"output,omitempty"`
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		APIKey:        viper.GetString("api_key"),
		APIBase:       viper.GetString("api_base"),
		APIVersion:    viper.GetString("api_version"),
		StripeAccount: viper.GetString("stripe_account"),
		Output:        viper.GetString("output"),
	}
}

// configFilePath returns the file in use, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

// saveConfigStruct writes config to path as YAML.
func saveConfigStruct(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// buildClientConfig maps the CLI configuration to a client configuration.
func buildClientConfig(config *Config, verbose bool) (*stripe.Config, error) {
	if config.APIKey == "" {
		return nil, constants.ErrNoAPIKey
	}

	clientConfig := &stripe.Config{
		SecretKey:       config.APIKey,
		APIBase:         config.APIBase,
		APIVersion:      config.APIVersion,
		StripeAccount:   config.StripeAccount,
		UserAgent:       "stripe-cli-go/" + constants.Version,
		IdempotencyKeys: true,
	}

	if verbose {
		clientConfig.Debug = true
		clientConfig.Logger = NewLogger(os.Stderr, true)
	}

	return clientConfig, nil
}

// CreateClient creates an API client from the CLI configuration.
func CreateClient() (stripe.Client, error) {
	clientConfig, err := buildClientConfig(loadConfig(), viper.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	client, err := stripeclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// describeKey returns a display form of the configured key.
func describeKey(key string) string {
	if key == "" {
		return constants.NotAvailable
	}

	return auth.Redact(key)
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show the effective CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration merged from the config file, environment, and flags. The API key is redacted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = describeKey(config.APIKey)

			path, err := configFilePath()
			if err != nil {
				path = constants.NotAvailable
			}

			return renderOutput(cmd.OutOrStdout(), outputFormat(), config, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("Config File", path)
				_ = table.Append("API Key", config.APIKey)
				_ = table.Append("API Base", orNA(config.APIBase))
				_ = table.Append("API Version", orNA(config.APIVersion))
				_ = table.Append("Stripe Account", orNA(config.StripeAccount))
				_ = table.Append("Output", orNA(config.Output))

				return nil
			})
		},
	}
}
