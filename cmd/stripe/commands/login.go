package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	"github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify a secret or restricted API key against the balance endpoint and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.APIKey == "" {
				key, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "Secret key: ")
				if err != nil {
					return err
				}

				config.APIKey = key
			}

			clientConfig, err := buildClientConfig(config, viper.GetBool("verbose"))
			if err != nil {
				return err
			}

			if !skipVerify {
				client, err := stripeclient.New(clientConfig)
				if err != nil {
					return fmt.Errorf("failed to create client: %w", err)
				}

				_, err = client.Balance().Get(context.Background())
				if err != nil {
					return fmt.Errorf("failed to verify API key: %w", err)
				}
			}

			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = saveConfigStruct(path, config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			credentials, err := auth.NewCredentials(config.APIKey)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in with %s key %s\n", credentials.Mode(), credentials)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "store the key without calling the API")

	return cmd
}

// readSecret prompts for a secret, hiding input when stdin is a terminal.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	_, _ = fmt.Fprint(prompt, label)

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read secret key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	return strings.TrimSpace(line), nil
}
