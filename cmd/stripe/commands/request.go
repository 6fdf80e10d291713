package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/spf13/cobra"
)

// NewRequestCommand creates the raw request command
func NewRequestCommand() *cobra.Command {
	var data []string

	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Send a raw API request",
		Long: `Send a request to any endpoint and print the JSON response.
Parameters are given as -d key=value; bracketed keys such as
metadata[order]=6735 or items[0][price]=price_1 build nested values.`,
		Example: `  stripe request get /v1/customers -d limit=3
  stripe request post /v1/customers/cus_123 -d metadata[plan]=gold`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(data)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var response json.RawMessage

			err = client.Raw().Do(context.Background(), args[0], args[1], params, &response)
			if err != nil {
				return fmt.Errorf("%s %s: %w", strings.ToUpper(args[0]), args[1], err)
			}

			format := outputFormat()
			if format == constants.FormatTable {
				format = constants.FormatJSON
			}

			return renderOutput(cmd.OutOrStdout(), format, response, nil)
		},
	}

	cmd.Flags().StringArrayVarP(&data, "data", "d", nil, "request parameter as key=value (repeatable)")

	return cmd
}
