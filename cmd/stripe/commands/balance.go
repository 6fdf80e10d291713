package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBalanceCommand creates the balance command
func NewBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Long:  "Display available and pending funds per currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			balance, err := client.Balance().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), outputFormat(), balance, func(table *tablewriter.Table) error {
				table.Header(titles("state", "amount", "source_types")...)

				for _, amount := range balance.Available {
					_ = table.Append("available", formatAmount(amount.Amount, amount.Currency), sourceTypes(amount.SourceTypes))
				}

				for _, amount := range balance.Pending {
					_ = table.Append("pending", formatAmount(amount.Amount, amount.Currency), sourceTypes(amount.SourceTypes))
				}

				return nil
			})
		},
	}
}

func sourceTypes(types map[string]int64) string {
	if len(types) == 0 {
		return ""
	}

	parts := make([]string, 0, len(types))
	for name, amount := range types {
		parts = append(parts, fmt.Sprintf("%s=%d", name, amount))
	}

	sort.Strings(parts)

	return strings.Join(parts, ", ")
}
