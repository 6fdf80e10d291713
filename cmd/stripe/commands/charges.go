package commands

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewChargesCommand creates the charges command group
func NewChargesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "charges",
		Aliases: []string{"charge", "ch"},
		Short:   "Inspect charges",
		Long:    "List and view charges",
	}

	cmd.AddCommand(newChargesListCommand())
	cmd.AddCommand(newChargesGetCommand())

	return cmd
}

func newChargesListCommand() *cobra.Command {
	var (
		limit         int
		customer      string
		startingAfter string
		expand        []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charges",
		Long:  "List charges, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &stripe.ChargeListParams{
				ListParams: stripe.ListParams{
					Limit:  limitParam(limit),
					Expand: expand,
				},
			}

			if customer != "" {
				params.Customer = &customer
			}

			if startingAfter != "" {
				params.StartingAfter = &startingAfter
			}

			charges, err := client.Charges().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list charges: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), outputFormat(), charges, func(table *tablewriter.Table) error {
				table.Header(titles("id", "amount", "status", "customer", "created")...)

				for _, charge := range charges.Data {
					_ = table.Append(charge.ID, formatAmount(charge.Amount, charge.Currency), charge.Status,
						orNA(charge.Customer.ID()), formatTime(charge.Created))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", defaultPageSize, "number of charges to list")
	cmd.Flags().StringVar(&customer, "customer", "", "only charges of this customer")
	cmd.Flags().StringVar(&startingAfter, "starting-after", "", "cursor: list charges after this ID")
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "fields to expand (e.g. data.customer)")

	return cmd
}

func newChargesGetCommand() *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get CHARGE_ID",
		Short: "Get charge details",
		Long:  "Display detailed information about a specific charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Get(context.Background(), args[0], &stripe.GetParams{Expand: expand})
			if err != nil {
				return fmt.Errorf("failed to get charge: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), outputFormat(), charge, func(table *tablewriter.Table) error {
				table.Header("Property", "Value")
				_ = table.Append("ID", charge.ID)
				_ = table.Append("Amount", formatAmount(charge.Amount, charge.Currency))
				_ = table.Append("Refunded", formatAmount(charge.AmountRefunded, charge.Currency))
				_ = table.Append("Status", charge.Status)
				_ = table.Append("Captured", fmt.Sprint(charge.Captured))
				_ = table.Append("Customer", orNA(charge.Customer.ID()))
				_ = table.Append("Payment Intent", orNA(charge.PaymentIntent.ID()))
				_ = table.Append("Description", orNA(charge.Description))
				_ = table.Append("Created", formatTime(charge.Created))

				if charge.Customer.IsExpanded() {
					customer, err := charge.Customer.Object()
					if err == nil {
						_ = table.Append("Customer Email", orNA(customer.Email))
					}
				}

				if charge.FailureCode != "" {
					_ = table.Append("Failure", charge.FailureCode+": "+charge.FailureMessage)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "fields to expand (e.g. customer)")

	return cmd
}
