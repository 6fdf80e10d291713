package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cus"},
		Short:   "Manage customers",
		Long:    "List, view, create, and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func renderCustomer(cmd *cobra.Command, customer *stripe.Customer) error {
	return renderOutput(cmd.OutOrStdout(), outputFormat(), customer, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")
		_ = table.Append("ID", customer.ID)
		_ = table.Append("Name", orNA(customer.Name))
		_ = table.Append("Email", orNA(customer.Email))
		_ = table.Append("Phone", orNA(customer.Phone))
		_ = table.Append("Description", orNA(customer.Description))
		balance := fmt.Sprint(customer.Balance)
		if customer.Currency != "" {
			balance = formatAmount(customer.Balance, customer.Currency)
		}

		_ = table.Append("Balance", balance)
		_ = table.Append("Default Source", orNA(customer.DefaultSource.ID()))
		_ = table.Append("Delinquent", fmt.Sprint(customer.Delinquent))
		_ = table.Append("Created", formatTime(customer.Created))

		keys := make([]string, 0, len(customer.Metadata))
		for key := range customer.Metadata {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append("metadata."+key, customer.Metadata[key])
		}

		return nil
	})
}

func newCustomersListCommand() *cobra.Command {
	var (
		limit         int
		email         string
		startingAfter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &stripe.CustomerListParams{
				ListParams: stripe.ListParams{Limit: limitParam(limit)},
			}

			if email != "" {
				params.Email = &email
			}

			if startingAfter != "" {
				params.StartingAfter = &startingAfter
			}

			customers, err := client.Customers().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), outputFormat(), customers, func(table *tablewriter.Table) error {
				table.Header(titles("id", "name", "email", "created")...)

				for _, customer := range customers.Data {
					_ = table.Append(customer.ID, orNA(customer.Name), orNA(customer.Email), formatTime(customer.Created))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", defaultPageSize, "number of customers to list")
	cmd.Flags().StringVar(&email, "email", "", "only customers with this email")
	cmd.Flags().StringVar(&startingAfter, "starting-after", "", "cursor: list customers after this ID")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0], &stripe.GetParams{Expand: expand})
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			return renderCustomer(cmd, customer)
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "fields to expand (e.g. default_source)")

	return cmd
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		name        string
		email       string
		description string
		metadata    map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a new customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &stripe.CustomerParams{Metadata: metadata}

			if name != "" {
				params.Name = &name
			}

			if email != "" {
				params.Email = &email
			}

			if description != "" {
				params.Description = &description
			}

			customer, err := client.Customers().Create(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return renderCustomer(cmd, customer)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&description, "description", "", "customer description")
	cmd.Flags().StringToStringVar(&metadata, "metadata", nil, "metadata key=value pairs")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Permanently delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return ErrConfirmDelete
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			deleted, err := client.Customers().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted customer %s\n", deleted.ID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&confirm, "yes", "y", false, "confirm the deletion")

	return cmd
}
