package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/internal/relay"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "evt"},
		Short:   "Inspect and relay events",
		Long:    "List account events and forward new events to NATS",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsForwardCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		limit     int
		eventType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &stripe.EventListParams{
				ListParams: stripe.ListParams{Limit: limitParam(limit)},
			}

			if eventType != "" {
				params.Type = &eventType
			}

			events, err := client.Events().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), outputFormat(), events, func(table *tablewriter.Table) error {
				table.Header(titles("id", "type", "object", "created")...)

				for _, event := range events.Data {
					_ = table.Append(event.ID, event.Type, orNA(event.Data.Object.ID()), formatTime(event.Created))
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", defaultPageSize, "number of events to list")
	cmd.Flags().StringVar(&eventType, "type", "", "only events of this type (wildcards such as charge.* allowed)")

	return cmd
}

func newEventsForwardCommand() *cobra.Command {
	var (
		natsURL       string
		subjectPrefix string
		interval      time.Duration
		cursor        string
		types         []string
		once          bool
	)

	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Forward events to NATS",
		Long: `Poll the events endpoint and publish every new event to NATS on the
subject <prefix>.<event type>, oldest first. Without --cursor only events
created after the first poll are forwarded in full.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if natsURL == "" {
				natsURL = viper.GetString("nats_url")
			}

			if natsURL == "" {
				return constants.ErrNoNATSURL
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			publisher, err := relay.NewNATSPublisher(&relay.NATSConfig{
				URL:  natsURL,
				Name: "stripe-cli-go event relay",
			})
			if err != nil {
				return err
			}

			defer func() {
				_ = publisher.Close()
			}()

			logger := NewLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))

			forwarder, err := relay.NewForwarder(client.Events(), publisher,
				relay.WithSubjectPrefix(subjectPrefix),
				relay.WithTypes(types...),
				relay.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if once {
				next, err := forwarder.Forward(ctx, cursor)
				if err != nil {
					return fmt.Errorf("failed to forward events: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), next)

				return nil
			}

			logger.Info("Forwarding events", map[string]interface{}{
				"nats_url": natsURL,
				"prefix":   subjectPrefix,
				"interval": interval.String(),
			})

			err = forwarder.Run(ctx, cursor, interval)
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL (or nats_url in the config file)")
	cmd.Flags().StringVar(&subjectPrefix, "subject-prefix", constants.DefaultSubjectPrefix, "subject prefix")
	cmd.Flags().DurationVar(&interval, "interval", constants.DefaultPollInterval, "poll interval")
	cmd.Flags().StringVar(&cursor, "cursor", "", "forward events created after this event ID")
	cmd.Flags().StringSliceVar(&types, "types", nil, "only forward these event types")
	cmd.Flags().BoolVar(&once, "once", false, "run a single pass and print the new cursor")

	return cmd
}
