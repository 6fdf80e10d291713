// Package stripeclient provides the primary entry point for constructing a
// payment API client that implements the stripe.Client interface.
//
// It layers configuration, HTTP transport, and credentials on top of the
// resource interfaces and types defined in the stripe package. Most
// applications should import stripeclient to build a client, then use the
// returned stripe.Client to access resource-specific clients, for example
// Charges(), Customers(), Subscriptions(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/stripe-client/pkg/stripe"
//	  "github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a secret key.
//	  cli, err := stripeclient.NewWithKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with the full configuration:
//	  cli, err = stripeclient.New(&stripe.Config{
//	    SecretKey:       "sk_test_...",
//	    StripeAccount:   "acct_...",
//	    IdempotencyKeys: true,
//	    RetryMax:        2,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  customer, err := cli.Customers().Create(ctx, &stripe.CustomerParams{
//	    Email: stripe.Ptr("jenny@example.com"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = customer
//	}
//
// # Helpers
//
// The package also provides the convenience constructors NewWithKey and
// NewWithAccount that wrap New with the appropriate configuration.
package stripeclient
