// Package stripe provides types, interfaces, and helpers for working with a
// versioned, form-encoded payment API.
//
// # Overview
//
// The stripe package defines the domain types (e.g., Charge, Customer,
// PaymentIntent, Subscription, Event) and the interfaces for resource-oriented
// clients (e.g., ChargesClient, CustomersClient). A concrete implementation of
// these clients is provided by the stripeclient package, which wires
// configuration, transport, and credentials. Most consumers should import
// stripeclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := stripeclient.NewWithKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of charges with the customer expanded
//	  charges, err := cli.Charges().List(ctx, &stripe.ChargeListParams{
//	    ListParams: stripe.ListParams{Limit: stripe.Ptr(int64(10)), Expand: []string{"data.customer"}},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = charges
//	}
//
// # Parameters
//
// Request parameters are a Params mapping whose values are one of String,
// Int, Float, Bool, Time, Params, or Array. Params.Encode flattens them into
// bracketed form keys with sorted keys at every level:
//
//	stripe.Params{
//	  "items":    stripe.Array{stripe.Params{"price": stripe.String("price_1")}},
//	  "metadata": stripe.Params{"order": stripe.String("6735")},
//	}.Encode()
//	// items[0][price]=price_1&metadata[order]=6735
//
// Typed parameter structs (ChargeParams, CustomerListParams, ...) implement
// ParamsBuilder and only emit the fields that are set.
//
// # Expandable references
//
// Fields such as Charge.Customer hold either an ID or, when requested with
// expand, the full object. Expandable[T] always exposes ID() and returns the
// object from Object() when it was expanded. Polymorphic fields use
// DynamicExpandable, which picks the concrete type from the "object" field.
//
// # Errors
//
// Every non-200 response becomes an *Error carrying the API's type, code,
// message, HTTP status, and request ID. Predicates such as IsCardError,
// IsRateLimited, and IsNotFound make it easy to branch on common cases. A
// success response that does not match the expected shape is reported as a
// *DecodeError and matches ErrContractViolation.
package stripe
