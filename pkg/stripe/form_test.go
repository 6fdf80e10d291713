package stripe_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   stripe.Params
		expected string
	}{
		{
			name:     "nil params",
			params:   nil,
			expected: "",
		},
		{
			name:     "single string",
			params:   stripe.Params{"customer": stripe.String("cus_123")},
			expected: "customer=cus_123",
		},
		{
			name: "scalars sorted by key",
			params: stripe.Params{
				"currency": stripe.String("usd"),
				"amount":   stripe.Int(2000),
				"capture":  stripe.Bool(false),
				"rate":     stripe.Float(1.5),
			},
			expected: "amount=2000&capture=false&currency=usd&rate=1.5",
		},
		{
			name: "nested mapping",
			params: stripe.Params{
				"invoice_settings": stripe.Params{"default_payment_method": stripe.String("pm_1")},
			},
			expected: "invoice_settings[default_payment_method]=pm_1",
		},
		{
			name: "array of mappings uses indices",
			params: stripe.Params{
				"items": stripe.Array{
					stripe.Params{"plan": stripe.String("gold"), "quantity": stripe.Int(2)},
					stripe.Params{"plan": stripe.String("silver")},
				},
			},
			expected: "items[0][plan]=gold&items[0][quantity]=2&items[1][plan]=silver",
		},
		{
			name:     "expand list",
			params:   stripe.Params{"expand": stripe.Expand("customer", "invoice.subscription")},
			expected: "expand[0]=customer&expand[1]=invoice.subscription",
		},
		{
			name:     "date as unix seconds",
			params:   stripe.Params{"trial_end": stripe.Time(time.Unix(1700000000, 0))},
			expected: "trial_end=1700000000",
		},
		{
			name:     "empty mapping unsets the field",
			params:   stripe.Params{"metadata": stripe.Params{}},
			expected: "metadata=",
		},
		{
			name:     "empty list unsets the field",
			params:   stripe.Params{"items": stripe.Array{}},
			expected: "items=",
		},
		{
			name:     "nil values are skipped",
			params:   stripe.Params{"a": nil, "b": stripe.String("x")},
			expected: "b=x",
		},
		{
			name:     "reserved characters in values",
			params:   stripe.Params{"description": stripe.String("a&b+c=d e")},
			expected: "description=a%26b%2Bc%3Dd+e",
		},
		{
			name:     "reserved characters in keys",
			params:   stripe.Params{"metadata": stripe.Params{"a&b": stripe.String("x")}},
			expected: "metadata[a%26b]=x",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, stripe.Encode(tt.params))
			assert.Equal(t, tt.expected, tt.params.Encode())
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	params := stripe.Params{
		"amount":   stripe.Int(1099),
		"currency": stripe.String("eur"),
		"metadata": stripe.Params{
			"order":  stripe.String("#42 & more"),
			"plus":   stripe.String("1+1=2"),
			"spaces": stripe.String("a b  c"),
		},
		"items": stripe.Array{
			stripe.Params{"price": stripe.String("price_a"), "quantity": stripe.Int(1)},
			stripe.Params{"price": stripe.String("price_b"), "quantity": stripe.Int(3)},
		},
		"payment_method_types": stripe.Strings("card", "sepa_debit"),
	}

	values, err := url.ParseQuery(stripe.Encode(params))
	require.NoError(t, err)

	assert.Equal(t, url.Values{
		"amount":                  {"1099"},
		"currency":                {"eur"},
		"metadata[order]":         {"#42 & more"},
		"metadata[plus]":          {"1+1=2"},
		"metadata[spaces]":        {"a b  c"},
		"items[0][price]":         {"price_a"},
		"items[0][quantity]":      {"1"},
		"items[1][price]":         {"price_b"},
		"items[1][quantity]":      {"3"},
		"payment_method_types[0]": {"card"},
		"payment_method_types[1]": {"sepa_debit"},
	}, values)
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	params := stripe.Params{
		"z": stripe.String("1"),
		"a": stripe.Params{"y": stripe.Int(1), "b": stripe.Int(2), "m": stripe.Int(3)},
		"k": stripe.Array{stripe.String("x"), stripe.String("y")},
	}

	first := stripe.Encode(params)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, stripe.Encode(params))
	}

	assert.Equal(t, "a[b]=2&a[m]=3&a[y]=1&k[0]=x&k[1]=y&z=1", first)
}

func TestParams_Merge(t *testing.T) {
	t.Parallel()

	base := stripe.Params{"limit": stripe.Int(10), "customer": stripe.String("cus_1")}
	overlay := stripe.Params{"limit": stripe.Int(3)}

	merged := base.Merge(overlay)

	assert.Equal(t, stripe.Int(3), merged["limit"])
	assert.Equal(t, stripe.String("cus_1"), merged["customer"])
	assert.Equal(t, stripe.Int(10), base["limit"])
	assert.Len(t, base, 2)
}

func TestPtr(t *testing.T) {
	t.Parallel()

	value := stripe.Ptr(int64(42))
	require.NotNil(t, value)
	assert.Equal(t, int64(42), *value)
}
