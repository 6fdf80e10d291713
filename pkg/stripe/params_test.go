package stripe_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeParams_OmitsUnsetFields(t *testing.T) {
	t.Parallel()

	params := &stripe.ChargeParams{
		Amount:   stripe.Ptr(int64(2000)),
		Currency: stripe.Ptr("usd"),
		Capture:  stripe.Ptr(false),
		Metadata: map[string]string{"order_id": "6735"},
		Expand:   []string{"customer"},
	}

	assert.Equal(t, "amount=2000&capture=false&currency=usd&expand[0]=customer&metadata[order_id]=6735", params.Params().Encode())
}

func TestNilParams(t *testing.T) {
	t.Parallel()

	builders := []stripe.ParamsBuilder{
		(*stripe.ChargeParams)(nil),
		(*stripe.CustomerParams)(nil),
		(*stripe.ListParams)(nil),
		(*stripe.EventListParams)(nil),
		(*stripe.SubscriptionParams)(nil),
	}

	for _, builder := range builders {
		assert.Empty(t, builder.Params())
	}
}

func TestMetadata_EmptyMapClears(t *testing.T) {
	t.Parallel()

	params := &stripe.CustomerParams{Metadata: map[string]string{}}

	assert.Equal(t, "metadata=", params.Params().Encode())
}

func TestSubscriptionParams_Items(t *testing.T) {
	t.Parallel()

	trialEnd := time.Unix(1735689600, 0)
	params := &stripe.SubscriptionParams{
		Customer: stripe.Ptr("cus_1"),
		Items: []*stripe.SubscriptionItemParams{
			{Price: stripe.Ptr("price_gold"), Quantity: stripe.Ptr(int64(2))},
			{ID: stripe.Ptr("si_old"), Deleted: stripe.Ptr(true)},
		},
		TrialEnd: &trialEnd,
	}

	values, err := url.ParseQuery(params.Params().Encode())
	require.NoError(t, err)

	assert.Equal(t, "cus_1", values.Get("customer"))
	assert.Equal(t, "price_gold", values.Get("items[0][price]"))
	assert.Equal(t, "2", values.Get("items[0][quantity]"))
	assert.Equal(t, "si_old", values.Get("items[1][id]"))
	assert.Equal(t, "true", values.Get("items[1][deleted]"))
	assert.Equal(t, "1735689600", values.Get("trial_end"))
}

func TestListParams(t *testing.T) {
	t.Parallel()

	after := time.Unix(1700000000, 0)
	params := &stripe.ChargeListParams{
		ListParams: stripe.ListParams{
			Limit:         stripe.Ptr(int64(3)),
			StartingAfter: stripe.Ptr("ch_9"),
			Created:       &stripe.RangeQuery{GTE: &after},
			Filters:       stripe.Params{"transfer_group": stripe.String("group_1")},
		},
		Customer: stripe.Ptr("cus_1"),
	}

	assert.Equal(t,
		"created[gte]=1700000000&customer=cus_1&limit=3&starting_after=ch_9&transfer_group=group_1",
		params.Params().Encode(),
	)
}

func TestDisputeParams_Evidence(t *testing.T) {
	t.Parallel()

	params := &stripe.DisputeParams{
		Evidence: &stripe.DisputeEvidenceParams{
			CustomerName:      stripe.Ptr("Jenny Rosen"),
			UncategorizedText: stripe.Ptr("Shipped & delivered"),
		},
		Submit: stripe.Ptr(true),
	}

	values, err := url.ParseQuery(params.Params().Encode())
	require.NoError(t, err)

	assert.Equal(t, "Jenny Rosen", values.Get("evidence[customer_name]"))
	assert.Equal(t, "Shipped & delivered", values.Get("evidence[uncategorized_text]"))
	assert.Equal(t, "true", values.Get("submit"))
}

func TestEventListParams_Types(t *testing.T) {
	t.Parallel()

	params := &stripe.EventListParams{
		Types:      []string{"charge.succeeded", "charge.failed"},
		ListParams: stripe.ListParams{EndingBefore: stripe.Ptr("evt_1")},
	}

	assert.Equal(t, "ending_before=evt_1&types[0]=charge.succeeded&types[1]=charge.failed", params.Params().Encode())
}
