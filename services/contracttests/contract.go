package contracttests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/wfpwidget/services/quote"
	"github.com/MarcGrol/wfpwidget/services/quoteclient"
)

// QuoteClientContract pins the behaviour every QuoteClient, remote or in-process, must share
// with the quote service.
type QuoteClientContract struct {
	Client func(t *testing.T) quoteclient.QuoteClient
}

func cart(currency string, amount string) quote.QuoteRequest {
	return quote.QuoteRequest{
		SessionID:       "s1",
		CartID:          "cart1",
		MerchantID:      "m1",
		Customer:        quote.Customer{CustomerID: "c1", Email: "shopper@example.com"},
		ShippingAddress: quote.Address{Country: "NL", City: "Amsterdam", Zipcode: "1011AB"},
		LineItems: []quote.LineItem{{
			LineItemID: "li1",
			ProductID:  "p1",
			Currency:   currency,
			Quantity:   2,
			FinalPrice: decimal.RequireFromString(amount),
		}},
	}
}

func (c QuoteClientContract) Test(t *testing.T) {
	t.Run("an eligible cart is accepted and priced in its own currency", func(t *testing.T) {
		var (
			sut = c.Client(t)
			ctx = context.Background()
		)

		resp, err := sut.CreateQuote(ctx, cart("EUR", "60").WithDefaultOn(true))
		require.NoError(t, err)

		assert.Equal(t, quote.StatusAccepted, resp.Status)
		assert.NotEmpty(t, resp.QuoteID)
		assert.Equal(t, "cart1", resp.CartID)
		assert.Equal(t, "EUR", resp.Currency)
		assert.True(t, resp.Price.IsPositive())
		assert.True(t, resp.IsDefaultOn)
		assert.NotEmpty(t, resp.Extra().Dictionary()[quote.KeyWfpTitle])
	})

	t.Run("the server never suggests opting in when the shopper declined", func(t *testing.T) {
		var (
			sut = c.Client(t)
			ctx = context.Background()
		)

		resp, err := sut.CreateQuote(ctx, cart("EUR", "60").WithDefaultOn(false))
		require.NoError(t, err)

		assert.False(t, resp.IsDefaultOn)
	})

	t.Run("an ineligible cart is rejected with a reason", func(t *testing.T) {
		var (
			sut = c.Client(t)
			ctx = context.Background()
		)

		resp, err := sut.CreateQuote(ctx, cart("XXX", "60"))
		require.NoError(t, err)

		assert.Equal(t, quote.StatusRejected, resp.Status)
		assert.NotEmpty(t, resp.Extra().Dictionary()[quote.KeyIneligibleReasonCurrency])
	})
}
