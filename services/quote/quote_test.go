package quote

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	payload := `{
		"quote_id": "q1",
		"cart_id": "cart1",
		"session_id": "s1",
		"status": "accepted",
		"is_default_on": true,
		"currency": "USD",
		"price": 1.99,
		"extra_info": {
			"widget_title": "Worry-Free Purchase",
			"terms_url": "https://example.com/terms",
			"coverage_details_text": ["first", "second"],
			"i18n": {
				"lang": "en",
				"texts": [
					{"key": "wfp_title", "value": "{{title}} for {{price}}"},
					{"key": "powered_by", "value": "Powered by {{seel}}"}
				]
			}
		}
	}`

	resp := QuoteResponse{}
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	assert.NoError(t, resp.Validate())
	assert.True(t, resp.IsAccepted())
	assert.True(t, resp.Price.Equal(decimal.RequireFromString("1.99")))
	assert.Equal(t, []string{"first", "second"}, resp.Extra().CoverageDetailsText)
	assert.Equal(t, map[Key]string{
		KeyWfpTitle:  "{{title}} for {{price}}",
		KeyPoweredBy: "Powered by {{seel}}",
	}, resp.Extra().Dictionary())
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, QuoteResponse{Status: StatusRejected}.Validate())
	assert.EqualError(t, QuoteResponse{Status: "pending"}.Validate(), "unknown quote status 'pending'")
	assert.Error(t, QuoteResponse{}.Validate())
}

func TestMissingExtraInfo(t *testing.T) {
	resp := QuoteResponse{Status: StatusAccepted}
	assert.Equal(t, "", resp.Extra().WidgetTitle)
	assert.Empty(t, resp.Extra().Dictionary())
}

func TestWithDefaultOn(t *testing.T) {
	req := QuoteRequest{SessionID: "s1", LineItems: []LineItem{{ProductID: "p1"}}}

	on := req.WithDefaultOn(true)

	assert.Nil(t, req.IsDefaultOn)
	require.NotNil(t, on.IsDefaultOn)
	assert.True(t, *on.IsDefaultOn)

	data, err := json.Marshal(on)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"is_default_on":true`)

	data, err = json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `is_default_on`)
}

func TestSubtotal(t *testing.T) {
	req := QuoteRequest{LineItems: []LineItem{
		{FinalPrice: decimal.RequireFromString("10.50"), Quantity: 2},
		{FinalPrice: decimal.RequireFromString("3.25"), Quantity: 1},
	}}
	assert.Equal(t, "24.25", req.Subtotal().StringFixed(2))
}

func TestFinalPriceAcceptsStringOrNumber(t *testing.T) {
	li := LineItem{}
	require.NoError(t, json.Unmarshal([]byte(`{"final_price": "12.30"}`), &li))
	assert.Equal(t, "12.3", li.FinalPrice.String())

	require.NoError(t, json.Unmarshal([]byte(`{"final_price": 12.3}`), &li))
	assert.Equal(t, "12.3", li.FinalPrice.String())
}

func TestRequestExtraInfoAmounts(t *testing.T) {
	extra := RequestExtraInfo{}
	require.NoError(t, json.Unmarshal([]byte(`{"shipping_fee": "4.95", "total_discounts": 10, "total_sales_tax": 0.1}`), &extra))
	require.NotNil(t, extra.ShippingFee)
	assert.Equal(t, "4.95", extra.ShippingFee.String())
	assert.Equal(t, "10", extra.TotalDiscounts.String())
	assert.Equal(t, "0.1", extra.TotalSalesTax.String())

	data, err := json.Marshal(RequestExtraInfo{TotalDiscounts: decimal.RequireFromString("2.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_discounts": "2.5", "total_sales_tax": "0"}`, string(data))
}
