package fakequote

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/wfpwidget/services/quote"
)

// Rules drive how the fake service prices and accepts carts.
type Rules struct {
	Rate             decimal.Decimal
	MinimumPrice     decimal.Decimal
	MaxSubtotal      decimal.Decimal
	Currencies       []string
	DefaultOn        bool
	Latency          time.Duration
	WidgetTitle      string
	TermsURL         string
	PrivacyPolicyURL string
}

func DefaultRules() Rules {
	return Rules{
		Rate:             decimal.RequireFromString("0.02"),
		MinimumPrice:     decimal.RequireFromString("0.99"),
		MaxSubtotal:      decimal.NewFromInt(10000),
		Currencies:       []string{"USD", "CAD", "AUD", "NZD", "HKD", "SGD", "EUR", "GBP", "DKK"},
		DefaultOn:        true,
		WidgetTitle:      "Worry-Free Purchase",
		TermsURL:         "https://www.seel.com/terms",
		PrivacyPolicyURL: "https://www.seel.com/privacy",
	}
}

// evaluate returns the reason a cart is rejected, or an empty key when it is accepted.
func (r Rules) evaluate(req quote.QuoteRequest) quote.Key {
	if len(req.LineItems) == 0 {
		return quote.KeyIneligibleReasonItems
	}
	currency := cartCurrency(req)
	if currency == "" || !slices.Contains(r.Currencies, currency) {
		return quote.KeyIneligibleReasonCurrency
	}
	if req.Subtotal().GreaterThan(r.MaxSubtotal) {
		return quote.KeyIneligibleReasonValue
	}
	for _, li := range req.LineItems {
		if li.RequiresShipping && req.ShippingAddress.Country == "" {
			return quote.KeyIneligibleReasonShipping
		}
	}
	return ""
}

func (r Rules) price(req quote.QuoteRequest) decimal.Decimal {
	price := req.Subtotal().Mul(r.Rate).Round(2)
	if price.LessThan(r.MinimumPrice) {
		return r.MinimumPrice
	}
	return price
}

// cartCurrency is empty when line items disagree.
func cartCurrency(req quote.QuoteRequest) string {
	currency := ""
	for _, li := range req.LineItems {
		c := strings.ToUpper(li.Currency)
		if currency != "" && c != currency {
			return ""
		}
		currency = c
	}
	return currency
}

var acceptedTexts = []quote.Text{
	{Key: quote.KeyWfpTitle, Value: "{{title}} for {{price}}"},
	{Key: quote.KeyWfpSubtitle, Value: "Protect your order from loss, damage and delays"},
	{Key: quote.KeyPoweredBy, Value: "Powered by {{seel}}"},
	{Key: quote.KeyPricingMessage, Value: "Add protection for only {{price}}"},
	{Key: quote.KeyCoverageTitle, Value: "{{title}}"},
	{Key: quote.KeyWhatsCoveredTitle, Value: "What's covered"},
	{Key: quote.KeyGetFullRefund, Value: "Get a full refund if your order is lost or damaged"},
	{Key: quote.KeyResolveWithClicks, Value: "Resolve issues in a few clicks"},
	{Key: quote.KeyCompletePeaceOfMind, Value: "Complete peace of mind"},
	{Key: quote.KeyZeroRisk, Value: "Zero risk"},
	{Key: quote.KeyGetRefundPromptly, Value: "Get your refund promptly"},
	{Key: quote.KeyStandardCoverageIntro, Value: "Standard coverage for every order"},
	{Key: quote.KeyAdditionalCoverageIntro, Value: "Additional coverage"},
	{Key: quote.KeyAdditionalCoverageExtendedReturn, Value: "Extended return window"},
	{Key: quote.KeyAdditionalCoveragePostDelivery, Value: "Post-delivery damage"},
	{Key: quote.KeyAdditionalCoverageDelay, Value: "Delivery delays"},
	{Key: quote.KeyConciergeIntro, Value: "Concierge service"},
	{Key: quote.KeyConciergeAppAccess, Value: "App access"},
	{Key: quote.KeyConciergeSupport, Value: "Dedicated support"},
	{Key: quote.KeyCtaSecurePurchase, Value: "Secure my purchase"},
	{Key: quote.KeyCtaContinueWithout, Value: "Continue without protection"},
	{Key: quote.KeyPrivacyPolicy, Value: "Privacy Policy"},
	{Key: quote.KeyTermsOfService, Value: "Terms of Service"},
}

var rejectionTexts = map[quote.Key]string{
	quote.KeyIneligibleReasonShipping: "Shipping address is not supported",
	quote.KeyIneligibleReasonCurrency: "Currency is not supported",
	quote.KeyIneligibleReasonValue:    "Order value exceeds the limit",
	quote.KeyIneligibleReasonItems:    "Cart contains no eligible items",
	quote.KeyIneligibleReasonSystem:   "Protection is temporarily unavailable",
}

func rejectedTexts(reason quote.Key) []quote.Text {
	return []quote.Text{
		{Key: quote.KeyIneligibleTitle, Value: "Not eligible"},
		{Key: quote.KeyIneligibleMainMessage, Value: "This order can not be protected because:"},
		{Key: reason, Value: rejectionTexts[reason]},
		{Key: quote.KeyIneligibleSupportMessage, Value: "Contact support for more information"},
	}
}
