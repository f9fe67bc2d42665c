package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusAccepted || s == StatusRejected
}

type QuoteResponse struct {
	QuoteID    string `json:"quote_id"`
	CartID     string `json:"cart_id"`
	MerchantID string `json:"merchant_id"`
	DeviceID   string `json:"device_id"`
	SessionID  string `json:"session_id"`

	CreatedTs string `json:"created_ts"`
	Status    Status `json:"status"`

	Type           string `json:"type"`
	DeviceCategory string `json:"device_category"`
	DevicePlatform string `json:"device_platform"`
	IsDefaultOn    bool   `json:"is_default_on"`

	Currency string          `json:"currency"`
	Price    decimal.Decimal `json:"price"`

	LineItems       []ResponseLineItem `json:"line_items,omitempty"`
	Customer        *ResponseCustomer  `json:"customer,omitempty"`
	ShippingAddress *Address           `json:"shipping_address,omitempty"`
	ExtraInfo       *ResponseExtraInfo `json:"extra_info,omitempty"`
}

func (r QuoteResponse) IsAccepted() bool {
	return r.Status == StatusAccepted
}

func (r QuoteResponse) Validate() error {
	if !r.Status.IsValid() {
		return fmt.Errorf("unknown quote status '%s'", r.Status)
	}
	return nil
}

// Extra never returns nil so callers can read optional fields directly.
func (r QuoteResponse) Extra() ResponseExtraInfo {
	if r.ExtraInfo == nil {
		return ResponseExtraInfo{}
	}
	return *r.ExtraInfo
}

type ResponseCustomer struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type ResponseLineItem struct {
	LineItemID   string           `json:"line_item_id,omitempty"`
	ProductID    string           `json:"product_id,omitempty"`
	ProductTitle string           `json:"product_title,omitempty"`
	VariantID    string           `json:"variant_id,omitempty"`
	SKU          string           `json:"sku,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	FinalPrice   *decimal.Decimal `json:"final_price,omitempty"`
	Quantity     int              `json:"quantity,omitempty"`
	IsFinalSale  bool             `json:"is_final_sale,omitempty"`
	ShippingFee  *decimal.Decimal `json:"shipping_fee,omitempty"`
	ExtraInfo    map[string]any   `json:"extra_info,omitempty"`
}

type ResponseExtraInfo struct {
	CoverageDetailsText []string         `json:"coverage_details_text,omitempty"`
	DisplayWidgetText   []string         `json:"display_widget_text,omitempty"`
	OptOutWarningText   string           `json:"opt_out_warning_text,omitempty"`
	PrivacyPolicyURL    string           `json:"privacy_policy_url,omitempty"`
	ShippingFee         *decimal.Decimal `json:"shipping_fee,omitempty"`
	TermsURL            string           `json:"terms_url,omitempty"`
	WidgetTitle         string           `json:"widget_title,omitempty"`
	I18N                *I18N            `json:"i18n,omitempty"`
}

type I18N struct {
	Lang  string `json:"lang"`
	Texts []Text `json:"texts"`
}

type Text struct {
	Key   Key    `json:"key"`
	Value string `json:"value"`
}

// Dictionary flattens the localized texts. A key that occurs twice keeps its last value.
func (e ResponseExtraInfo) Dictionary() map[Key]string {
	dict := map[Key]string{}
	if e.I18N == nil {
		return dict
	}
	for _, t := range e.I18N.Texts {
		dict[t.Key] = t.Value
	}
	return dict
}
