package quote

import "github.com/shopspring/decimal"

// QuoteRequest is posted to the quote service. IsDefaultOn is filled in by the widget
// right before each dispatch.
type QuoteRequest struct {
	CartID          string           `json:"cart_id,omitempty"`
	ClientIP        string           `json:"client_ip,omitempty"`
	MerchantID      string           `json:"merchant_id,omitempty"`
	SessionID       string           `json:"session_id"`
	Type            string           `json:"type"`
	DeviceCategory  string           `json:"device_category"`
	DeviceID        string           `json:"device_id,omitempty"`
	DevicePlatform  string           `json:"device_platform"`
	IsDefaultOn     *bool            `json:"is_default_on,omitempty"`
	LineItems       []LineItem       `json:"line_items"`
	Customer        Customer         `json:"customer"`
	ShippingAddress Address          `json:"shipping_address"`
	ExtraInfo       RequestExtraInfo `json:"extra_info"`
}

// WithDefaultOn returns a copy, the caller's request is never modified.
func (r QuoteRequest) WithDefaultOn(on bool) QuoteRequest {
	r.IsDefaultOn = &on
	r.LineItems = append([]LineItem(nil), r.LineItems...)
	return r
}

// Subtotal is the sum of final price times quantity over all line items.
func (r QuoteRequest) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range r.LineItems {
		total = total.Add(li.FinalPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	return total
}

type Customer struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Address is used for both the shipping address and a line item's shipping origin.
type Address struct {
	Address1 string `json:"address_1,omitempty"`
	Address2 string `json:"address_2,omitempty"`
	City     string `json:"city"`
	Country  string `json:"country"`
	State    string `json:"state"`
	Zipcode  string `json:"zipcode"`
}

type RequestExtraInfo struct {
	ShippingFee    *decimal.Decimal `json:"shipping_fee,omitempty"`
	TotalDiscounts decimal.Decimal  `json:"total_discounts"`
	TotalSalesTax  decimal.Decimal  `json:"total_sales_tax"`
}

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

type ProductAttributes struct {
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
}

type LineItem struct {
	LineItemID         string             `json:"line_item_id"`
	ProductID          string             `json:"product_id"`
	ProductTitle       string             `json:"product_title"`
	ProductDescription string             `json:"product_description,omitempty"`
	ProductURL         string             `json:"product_url,omitempty"`
	ProductAttributes  *ProductAttributes `json:"product_attributes,omitempty"`
	BrandName          string             `json:"brand_name,omitempty"`
	Category1          string             `json:"category_1"`
	Category2          string             `json:"category_2"`
	Category3          string             `json:"category_3,omitempty"`
	Category4          string             `json:"category_4,omitempty"`
	Condition          Condition          `json:"condition,omitempty"`
	ImageURLs          []string           `json:"image_urls,omitempty"`
	SKU                string             `json:"sku,omitempty"`
	VariantID          string             `json:"variant_id,omitempty"`
	VariantTitle       string             `json:"variant_title,omitempty"`
	SellerID           string             `json:"seller_id,omitempty"`
	SellerName         string             `json:"seller_name,omitempty"`
	Currency           string             `json:"currency"`
	Price              float64            `json:"price"`
	RetailPrice        *float64           `json:"retail_price,omitempty"`
	FinalPrice         decimal.Decimal    `json:"final_price"`
	Quantity           int                `json:"quantity"`
	AllocatedDiscounts float64            `json:"allocated_discounts"`
	SalesTax           float64            `json:"sales_tax"`
	IsFinalSale        bool               `json:"is_final_sale"`
	RequiresShipping   bool               `json:"requires_shipping"`
	ShippingOrigin     *Address           `json:"shipping_origin,omitempty"`
}
