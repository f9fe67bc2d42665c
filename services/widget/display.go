package widget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/wfpwidget/services/quote"
)

// Domain selects the legal texts shown in the info view. It never changes the quote payload.
type Domain string

const (
	DomainNone Domain = ""
	DomainUS   Domain = "US"
	DomainEU   Domain = "EU"
)

const (
	placeholderTitle = "{{title}}"
	placeholderPrice = "{{price}}"
	placeholderSeel  = "{{seel}}"
)

// Display holds the resolved texts the presentation shell renders.
type Display struct {
	Price               string
	WidgetTitle         string
	Dictionary          map[quote.Key]string
	TermsURL            string
	PrivacyPolicyURL    string
	CoverageDetailsText []string
	CoverageLines       []string
	IneligibleReasons   []string
	OptOutWarningText   string
}

type priceFormat struct {
	symbol       string
	symbolAfter  bool
	decimalComma bool
	// appends the ISO code where the symbol alone is ambiguous
	withCode bool
}

var priceFormats = map[string]priceFormat{
	"USD": {symbol: "$"},
	"CAD": {symbol: "$"},
	"AUD": {symbol: "$"},
	"NZD": {symbol: "$"},
	"SGD": {symbol: "$"},
	"HKD": {symbol: "$", withCode: true},
	"GBP": {symbol: "£"},
	"EUR": {symbol: "€", symbolAfter: true, decimalComma: true},
	"DKK": {symbol: "kr.", symbolAfter: true, decimalComma: true},
}

// FormatPrice renders an amount with two decimals in the convention of its currency.
// Without a currency the bare amount is returned; an unknown currency is appended as its code.
func FormatPrice(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return amount.StringFixed(2)
	}
	format, found := priceFormats[currency]
	if !found {
		return groupDigits(amount, ",", ".") + " " + currency
	}
	thousands, decimals := ",", "."
	if format.decimalComma {
		thousands, decimals = ".", ","
	}
	formatted := groupDigits(amount, thousands, decimals)
	switch {
	case format.symbolAfter:
		formatted = formatted + " " + format.symbol
	case strings.HasPrefix(formatted, "-"):
		formatted = "-" + format.symbol + formatted[1:]
	default:
		formatted = format.symbol + formatted
	}
	if format.withCode {
		return formatted + " " + currency
	}
	return formatted
}

func groupDigits(amount decimal.Decimal, thousands string, decimals string) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, fraction, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteString(thousands)
		}
		sb.WriteRune(r)
	}
	return sign + sb.String() + decimals + fraction
}

// CoverageKeys lists, in display order, the coverage lines for a domain.
func CoverageKeys(domain Domain) []quote.Key {
	switch domain {
	case DomainUS:
		return []quote.Key{
			quote.KeyGetFullRefund,
			quote.KeyResolveWithClicks,
			quote.KeyCompletePeaceOfMind,
			quote.KeyZeroRisk,
			quote.KeyGetRefundPromptly,
		}
	case DomainEU:
		return []quote.Key{
			quote.KeyStandardCoverageIntro,
			quote.KeyAdditionalCoverageIntro,
			quote.KeyAdditionalCoverageExtendedReturn,
			quote.KeyAdditionalCoveragePostDelivery,
			quote.KeyAdditionalCoverageDelay,
			quote.KeyConciergeIntro,
			quote.KeyConciergeAppAccess,
			quote.KeyConciergeSupport,
		}
	default:
		return nil
	}
}

// ResolveDictionary substitutes the title and price placeholders in every text and drops
// the brand placeholder from the powered-by line.
func ResolveDictionary(texts map[quote.Key]string, title string, price string) map[quote.Key]string {
	replacer := strings.NewReplacer(placeholderTitle, title, placeholderPrice, price)
	resolved := make(map[quote.Key]string, len(texts))
	for key, value := range texts {
		value = replacer.Replace(value)
		if key == quote.KeyPoweredBy {
			value = strings.ReplaceAll(value, placeholderSeel, "")
		}
		resolved[key] = value
	}
	return resolved
}

func newDisplay(resp quote.QuoteResponse, domain Domain) Display {
	extra := resp.Extra()
	price := FormatPrice(resp.Price, resp.Currency)
	dict := ResolveDictionary(extra.Dictionary(), extra.WidgetTitle, price)

	return Display{
		Price:               price,
		WidgetTitle:         extra.WidgetTitle,
		Dictionary:          dict,
		TermsURL:            extra.TermsURL,
		PrivacyPolicyURL:    extra.PrivacyPolicyURL,
		CoverageDetailsText: append([]string(nil), extra.CoverageDetailsText...),
		CoverageLines:       pick(dict, CoverageKeys(domain)),
		IneligibleReasons:   pick(dict, quote.IneligibleReasonKeys),
		OptOutWarningText:   extra.OptOutWarningText,
	}
}

// pick keeps the order of keys and skips the ones without text.
func pick(dict map[quote.Key]string, keys []quote.Key) []string {
	lines := []string{}
	for _, key := range keys {
		if value := dict[key]; value != "" {
			lines = append(lines, value)
		}
	}
	return lines
}
