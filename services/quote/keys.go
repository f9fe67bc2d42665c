package quote

// Key is one entry of the closed vocabulary of localized widget texts.
type Key string

const (
	KeyWfpTitle       Key = "wfp_title"
	KeyWfpSubtitle    Key = "wfp_subtitle"
	KeyWfpDescription Key = "wfp_description"
	KeyPoweredBy      Key = "powered_by"
	KeyPricingMessage Key = "pricing_message"

	KeyCoverageTitle     Key = "coverage_title"
	KeyWhatsCoveredTitle Key = "whats_covered_title"

	// US coverage lines
	KeyGetFullRefund       Key = "get_full_refund"
	KeyResolveWithClicks   Key = "resolve_with_clicks"
	KeyCompletePeaceOfMind Key = "complete_peace_of_mind"
	KeyZeroRisk            Key = "zero_risk"
	KeyGetRefundPromptly   Key = "get_refund_promptly"

	// EU coverage lines
	KeyStandardCoverageIntro            Key = "standard_coverage_intro"
	KeyAdditionalCoverageIntro          Key = "additional_coverage_intro"
	KeyAdditionalCoverageExtendedReturn Key = "additional_coverage_extended_return"
	KeyAdditionalCoveragePostDelivery   Key = "additional_coverage_post_delivery"
	KeyAdditionalCoverageDelay          Key = "additional_coverage_delay"
	KeyConciergeIntro                   Key = "concierge_intro"
	KeyConciergeAppAccess               Key = "concierge_app_access"
	KeyConciergeSupport                 Key = "concierge_support"

	KeyIneligibleTitle          Key = "ineligible_title"
	KeyIneligibleMainMessage    Key = "ineligible_main_message"
	KeyIneligibleReasonShipping Key = "ineligible_reason_shipping"
	KeyIneligibleReasonCurrency Key = "ineligible_reason_currency"
	KeyIneligibleReasonValue    Key = "ineligible_reason_value"
	KeyIneligibleReasonItems    Key = "ineligible_reason_items"
	KeyIneligibleReasonSystem   Key = "ineligible_reason_system"
	KeyIneligibleSupportMessage Key = "ineligible_support_message"

	KeyCtaSecurePurchase  Key = "cta_secure_purchase"
	KeyCtaContinueWithout Key = "cta_continue_without"
	KeyPrivacyPolicy      Key = "privacy_policy"
	KeyTermsOfService     Key = "terms_of_service"
)

// IneligibleReasonKeys are shown, in this order, when a quote is rejected.
var IneligibleReasonKeys = []Key{
	KeyIneligibleReasonShipping,
	KeyIneligibleReasonCurrency,
	KeyIneligibleReasonValue,
	KeyIneligibleReasonItems,
	KeyIneligibleReasonSystem,
}
