package widget

import (
	"time"

	"github.com/MarcGrol/wfpwidget/services/quote"
	"github.com/MarcGrol/wfpwidget/services/quoteclient"
)

const DefaultDebounce = 300 * time.Millisecond

type LoadingStatus string

const (
	LoadingStatusIdle    LoadingStatus = "idle"
	LoadingStatusLoading LoadingStatus = "loading"
	LoadingStatusSuccess LoadingStatus = "success"
	LoadingStatusFailed  LoadingStatus = "failed"
)

type Mode string

const (
	ModeHidden     Mode = "hidden"
	ModeEligible   Mode = "eligible"
	ModeIneligible Mode = "ineligible"
)

// Value is what the host needs to compute order totals.
type Value struct {
	OptedIn bool
	Quote   *quote.QuoteResponse
}

// State is a snapshot for the presentation shell. It is never modified after publication.
type State struct {
	Status  LoadingStatus
	Visible bool
	Mode    Mode
	OptedIn bool
	Quote   *quote.QuoteResponse
	Display Display
}

type Options struct {
	Domain         Domain
	DefaultOptedIn bool

	// AutoFetch makes SetRequest dispatch after Debounce of quiet.
	// Zero selects DefaultDebounce, a negative value dispatches right away.
	AutoFetch bool
	Debounce  time.Duration

	// FallbackRequest is used by Refresh when nothing was dispatched or set yet.
	FallbackRequest *quote.QuoteRequest

	// Callbacks run on the widget's own goroutine, one at a time.
	OnChangeValue func(Value)
	OnStateChange func(State)

	// Events receives ra_checked and ra_unchecked when set.
	Events quoteclient.EventClient
}

func (o Options) debounce() time.Duration {
	if o.Debounce == 0 {
		return DefaultDebounce
	}
	return o.Debounce
}

// Controller is the handle a host uses to drive a widget imperatively.
type Controller interface {
	Setup(req quote.QuoteRequest)
	Refresh()
	Cancel()
}
