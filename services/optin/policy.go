package optin

import (
	"time"

	"github.com/MarcGrol/wfpwidget/lib/mytime"
)

// Preference is the shopper's last explicit choice. It only counts until ExpiresAt (ms since epoch).
type Preference struct {
	OptedIn   bool
	ExpiresAt int64
}

func NewPreference(optedIn bool, now time.Time, ttl time.Duration) Preference {
	return Preference{
		OptedIn:   optedIn,
		ExpiresAt: mytime.ToMillis(now.Add(ttl)),
	}
}

func (p Preference) Expired(now time.Time) bool {
	return mytime.ToMillis(now) >= p.ExpiresAt
}

// ComputeEffectiveDefault decides whether the protection starts out selected.
//
// A live opt-out always wins. A live opt-in does not override a server that suggests
// declining: it falls back to the server default just like an absent or stale preference.
func ComputeEffectiveDefault(serverSuggestedDefault bool, stored *Preference, now time.Time) bool {
	if stored == nil || stored.Expired(now) {
		return serverSuggestedDefault
	}
	if !stored.OptedIn {
		return false
	}
	return serverSuggestedDefault
}
