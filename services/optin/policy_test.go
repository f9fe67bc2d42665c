package optin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/wfpwidget/lib/mytime"
)

func TestComputeEffectiveDefault(t *testing.T) {
	now := mytime.ExampleTime
	nowMs := mytime.ToMillis(now)

	testCases := []struct {
		name          string
		serverDefault bool
		stored        *Preference
		now           time.Time
		expected      bool
	}{
		{
			name:          "No preference, server on",
			serverDefault: true,
			stored:        nil,
			now:           now,
			expected:      true,
		},
		{
			name:          "No preference, server off",
			serverDefault: false,
			stored:        nil,
			now:           now,
			expected:      false,
		},
		{
			name:          "Live opt-out overrides server on",
			serverDefault: true,
			stored:        &Preference{OptedIn: false, ExpiresAt: nowMs + 1000},
			now:           now,
			expected:      false,
		},
		{
			name:          "Stale opt-out ignored",
			serverDefault: true,
			stored:        &Preference{OptedIn: false, ExpiresAt: nowMs + 1000},
			now:           now.Add(1001 * time.Millisecond),
			expected:      true,
		},
		{
			name:          "Opt-out expiring exactly now is stale",
			serverDefault: true,
			stored:        &Preference{OptedIn: false, ExpiresAt: nowMs},
			now:           now,
			expected:      true,
		},
		{
			name:          "Live opt-in keeps server on",
			serverDefault: true,
			stored:        &Preference{OptedIn: true, ExpiresAt: nowMs + 1000},
			now:           now,
			expected:      true,
		},
		{
			name:          "Live opt-in does not override server off",
			serverDefault: false,
			stored:        &Preference{OptedIn: true, ExpiresAt: nowMs + 1000},
			now:           now,
			expected:      false,
		},
		{
			name:          "Stale opt-in, server off",
			serverDefault: false,
			stored:        &Preference{OptedIn: true, ExpiresAt: nowMs - 1},
			now:           now,
			expected:      false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeEffectiveDefault(tc.serverDefault, tc.stored, tc.now))
		})
	}
}

func TestNewPreference(t *testing.T) {
	p := NewPreference(false, mytime.ExampleTime, time.Minute)

	assert.False(t, p.OptedIn)
	assert.Equal(t, mytime.ToMillis(mytime.ExampleTime)+60000, p.ExpiresAt)
	assert.False(t, p.Expired(mytime.ExampleTime.Add(59*time.Second)))
	assert.True(t, p.Expired(mytime.ExampleTime.Add(time.Minute)))
}
