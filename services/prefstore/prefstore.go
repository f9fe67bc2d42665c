package prefstore

import (
	"context"
	"strconv"
	"time"

	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mystore"
	"github.com/MarcGrol/wfpwidget/services/optin"
)

const (
	KeyOptedIn           = "SeelWFPWidget.OptedIn"
	KeyOptOutExpiredTime = "SeelWFPWidget.OptOutExpiredTime"

	valueTrue  = "1"
	valueFalse = "0"
)

// Entry is the persisted form of one preference key.
type Entry struct {
	Value string `datastore:",noindex"`
}

// PreferenceStore never reports failures: they are logged and read as absent or zero.
//
//go:generate mockgen -source=prefstore.go -package prefstore -destination prefstore_mock.go PreferenceStore
type PreferenceStore interface {
	GetOptIn(c context.Context) (bool, bool)
	SetOptIn(c context.Context, optedIn bool)
	GetOptOutExpiry(c context.Context) int64
	SetOptOutExpiry(c context.Context, expiresAt int64)
	Load(c context.Context, now time.Time) *optin.Preference
	Save(c context.Context, pref optin.Preference)
	Clear(c context.Context)
}

type preferenceStore struct {
	store  mystore.Store[Entry]
	logger mylog.Logger
}

func New(store mystore.Store[Entry], logger mylog.Logger) *preferenceStore {
	return &preferenceStore{
		store:  store,
		logger: logger,
	}
}

func (ps *preferenceStore) GetOptIn(c context.Context) (bool, bool) {
	entry, found, err := ps.store.Get(c, KeyOptedIn)
	if err != nil {
		ps.logger.Log(c, KeyOptedIn, mylog.SeverityError, "Failed to get [%s] error: %s", KeyOptedIn, err)
		return false, false
	}
	if !found || entry.Value == "" {
		return false, false
	}
	return entry.Value != valueFalse, true
}

func (ps *preferenceStore) SetOptIn(c context.Context, optedIn bool) {
	ps.put(c, KeyOptedIn, formatBool(optedIn))
}

func (ps *preferenceStore) GetOptOutExpiry(c context.Context) int64 {
	entry, found, err := ps.store.Get(c, KeyOptOutExpiredTime)
	if err != nil {
		ps.logger.Log(c, KeyOptOutExpiredTime, mylog.SeverityError, "Failed to get [%s] error: %s", KeyOptOutExpiredTime, err)
		return 0
	}
	if !found || entry.Value == "" {
		return 0
	}
	expiresAt, err := strconv.ParseInt(entry.Value, 10, 64)
	if err != nil {
		ps.logger.Log(c, KeyOptOutExpiredTime, mylog.SeverityWarn, "Ignoring malformed [%s] value '%s'", KeyOptOutExpiredTime, entry.Value)
		return 0
	}
	return expiresAt
}

func (ps *preferenceStore) SetOptOutExpiry(c context.Context, expiresAt int64) {
	ps.put(c, KeyOptOutExpiredTime, strconv.FormatInt(expiresAt, 10))
}

// Load returns nil when nothing was stored or the stored choice has expired.
func (ps *preferenceStore) Load(c context.Context, now time.Time) *optin.Preference {
	optedIn, found := ps.GetOptIn(c)
	if !found {
		return nil
	}
	pref := optin.Preference{
		OptedIn:   optedIn,
		ExpiresAt: ps.GetOptOutExpiry(c),
	}
	if pref.Expired(now) {
		return nil
	}
	return &pref
}

func (ps *preferenceStore) Save(c context.Context, pref optin.Preference) {
	err := ps.store.RunInTransaction(c, func(c context.Context) error {
		err := ps.store.Put(c, KeyOptedIn, Entry{Value: formatBool(pref.OptedIn)})
		if err != nil {
			return err
		}
		return ps.store.Put(c, KeyOptOutExpiredTime, Entry{Value: strconv.FormatInt(pref.ExpiresAt, 10)})
	})
	if err != nil {
		ps.logger.Log(c, KeyOptedIn, mylog.SeverityError, "Failed to save preference %+v error: %s", pref, err)
	}
}

func (ps *preferenceStore) Clear(c context.Context) {
	for _, key := range []string{KeyOptedIn, KeyOptOutExpiredTime} {
		err := ps.store.Delete(c, key)
		if err != nil {
			ps.logger.Log(c, key, mylog.SeverityError, "Failed to clear [%s] error: %s", key, err)
		}
	}
}

func (ps *preferenceStore) put(c context.Context, key string, value string) {
	err := ps.store.Put(c, key, Entry{Value: value})
	if err != nil {
		ps.logger.Log(c, key, mylog.SeverityError, "Failed to set [%s] error: %s", key, err)
	}
}

func formatBool(b bool) string {
	if b {
		return valueTrue
	}
	return valueFalse
}
