package widget

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
	"github.com/MarcGrol/wfpwidget/lib/mycontext"
	"github.com/MarcGrol/wfpwidget/lib/myerrors"
	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mytime"
	"github.com/MarcGrol/wfpwidget/services/optin"
	"github.com/MarcGrol/wfpwidget/services/prefstore"
	"github.com/MarcGrol/wfpwidget/services/quote"
	"github.com/MarcGrol/wfpwidget/services/quoteclient"
)

// Widget orchestrates quote fetching and the shopper's opt-in choice for one checkout screen.
//
// Public methods only enqueue work and return immediately. All state is owned by the widget's
// event loop; network calls and preference reads run on their own goroutines and report back
// through the loop. A response is applied only when it belongs to the latest dispatch.
type Widget struct {
	client quoteclient.QuoteClient
	prefs  prefstore.PreferenceStore
	nower  mytime.Nower
	logger mylog.Logger
	cfg    myconfig.Config
	opts   Options

	loop       *eventLoop
	generation atomic.Uint64
	background sync.WaitGroup
	closeOnce  sync.Once

	// owned by the loop
	debounceSeq    uint64
	debounceTimer  *time.Timer
	cancelInFlight context.CancelFunc
	lastRequest    *quote.QuoteRequest
	requestProp    *quote.QuoteRequest
	state          State

	snapshotMu sync.RWMutex
	snapshot   State

	writeMu      sync.Mutex
	pendingWrite *optin.Preference
	writing      bool
}

var _ Controller = (*Widget)(nil)

func New(client quoteclient.QuoteClient, prefs prefstore.PreferenceStore, nower mytime.Nower, logger mylog.Logger, cfg myconfig.Config, opts Options) *Widget {
	w := &Widget{
		client: client,
		prefs:  prefs,
		nower:  nower,
		logger: logger,
		cfg:    cfg,
		opts:   opts,
		loop:   newEventLoop(),
		state: State{
			Status:  LoadingStatusIdle,
			Mode:    ModeHidden,
			OptedIn: opts.DefaultOptedIn,
		},
	}
	w.snapshot = w.state
	return w
}

// Setup dispatches req right away, dropping any pending debounced dispatch.
func (w *Widget) Setup(req quote.QuoteRequest) {
	w.enqueue("setup", func() {
		w.stopDebounce()
		w.dispatch(req)
	})
}

// Refresh re-dispatches the last request, else the request set with SetRequest, else the fallback.
func (w *Widget) Refresh() {
	w.enqueue("refresh", func() {
		var req *quote.QuoteRequest
		switch {
		case w.lastRequest != nil:
			req = w.lastRequest
		case w.requestProp != nil:
			req = w.requestProp
		case w.opts.FallbackRequest != nil:
			req = w.opts.FallbackRequest
		}
		if req == nil {
			w.logger.Log(context.Background(), "", mylog.SeverityWarn, "No request data available for refresh")
			return
		}
		w.dispatch(*req)
	})
}

// Cancel makes sure no outstanding dispatch changes state anymore.
func (w *Widget) Cancel() {
	w.enqueue("cancel", w.cancel)
}

// SetRequest replaces the request the host currently shows. With AutoFetch it triggers a debounced dispatch.
func (w *Widget) SetRequest(req quote.QuoteRequest) {
	w.enqueue("set-request", func() {
		w.requestProp = &req
		if !w.opts.AutoFetch {
			return
		}
		w.stopDebounce()
		delay := w.opts.debounce()
		if delay < 0 {
			w.dispatch(req)
			return
		}
		seq := w.debounceSeq
		w.debounceTimer = time.AfterFunc(delay, func() {
			w.loop.post(func() {
				if seq != w.debounceSeq {
					return
				}
				w.debounceTimer = nil
				w.dispatch(req)
			})
		})
	})
}

// OnChangeOptedIn records a choice the shopper made in the presentation shell.
func (w *Widget) OnChangeOptedIn(optedIn bool) {
	w.enqueue("change-opted-in", func() {
		resp := w.state.Quote
		if resp == nil || !resp.IsAccepted() {
			w.state.OptedIn = false
			w.publish(true)
			return
		}

		now := w.nower.Now()
		w.persist(optin.NewPreference(optedIn, now, w.cfg.OptOutExpiredTime))
		w.state.OptedIn = optedIn
		w.publish(true)
		w.track(*resp, optedIn)
	})
}

// State returns the most recently published snapshot.
func (w *Widget) State() State {
	w.snapshotMu.RLock()
	defer w.snapshotMu.RUnlock()
	return w.snapshot
}

// Close cancels outstanding work, stops the widget and waits for its goroutines: quote calls,
// pending preference writes and tracking events. It must not be called from a callback.
func (w *Widget) Close() {
	w.closeOnce.Do(func() {
		w.loop.post(w.cancel)
		w.loop.stop()
		w.background.Wait()
	})
}

func (w *Widget) enqueue(what string, f func()) {
	if !w.loop.post(f) {
		w.logger.Log(context.Background(), "", mylog.SeverityWarn, "Widget closed, ignoring %s", what)
	}
}

func (w *Widget) cancel() {
	w.stopDebounce()
	w.generation.Add(1)
	w.abortInFlight()
	if w.state.Status != LoadingStatusIdle {
		w.state.Status = LoadingStatusIdle
		w.publish(false)
	}
}

func (w *Widget) stopDebounce() {
	w.debounceSeq++
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
}

func (w *Widget) abortInFlight() {
	if w.cancelInFlight != nil {
		w.cancelInFlight()
		w.cancelInFlight = nil
	}
}

type outcome struct {
	generation uint64
	resp       quote.QuoteResponse
	stored     *optin.Preference
	now        time.Time
	err        error
}

func (w *Widget) dispatch(req quote.QuoteRequest) {
	w.lastRequest = &req
	gen := w.generation.Add(1)
	w.abortInFlight()

	c, cancel := context.WithCancel(mycontext.WithTrace(context.Background(), req.SessionID))
	w.cancelInFlight = cancel

	if w.state.Status != LoadingStatusLoading {
		w.state.Status = LoadingStatusLoading
		w.publish(false)
	}

	serverSuggested := w.opts.DefaultOptedIn
	if w.state.Quote != nil {
		serverSuggested = w.state.OptedIn
	}
	w.logger.Log(c, req.CartID, mylog.SeverityDebug, "Dispatching quote request #%d", gen)

	w.background.Add(1)
	go func() {
		defer w.background.Done()
		result := w.fetch(c, gen, req, serverSuggested)
		w.loop.post(func() { w.apply(result) })
	}()
}

// fetch runs off the loop: it resolves the effective default, calls the quote service and,
// for an accepted quote, reads the stored preference again for the post-response pass.
func (w *Widget) fetch(c context.Context, gen uint64, req quote.QuoteRequest, serverSuggested bool) outcome {
	now := w.nower.Now()
	isDefaultOn := optin.ComputeEffectiveDefault(serverSuggested, w.prefs.Load(c, now), now)
	if c.Err() != nil {
		return outcome{generation: gen, err: c.Err()}
	}

	resp, err := w.client.CreateQuote(c, req.WithDefaultOn(isDefaultOn))
	if err != nil {
		return outcome{generation: gen, err: err}
	}

	result := outcome{generation: gen, resp: resp}
	if resp.IsAccepted() {
		result.now = w.nower.Now()
		result.stored = w.prefs.Load(c, result.now)
	}
	return result
}

func (w *Widget) apply(result outcome) {
	c := context.Background()
	if result.generation != w.generation.Load() {
		w.logger.Log(c, "", mylog.SeverityDebug, "Request #%d cancelled or superseded, ignoring response", result.generation)
		return
	}
	w.abortInFlight()

	if result.err != nil {
		w.logger.Log(c, "", mylog.SeverityWarn, "Quote request #%d failed (%s): %s", result.generation, myerrors.GetKind(result.err), result.err)
		changed := w.state.Quote != nil || w.state.OptedIn
		w.state = State{
			Status: LoadingStatusFailed,
			Mode:   ModeHidden,
		}
		w.publish(changed)
		return
	}

	resp := result.resp
	next := State{
		Status:  LoadingStatusSuccess,
		Visible: true,
		Quote:   &resp,
		Display: newDisplay(resp, w.opts.Domain),
	}
	if resp.IsAccepted() {
		next.Mode = ModeEligible
		next.OptedIn = optin.ComputeEffectiveDefault(resp.IsDefaultOn, result.stored, result.now)
	} else {
		next.Mode = ModeIneligible
		next.OptedIn = false
	}
	w.logger.Log(c, resp.CartID, mylog.SeverityInfo, "Quote %s %s, opted in: %v", resp.QuoteID, resp.Status, next.OptedIn)

	w.state = next
	w.publish(true)
}

// publish hands a copy of the state to readers and callbacks. notify also fires OnChangeValue.
func (w *Widget) publish(notify bool) {
	snapshot := w.state

	w.snapshotMu.Lock()
	w.snapshot = snapshot
	w.snapshotMu.Unlock()

	if w.opts.OnStateChange != nil {
		w.opts.OnStateChange(snapshot)
	}
	if notify && w.opts.OnChangeValue != nil {
		w.opts.OnChangeValue(Value{
			OptedIn: snapshot.OptedIn,
			Quote:   snapshot.Quote,
		})
	}
}

// persist writes preferences in order on a background goroutine, collapsing writes that queue up.
func (w *Widget) persist(pref optin.Preference) {
	w.writeMu.Lock()
	w.pendingWrite = &pref
	running := w.writing
	w.writing = true
	w.writeMu.Unlock()

	if running {
		return
	}
	w.background.Add(1)
	go func() {
		defer w.background.Done()
		for {
			w.writeMu.Lock()
			next := w.pendingWrite
			w.pendingWrite = nil
			if next == nil {
				w.writing = false
				w.writeMu.Unlock()
				return
			}
			w.writeMu.Unlock()

			w.prefs.Save(context.Background(), *next)
		}
	}()
}

func (w *Widget) track(resp quote.QuoteResponse, optedIn bool) {
	if w.opts.Events == nil {
		return
	}
	eventType := quote.EventTypeRAUnchecked
	if optedIn {
		eventType = quote.EventTypeRAChecked
	}
	event := quote.Event{
		SessionID: resp.SessionID,
		DeviceID:  resp.DeviceID,
		EventType: eventType,
	}
	if resp.Customer != nil {
		event.CustomerID = resp.Customer.CustomerID
		event.EventInfo = &quote.EventInfo{UserEmail: resp.Customer.Email}
	}

	w.background.Add(1)
	go func() {
		defer w.background.Done()
		c := mycontext.WithTrace(context.Background(), resp.SessionID)
		err := w.opts.Events.CreateEvent(c, event)
		if err != nil {
			w.logger.Log(c, resp.SessionID, mylog.SeverityWarn, "Failed to send %s event: %s", eventType, err)
		}
	}()
}
