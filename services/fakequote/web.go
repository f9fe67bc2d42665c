package fakequote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/wfpwidget/lib/mycontext"
	"github.com/MarcGrol/wfpwidget/lib/myhttp"
	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mystore"
	"github.com/MarcGrol/wfpwidget/lib/mytime"
	"github.com/MarcGrol/wfpwidget/lib/myuuid"
	"github.com/MarcGrol/wfpwidget/services/quote"
	"github.com/MarcGrol/wfpwidget/services/quoteclient"
)

const createdTsLayout = "2006-01-02T15:04:05.000Z07:00"

// webService is an in-process stand-in for the quote service, used by tests and the demo.
type webService struct {
	logger      mylog.Logger
	quoteStore  mystore.Store[quote.QuoteResponse]
	eventStore  mystore.Store[quote.Event]
	nower       mytime.Nower
	uuider      myuuid.UUIDer
	rules       Rules
	validAPIKey string
}

// NewService accepts any non-empty api key when validAPIKey is empty.
func NewService(quoteStore mystore.Store[quote.QuoteResponse], eventStore mystore.Store[quote.Event], nower mytime.Nower, uuider myuuid.UUIDer, rules Rules, validAPIKey string) *webService {
	return &webService{
		logger:      mylog.New("fakequote"),
		quoteStore:  quoteStore,
		eventStore:  eventStore,
		nower:       nower,
		uuider:      uuider,
		rules:       rules,
		validAPIKey: validAPIKey,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc(quoteclient.QuotesPath, s.createQuote()).Methods("POST")
	router.HandleFunc(quoteclient.QuotesPath+"/{quoteID}", s.getQuote()).Methods("GET")
	router.HandleFunc(quoteclient.EventsPath, s.createEvent()).Methods("POST")
	router.HandleFunc("/_ah/warmup", s.warmup()).Methods("GET")

	return nil
}

func (s *webService) createQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.authenticate(r)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusUnauthorized, err)
			return
		}

		req := quote.QuoteRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusBadRequest, fmt.Errorf("error parsing quote request: %s", err))
			return
		}

		if s.rules.Latency > 0 {
			select {
			case <-time.After(s.rules.Latency):
			case <-c.Done():
				return
			}
		}

		resp, err := s.CreateQuote(c, req)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusInternalServerError, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.authenticate(r)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusUnauthorized, err)
			return
		}

		quoteID := mux.Vars(r)["quoteID"]
		resp, exists, err := s.quoteStore.Get(c, quoteID)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusInternalServerError, fmt.Errorf("error fetching quote %s: %s", quoteID, err))
			return
		}
		if !exists {
			responseWriter.WriteError(c, w, http.StatusNotFound, fmt.Errorf("quote %s not found", quoteID))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := s.authenticate(r)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusUnauthorized, err)
			return
		}

		event := quote.Event{}
		err = json.NewDecoder(r.Body).Decode(&event)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusBadRequest, fmt.Errorf("error parsing event: %s", err))
			return
		}
		if event.EventID == "" || event.EventType == "" {
			responseWriter.WriteError(c, w, http.StatusBadRequest, errors.New("event_id and event_type are required"))
			return
		}

		err = s.eventStore.Put(c, event.EventID, event)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusInternalServerError, fmt.Errorf("error storing event: %s", err))
			return
		}

		s.logger.Log(c, event.SessionID, mylog.SeverityInfo, "Event %s: %s", event.EventID, event.EventType)

		responseWriter.Write(c, w, http.StatusOK, event)
	}
}

func (s *webService) warmup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		quotes, err := s.quoteStore.List(c)
		if err != nil {
			responseWriter.WriteError(c, w, http.StatusServiceUnavailable, fmt.Errorf("error listing quotes: %s", err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, map[string]any{
			"status": "ok",
			"quotes": len(quotes),
		})
	}
}

// CreateQuote prices and stores a quote in-process, without going through HTTP.
func (s *webService) CreateQuote(c context.Context, req quote.QuoteRequest) (quote.QuoteResponse, error) {
	resp := s.quote(req)
	err := s.quoteStore.Put(c, resp.QuoteID, resp)
	if err != nil {
		return quote.QuoteResponse{}, fmt.Errorf("error storing quote: %s", err)
	}

	s.logger.Log(c, req.CartID, mylog.SeverityInfo, "Quote %s for cart %s: %s", resp.QuoteID, req.CartID, resp.Status)

	return resp, nil
}

func (s *webService) authenticate(r *http.Request) error {
	apiKey := r.Header.Get(quoteclient.HeaderAPIKey)
	if apiKey == "" {
		return errors.New("missing api key")
	}
	if s.validAPIKey != "" && apiKey != s.validAPIKey {
		return errors.New("invalid api key")
	}
	return nil
}

func (s *webService) quote(req quote.QuoteRequest) quote.QuoteResponse {
	resp := quote.QuoteResponse{
		QuoteID:         s.uuider.Create(),
		CartID:          req.CartID,
		MerchantID:      req.MerchantID,
		DeviceID:        req.DeviceID,
		SessionID:       req.SessionID,
		CreatedTs:       s.nower.Now().UTC().Format(createdTsLayout),
		Type:            req.Type,
		DeviceCategory:  req.DeviceCategory,
		DevicePlatform:  req.DevicePlatform,
		Currency:        cartCurrency(req),
		ShippingAddress: &req.ShippingAddress,
		Customer: &quote.ResponseCustomer{
			CustomerID: req.Customer.CustomerID,
			Email:      req.Customer.Email,
			FirstName:  req.Customer.FirstName,
			LastName:   req.Customer.LastName,
		},
	}

	reason := s.rules.evaluate(req)
	if reason != "" {
		resp.Status = quote.StatusRejected
		resp.ExtraInfo = &quote.ResponseExtraInfo{
			I18N: &quote.I18N{Lang: "en", Texts: rejectedTexts(reason)},
		}
		return resp
	}

	resp.Status = quote.StatusAccepted
	resp.Price = s.rules.price(req)
	resp.IsDefaultOn = s.rules.DefaultOn && (req.IsDefaultOn == nil || *req.IsDefaultOn)
	resp.ExtraInfo = &quote.ResponseExtraInfo{
		WidgetTitle:         s.rules.WidgetTitle,
		TermsURL:            s.rules.TermsURL,
		PrivacyPolicyURL:    s.rules.PrivacyPolicyURL,
		CoverageDetailsText: []string{"Loss", "Damage", "Delay"},
		OptOutWarningText:   "Orders without protection are not eligible for refunds",
		I18N:                &quote.I18N{Lang: "en", Texts: acceptedTexts},
	}
	return resp
}
