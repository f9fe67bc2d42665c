package quoteclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
	"github.com/MarcGrol/wfpwidget/lib/myerrors"
	"github.com/MarcGrol/wfpwidget/lib/myhttpclient"
	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mytime"
	"github.com/MarcGrol/wfpwidget/lib/myuuid"
	"github.com/MarcGrol/wfpwidget/services/quote"
)

const (
	QuotesPath = "/v1/ecommerce/quotes"
	EventsPath = "/v1/ecommerce/events"

	HeaderAPIKey     = "X-Seel-API-Key"
	HeaderAPIVersion = "X-Seel-API-Version"

	DefaultEventSource = "wfp_widget"

	eventTsLayout = "2006-01-02T15:04:05.000Z07:00"
)

//go:generate mockgen -source=quoteclient.go -package quoteclient -destination quoteclient_mock.go QuoteClient EventClient
type QuoteClient interface {
	CreateQuote(c context.Context, req quote.QuoteRequest) (quote.QuoteResponse, error)
}

type EventClient interface {
	CreateEvent(c context.Context, event quote.Event) error
}

type client struct {
	cfg    myconfig.Config
	sender myhttpclient.HTTPSender
	nower  mytime.Nower
	uuider myuuid.UUIDer
	logger mylog.Logger
}

func New(cfg myconfig.Config, sender myhttpclient.HTTPSender, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *client {
	return &client{
		cfg:    cfg,
		sender: sender,
		nower:  nower,
		uuider: uuider,
		logger: logger,
	}
}

func (cl *client) CreateQuote(c context.Context, req quote.QuoteRequest) (quote.QuoteResponse, error) {
	respBody, err := cl.post(c, QuotesPath, req.CartID, req)
	if err != nil {
		return quote.QuoteResponse{}, err
	}

	resp := quote.QuoteResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return quote.QuoteResponse{}, myerrors.NewDecodingError(fmt.Errorf("error parsing quote response: %w", err))
	}

	err = resp.Validate()
	if err != nil {
		return quote.QuoteResponse{}, myerrors.NewDecodingError(err)
	}

	cl.logger.Log(c, req.CartID, mylog.SeverityInfo, "Quote %s for cart %s: %s %s %s", resp.QuoteID, req.CartID, resp.Status, resp.Price.StringFixed(2), resp.Currency)

	return resp, nil
}

// CreateEvent fills in a missing event id, timestamp and source before posting.
func (cl *client) CreateEvent(c context.Context, event quote.Event) error {
	if event.EventID == "" {
		event.EventID = cl.uuider.Create()
	}
	if event.EventTs == "" {
		event.EventTs = cl.nower.Now().UTC().Format(eventTsLayout)
	}
	if event.EventSource == "" {
		event.EventSource = DefaultEventSource
	}

	_, err := cl.post(c, EventsPath, event.SessionID, event)
	if err != nil {
		return err
	}

	cl.logger.Log(c, event.SessionID, mylog.SeverityDebug, "Event %s (%s) sent", event.EventID, event.EventType)

	return nil
}

func (cl *client) post(c context.Context, path string, traceLabel string, payload any) ([]byte, error) {
	if !cl.cfg.IsConfigured() {
		return nil, myerrors.NewConfigErrorf("api key not configured")
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, myerrors.NewDecodingError(fmt.Errorf("error serializing request: %w", err))
	}

	url := cl.cfg.BaseURL() + path
	headers := map[string]string{
		HeaderAPIKey:     cl.cfg.APIKey,
		HeaderAPIVersion: cl.cfg.APIVersion,
	}

	httpRespCode, respBody, err := cl.sender.Send(c, http.MethodPost, url, headers, reqBody)
	if err != nil {
		cl.logger.Log(c, traceLabel, mylog.SeverityWarn, "POST %s failed: %s", url, err)
		return nil, myerrors.NewNetworkError(err)
	}

	if httpRespCode < 200 || httpRespCode >= 300 {
		cl.logger.Log(c, traceLabel, mylog.SeverityWarn, "POST %s returned %d: %s", url, httpRespCode, string(respBody))
		return nil, myerrors.NewServerError(httpRespCode, fmt.Errorf("POST %s: %s", path, string(respBody)))
	}

	return respBody, nil
}
