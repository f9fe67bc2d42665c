package quoteclient

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
	"github.com/MarcGrol/wfpwidget/lib/myerrors"
	"github.com/MarcGrol/wfpwidget/lib/myhttpclient"
	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mytime"
	"github.com/MarcGrol/wfpwidget/lib/myuuid"
	"github.com/MarcGrol/wfpwidget/services/quote"
)

var expectedHeaders = map[string]string{
	HeaderAPIKey:     "my-key",
	HeaderAPIVersion: "2.6.0",
}

func setup(t *testing.T, cfg myconfig.Config) (*client, *myhttpclient.MockHTTPSender, *mytime.MockNower, *myuuid.MockUUIDer) {
	ctrl := gomock.NewController(t)
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	return New(cfg, sender, nower, uuider, mylog.New("quoteclient")), sender, nower, uuider
}

func TestCreateQuote(t *testing.T) {
	req := quote.QuoteRequest{
		SessionID: "s1",
		CartID:    "cart1",
		Type:      "seel-worry-free-purchase",
	}.WithDefaultOn(true)

	t.Run("Accepted", func(t *testing.T) {
		// given
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://api.seel.com/v1/ecommerce/quotes", expectedHeaders, gomock.Any()).
			DoAndReturn(func(c context.Context, method, url string, headers map[string]string, body []byte) (int, []byte, error) {
				assert.Contains(t, string(body), `"is_default_on":true`)
				assert.Contains(t, string(body), `"cart_id":"cart1"`)
				return 200, []byte(`{"quote_id":"q1","status":"accepted","price":"1.99","currency":"USD","is_default_on":true}`), nil
			})

		// when
		resp, err := sut.CreateQuote(context.TODO(), req)

		// then
		require.NoError(t, err)
		assert.Equal(t, "q1", resp.QuoteID)
		assert.True(t, resp.IsAccepted())
		assert.True(t, resp.IsDefaultOn)
		assert.True(t, resp.Price.Equal(decimal.RequireFromString("1.99")))
	})

	t.Run("Development environment", func(t *testing.T) {
		cfg := myconfig.New("my-key")
		cfg.Environment = myconfig.EnvironmentDevelopment
		sut, sender, _, _ := setup(t, cfg)
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://api-test.seel.com/v1/ecommerce/quotes", expectedHeaders, gomock.Any()).
			Return(200, []byte(`{"status":"rejected"}`), nil)

		resp, err := sut.CreateQuote(context.TODO(), req)
		require.NoError(t, err)
		assert.False(t, resp.IsAccepted())
	})

	t.Run("Not configured", func(t *testing.T) {
		sut, _, _, _ := setup(t, myconfig.New(""))

		_, err := sut.CreateQuote(context.TODO(), req)
		assert.Equal(t, myerrors.KindConfig, myerrors.GetKind(err))
	})

	t.Run("Transport failure", func(t *testing.T) {
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil, context.DeadlineExceeded)

		_, err := sut.CreateQuote(context.TODO(), req)
		assert.Equal(t, myerrors.KindNetwork, myerrors.GetKind(err))
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("Server failure", func(t *testing.T) {
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(503, []byte(`unavailable`), nil)

		_, err := sut.CreateQuote(context.TODO(), req)
		assert.Equal(t, myerrors.KindServer, myerrors.GetKind(err))
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})

	t.Run("Malformed payload", func(t *testing.T) {
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(200, []byte(`{"status":`), nil)

		_, err := sut.CreateQuote(context.TODO(), req)
		assert.Equal(t, myerrors.KindDecoding, myerrors.GetKind(err))
	})

	t.Run("Unknown status", func(t *testing.T) {
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(200, []byte(`{"status":"pending"}`), nil)

		_, err := sut.CreateQuote(context.TODO(), req)
		assert.Equal(t, myerrors.KindDecoding, myerrors.GetKind(err))
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Fills in id, timestamp and source", func(t *testing.T) {
		// given
		sut, sender, nower, uuider := setup(t, myconfig.New("my-key"))
		uuider.EXPECT().Create().Return("e1")
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		sender.EXPECT().Send(gomock.Any(), http.MethodPost, "https://api.seel.com/v1/ecommerce/events", expectedHeaders, gomock.Any()).
			DoAndReturn(func(c context.Context, method, url string, headers map[string]string, body []byte) (int, []byte, error) {
				assert.Contains(t, string(body), `"event_id":"e1"`)
				assert.Contains(t, string(body), `"event_ts":"2023-02-27T23:58:59.000Z"`)
				assert.Contains(t, string(body), `"event_source":"wfp_widget"`)
				assert.Contains(t, string(body), `"event_type":"ra_checked"`)
				return 201, []byte(`{}`), nil
			})

		// when
		err := sut.CreateEvent(context.TODO(), quote.Event{SessionID: "s1", EventType: quote.EventTypeRAChecked})

		// then
		assert.NoError(t, err)
	})

	t.Run("Keeps caller supplied fields", func(t *testing.T) {
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(c context.Context, method, url string, headers map[string]string, body []byte) (int, []byte, error) {
				assert.Contains(t, string(body), `"event_id":"mine"`)
				assert.Contains(t, string(body), `"event_ts":"yesterday"`)
				assert.Contains(t, string(body), `"event_source":"app"`)
				return 200, nil, nil
			})

		err := sut.CreateEvent(context.TODO(), quote.Event{EventID: "mine", EventTs: "yesterday", EventSource: "app"})
		assert.NoError(t, err)
	})

	t.Run("Server failure", func(t *testing.T) {
		sut, sender, _, _ := setup(t, myconfig.New("my-key"))
		sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(400, []byte(`bad event`), nil)

		err := sut.CreateEvent(context.TODO(), quote.Event{EventID: "e1", EventTs: "now"})
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})
}
