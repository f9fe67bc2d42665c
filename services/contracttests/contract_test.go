package contracttests

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/wfpwidget/lib/myconfig"
	"github.com/MarcGrol/wfpwidget/lib/myhttpclient"
	"github.com/MarcGrol/wfpwidget/lib/mylog"
	"github.com/MarcGrol/wfpwidget/lib/mystore"
	"github.com/MarcGrol/wfpwidget/lib/mytime"
	"github.com/MarcGrol/wfpwidget/lib/myuuid"
	"github.com/MarcGrol/wfpwidget/services/fakequote"
	"github.com/MarcGrol/wfpwidget/services/quote"
	"github.com/MarcGrol/wfpwidget/services/quoteclient"
)

func newFakeService(t *testing.T) interface {
	quoteclient.QuoteClient
	RegisterEndpoints(c context.Context, router *mux.Router) error
} {
	quotes, _, err := mystore.NewInMemoryStore[quote.QuoteResponse](context.Background())
	require.NoError(t, err)
	events, _, err := mystore.NewInMemoryStore[quote.Event](context.Background())
	require.NoError(t, err)
	return fakequote.NewService(quotes, events, mytime.RealNower{}, myuuid.RealUUIDer{}, fakequote.DefaultRules(), "contract-key")
}

func TestInProcessFake(t *testing.T) {
	QuoteClientContract{
		Client: func(t *testing.T) quoteclient.QuoteClient {
			return newFakeService(t)
		},
	}.Test(t)
}

func TestHTTPClientAgainstFake(t *testing.T) {
	QuoteClientContract{
		Client: func(t *testing.T) quoteclient.QuoteClient {
			router := mux.NewRouter()
			require.NoError(t, newFakeService(t).RegisterEndpoints(context.Background(), router))
			server := httptest.NewServer(router)
			t.Cleanup(server.Close)

			cfg := myconfig.New("contract-key")
			cfg.BaseURLOverride = server.URL
			return quoteclient.New(cfg, myhttpclient.New(cfg.RequestTimeout, mylog.New("http")), mytime.RealNower{}, myuuid.RealUUIDer{}, mylog.New("quoteclient"))
		},
	}.Test(t)
}
