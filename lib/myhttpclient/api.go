package myhttpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/MarcGrol/wfpwidget/lib/mylog"
)

//go:generate mockgen -source=api.go -package myhttpclient -destination http_sender_mock.go HTTPSender
type HTTPSender interface {
	Send(c context.Context, method string, url string, headers map[string]string, body []byte) (int, []byte, error)
}

// New returns a JSON sender that gives up on every call after timeout.
func New(timeout time.Duration, logger mylog.Logger) HTTPSender {
	return newJSONHTTPClient(&http.Client{}, timeout, logger)
}
