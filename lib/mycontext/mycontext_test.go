package mycontext

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	t.Run("No trace", func(t *testing.T) {
		assert.Equal(t, "", TraceFromContext(context.Background()))
	})

	t.Run("With trace", func(t *testing.T) {
		c := WithTrace(context.Background(), "gen-3")
		assert.Equal(t, "gen-3", TraceFromContext(c))
	})

	t.Run("From http request", func(t *testing.T) {
		t.Setenv("GOOGLE_CLOUD_PROJECT", "myproject")
		r, err := http.NewRequest(http.MethodPost, "/v1/ecommerce/quotes", nil)
		assert.NoError(t, err)
		r.Header.Set("X-Cloud-Trace-Context", "abc123/1;o=1")

		c := ContextFromHTTPRequest(r)
		assert.Equal(t, "projects/myproject/traces/abc123", TraceFromContext(c))
	})
}
