package myerrors

import (
	"fmt"
	"testing"
)

func TestErrors(t *testing.T) {
	myErr := fmt.Errorf("my error")

	testCases := []struct {
		name       string
		in         error
		kind       Kind
		httpStatus int
		errorText  string
	}{
		{
			name:       "No sdk error",
			in:         myErr,
			kind:       KindUnknown,
			httpStatus: 0,
			errorText:  "my error",
		},
		{
			name:       "Config error",
			in:         NewConfigError(myErr),
			kind:       KindConfig,
			httpStatus: 0,
			errorText:  "config error: my error",
		},
		{
			name:       "Config errorf",
			in:         NewConfigErrorf("%s: %d", myErr.Error(), 123),
			kind:       KindConfig,
			httpStatus: 0,
			errorText:  "config error: my error: 123",
		},
		{
			name:       "Network error",
			in:         NewNetworkError(myErr),
			kind:       KindNetwork,
			httpStatus: 0,
			errorText:  "network error: my error",
		},
		{
			name:       "Server error",
			in:         NewServerError(503, myErr),
			kind:       KindServer,
			httpStatus: 503,
			errorText:  "server error: status: 503, err: my error",
		},
		{
			name:       "Decoding error",
			in:         NewDecodingError(myErr),
			kind:       KindDecoding,
			httpStatus: 0,
			errorText:  "decoding error: my error",
		},
		{
			name:       "Wrapped server error",
			in:         fmt.Errorf("create quote: %w", NewServerError(400, myErr)),
			kind:       KindServer,
			httpStatus: 400,
			errorText:  "create quote: server error: status: 400, err: my error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind := GetKind(tc.in)
			if kind != tc.kind {
				t.Errorf("Kind: got %v, want %v", kind, tc.kind)
			}
			if !IsKind(tc.in, tc.kind) {
				t.Errorf("IsKind: %v not recognized", tc.kind)
			}
			httpStatus := GetHTTPStatus(tc.in)
			if httpStatus != tc.httpStatus {
				t.Errorf("HttpStatus: got %v, want %v", httpStatus, tc.httpStatus)
			}
			if tc.errorText != tc.in.Error() {
				t.Errorf("%s: ErrorText: got %v, want %v", tc.name, tc.in.Error(), tc.errorText)
			}
		})
	}
}
