package myerrors

import (
	"errors"
	"fmt"
)

// Kind classifies failures of a quote call. The orchestrator collapses all of them into one failed state.
type Kind string

const (
	KindUnknown  Kind = "unknown"
	KindConfig   Kind = "config"
	KindNetwork  Kind = "network"
	KindServer   Kind = "server"
	KindDecoding Kind = "decoding"
)

type kindCoder interface {
	error
	GetKind() Kind
	GetHTTPErrorCode() int
}

type sdkError struct {
	kind     Kind
	httpCode int
	err      error
}

func (e sdkError) Error() string {
	if e.kind == KindServer {
		return fmt.Sprintf("%s error: status: %d, err: %s", e.kind, e.httpCode, e.err.Error())
	}
	return fmt.Sprintf("%s error: %s", e.kind, e.err.Error())
}

func (e sdkError) Unwrap() error {
	return e.err
}

func (e sdkError) GetKind() Kind {
	return e.kind
}

func (e sdkError) GetHTTPErrorCode() int {
	return e.httpCode
}

func newError(kind Kind, httpCode int, err error) *sdkError {
	return &sdkError{
		kind:     kind,
		httpCode: httpCode,
		err:      err,
	}
}

func NewConfigError(err error) *sdkError {
	return newError(KindConfig, 0, err)
}

func NewConfigErrorf(format string, args ...any) *sdkError {
	return NewConfigError(fmt.Errorf(format, args...))
}

func NewNetworkError(err error) *sdkError {
	return newError(KindNetwork, 0, err)
}

func NewServerError(httpCode int, err error) *sdkError {
	return newError(KindServer, httpCode, err)
}

func NewDecodingError(err error) *sdkError {
	return newError(KindDecoding, 0, err)
}

func GetKind(err error) Kind {
	var coder kindCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetKind()
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetHTTPStatus returns the status the quote service answered with, or 0 when the call never got an answer.
func GetHTTPStatus(err error) int {
	var coder kindCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return 0
}
