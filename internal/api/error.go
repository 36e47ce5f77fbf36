package api

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// TransportError is the only error kind surfaced to callers: a network
// failure or a non-success backend status. When the backend supplied a
// human-readable detail string it is carried verbatim.
type TransportError struct {
	// HTTP status code, 0 when the request never reached the backend.
	StatusCode int
	// Detail extracted from the backend's error body, if present.
	Detail string
	// Underlying transport failure, if any.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.StatusCode != 0:
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	case e.Err != nil:
		return e.Err.Error()
	}
	return "backend unreachable"
}

// Unwrap exposes the underlying transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

// AsTransportError unwraps err into a *TransportError if it is one.
func AsTransportError(err error) (*TransportError, bool) {
	transportError := &TransportError{}
	if errors.As(err, &transportError) {
		return transportError, true
	}
	return nil, false
}

// newStatusError builds a TransportError from a non-success response body.
// FastAPI reports errors as {"detail": "..."}; detail may also be a
// structured validation payload, in which case we carry it raw.
func newStatusError(statusCode int, body []byte) *TransportError {
	transportError := &TransportError{StatusCode: statusCode}
	envelope := struct {
		Detail json.RawMessage `json:"detail"`
	}{}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return transportError
	}
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		transportError.Detail = detail
	} else {
		transportError.Detail = string(envelope.Detail)
	}
	return transportError
}
