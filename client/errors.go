package client

import (
	"encoding/json"
	"fmt"
)

// ErrorKind tags the failure channel so callers can tell transport trouble
// from a backend rejection without parsing message strings.
type ErrorKind string

const (
	KindTransport ErrorKind = "TRANSPORT"
	KindStatus    ErrorKind = "STATUS"
	KindDecode    ErrorKind = "DECODE"
)

// APIError is the single error shape raised by the client. Message is always
// human-readable and safe to show on a page verbatim.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newTransportError(err error) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

func newDecodeError(err error) *APIError {
	return &APIError{
		Kind:    KindDecode,
		Message: fmt.Sprintf("invalid response from server: %v", err),
		Err:     err,
	}
}

// errorBody is the backend's error envelope. Some endpoints fill "error",
// older ones "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// interpretError turns a non-2xx response into an APIError. Priority order is
// fixed: the body's "error" field, then its "message" field, then a message
// synthesized from the status code when the body is empty or unparsable.
func interpretError(status int, body []byte) *APIError {
	e := &APIError{Kind: KindStatus, Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		switch {
		case eb.Error != "":
			e.Message = eb.Error
		case eb.Message != "":
			e.Message = eb.Message
		}
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("unexpected status %d", status)
	}
	return e
}
