package api

import "encoding/json"

// Error is the normalized failure for every service call: the server's
// message field when one was present, otherwise a fixed per-operation
// fallback. StatusCode is zero for transport-level failures.
type Error struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

type errorBody struct {
	Message string `json:"message"`
	Reason  string `json:"error"`
}

func newError(status int, body []byte, fallback string) *Error {
	msg := fallback

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			msg = parsed.Message
		} else if parsed.Reason != "" {
			msg = parsed.Reason
		}
	}

	return &Error{StatusCode: status, Message: msg}
}
