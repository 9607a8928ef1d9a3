package resumeclient

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// RequestError describes a failed generate or health call.
// Status is 0 when no response was received.
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("resume request failed: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("resume request failed: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("resume request failed: status %d", e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// serverMessage pulls the "message" field out of a JSON error body.
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	msg := gjson.GetBytes(body, "message")
	if msg.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(msg.String())
}
