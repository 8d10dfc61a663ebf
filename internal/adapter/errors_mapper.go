package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the daemon's status codes onto adapter sentinels. 422 is
// what clientd answers for malformed invite codes and spent notes.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorBody(resp.Body())
	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, msg)
}

// errorBody extracts the daemon's message. The daemon answers either with
// plain text or with {"error": "..."}.
func errorBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(body, "{") {
		return body
	}

	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal([]byte(body), &payload) != nil || payload.Error == "" {
		return body
	}
	return payload.Error
}
