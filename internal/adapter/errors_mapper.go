package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-safe-share/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
	http.StatusGatewayTimeout:        ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx blob server response into a sentinel error
// carrying the server's message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body(), status)
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	return fmt.Errorf("http %d: %s", status, detail)
}

// errorDetail prefers the "error" field of a JSON body and falls back to the
// raw body, then to the status text.
func errorDetail(body []byte, status int) string {
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	if detail := strings.TrimSpace(string(body)); detail != "" {
		return detail
	}
	return http.StatusText(status)
}
