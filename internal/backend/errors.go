package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

// GenericErrorMessage is shown when the backend gives no usable message.
const GenericErrorMessage = "unknown error"

// APIError is the uniform shape every failed backend call is translated into.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message returns the human-readable text for any backend failure: the
// backend's own message when present, else the generic fallback.
func Message(err error) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != GenericErrorMessage {
		return apiErr.Message
	}
	return GenericErrorMessage
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := GenericErrorMessage
	var payload dto.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		message = strings.TrimSpace(payload.Message)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
