package handler

import (
	"errors"

	"prescripto-patient-client/internal/domain/gateway"
)

// userMessage picks the text shown in a notification: the backend's own
// message for application-level failures, the error text otherwise.
func userMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
