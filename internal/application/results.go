package application

import (
	"errors"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

// Result is the uniform outcome shape every session and cart operation
// reports. Raw errors never cross this layer's boundary; callers only
// see a human-readable message.
type Result struct {
	Success bool
	Error   string
}

type CheckoutResult struct {
	Success bool
	OrderID int64
	Error   string
}

func okResult() Result {
	return Result{Success: true}
}

func failureResult(message string) Result {
	return Result{Success: false, Error: message}
}

// ErrorMessage normalizes any error from the layers below into the
// message a user sees.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var requestErr *domain.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Detail != "" {
			return requestErr.Detail
		}
		return "Something went wrong. Please try again."
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Please sign in first."
	case errors.Is(err, domain.ErrAuthExpired):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, domain.ErrNotFound):
		return "That wasn't found."
	default:
		return "Something went wrong. Please try again."
	}
}
