package errors

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"

	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/foodmap/submissions"
	"codeberg.org/foodmap/client/foodmap/users"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// error categories for classification
const (
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryAuth       = "auth"
	CategoryNotFound   = "not_found"
	CategoryConflict   = "conflict"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// production message per category
var sanitizedMessages = map[string]string{
	CategoryNetwork:    "connection error occurred",
	CategoryValidation: "validation failed",
	CategoryAuth:       "permission denied",
	CategoryNotFound:   "resource not found",
	CategoryConflict:   "resource conflict",
	CategoryTimeout:    "request timed out",
	CategoryUnknown:    "an error occurred",
}

// analyzes an error and returns its category and sanitized message.
// outside production the original message is kept.
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	category := categoryOf(err)

	if os.Getenv("FOODMAP_ENV") != "production" {
		return ErrorInfo{category: category, sanitized: err.Error()}
	}

	return ErrorInfo{category: category, sanitized: sanitizedMessages[category]}
}

func categoryOf(err error) string {
	var (
		validationErrs validator.ValidationErrors
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
		netErr         net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return CategoryTimeout

	case errors.Is(err, users.ErrNotFound),
		errors.Is(err, restaurants.ErrNotFound),
		errors.Is(err, submissions.ErrNotFound):
		return CategoryNotFound

	case errors.Is(err, users.ErrEmailTaken):
		return CategoryConflict

	case errors.As(err, &validationErrs),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.Is(err, io.EOF),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		return CategoryValidation

	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return CategoryAuth

	case errors.As(err, &netErr):
		if netErr.Timeout() {
			return CategoryTimeout
		}
		return CategoryNetwork
	}

	return CategoryUnknown
}
