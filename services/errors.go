package services

import (
	"errors"
	"fmt"
	"math"

	"table-order/repositories"
)

var (
	ErrNotFound           = repositories.ErrNotFound
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidQRCode      = errors.New("invalid or inactive table QR code")
	ErrDuplicate          = repositories.ErrDuplicate
	ErrUploadUnavailable  = errors.New("image upload is not configured")
)

const (
	// MaxPrice is the largest value a NUMERIC(10,2) price or total column holds.
	MaxPrice = 99_999_999.99
	// MaxItemQuantity caps a single order line.
	MaxItemQuantity = 1000
)

// roundPrice rounds to cents, the precision prices are stored with.
func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidationError reports a request that is well-formed JSON but violates a domain rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
