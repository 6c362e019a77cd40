// Package domain defines domain-level errors for the forex feature.
package domain

import "errors"

var (
	// ErrAPIKeyMissing indicates that no exchange-rate API key has been configured.
	ErrAPIKeyMissing = errors.New("exchange rate api key is not configured")

	// ErrUnsupportedPair indicates that the provider rejected the currency pair.
	ErrUnsupportedPair = errors.New("unsupported currency pair")
)
