// Package domain defines domain-level errors for the quote feature.
package domain

import "errors"

var (
	// ErrSymbolNotFound indicates that the market-data provider returned no bars for the symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrEmptySymbol indicates that no symbol was supplied.
	ErrEmptySymbol = errors.New("symbol is required")
)
