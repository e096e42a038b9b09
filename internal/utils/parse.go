package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseError reports a form field whose text could not be turned into the
// expected type. Callers fail the request on it; nothing is coerced.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q: %v", e.Value, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseInt parses a base-10 integer form value.
func ParseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Field: field, Value: raw, Err: err}
	}
	return n, nil
}

// ParseDecimal parses a decimal form value such as "12.50".
func ParseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &ParseError{Field: field, Value: raw, Err: err}
	}
	return d, nil
}

// RequireText rejects blank values.
func RequireText(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ParseError{Field: field, Value: raw, Err: fmt.Errorf("must not be empty")}
	}
	return s, nil
}
