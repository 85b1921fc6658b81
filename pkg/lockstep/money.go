package lockstep

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a currency amount. It is sent as an unquoted JSON number and accepts
// either a number or a numeric string when decoding.
type Money struct {
	decimal.Decimal
}

// NewMoney returns a Money from a float, for tests and literals.
func NewMoney(f float64) Money {
	return Money{Decimal: decimal.NewFromFloat(f)}
}

// ParseMoney parses a decimal string such as "100.25".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return Money{Decimal: d}, nil
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Money) MarshalYAML() (interface{}, error) {
	return m.Decimal.String(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string

		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}

		data = []byte(s)
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("decoding amount: %w", err)
	}

	m.Decimal = d

	return nil
}
