package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency value that tolerates the loose JSON the legacy
// workshop API produced: numbers, numeric strings ("150.00", "1,250"),
// null, or garbage. Anything that cannot be parsed decodes as zero so a
// malformed field never poisons an aggregate.
type Amount struct {
	decimal.Decimal
}

// New creates an Amount from a decimal.
func New(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// FromFloat creates an Amount from a float64.
func FromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

// Zero is the zero currency value.
func Zero() Amount {
	return Amount{Decimal: decimal.Zero}
}

// Parse converts an arbitrary decoded JSON value into an Amount.
// Unparseable input yields zero, never an error.
func Parse(v interface{}) Amount {
	switch val := v.(type) {
	case nil:
		return Zero()
	case float64:
		return FromFloat(val)
	case int:
		return Amount{Decimal: decimal.NewFromInt(int64(val))}
	case int64:
		return Amount{Decimal: decimal.NewFromInt(val)}
	case string:
		return parseString(val)
	case json.Number:
		return parseString(val.String())
	default:
		return Zero()
	}
}

func parseString(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero()
	}
	// Accept user-formatted strings like "1,250.00" or "$ 150".
	neg := strings.HasPrefix(s, "-")
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return Zero()
	}
	if neg {
		clean = "-" + clean
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Zero()
	}
	return Amount{Decimal: d}
}

// UnmarshalJSON decodes numbers or numeric strings, coercing anything
// else to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v interface{}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		*a = Zero()
		return nil
	}
	*a = Parse(v)
	return nil
}

// MarshalJSON emits the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
