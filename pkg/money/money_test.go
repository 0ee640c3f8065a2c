package money

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{`150`, "150"},
		{`150.75`, "150.75"},
		{`"150.75"`, "150.75"},
		{`"1,250.00"`, "1250"},
		{`"$ 99.90"`, "99.9"},
		{`"-20.50"`, "-20.5"},
		{`null`, "0"},
		{`""`, "0"},
		{`"abc"`, "0"},
		{`true`, "0"},
	}
	for _, tc := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", tc.in, err)
		}
		if a.Decimal.String() != tc.expected {
			t.Fatalf("Unmarshal(%s) expected %s, got %s", tc.in, tc.expected, a.Decimal.String())
		}
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	a := FromFloat(150.75)
	out, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "150.75" {
		t.Fatalf("expected 150.75, got %s", out)
	}
}

func TestParseNeverNaN(t *testing.T) {
	for _, v := range []interface{}{nil, "not a number", struct{}{}, []int{1}} {
		a := Parse(v)
		if !a.Decimal.Equal(Zero().Decimal) {
			t.Fatalf("Parse(%v) expected zero, got %s", v, a.Decimal.String())
		}
	}
}
