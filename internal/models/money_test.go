package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRoundsHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"7.505", "7.51"},
		{"7.504", "7.50"},
		{"10", "10.00"},
		{"0.005", "0.01"},
		{"-1.005", "-1.01"},
	}
	for _, tc := range cases {
		m, err := NewMoneyFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.in, err)
		}
		if got := m.String(); got != tc.want {
			t.Errorf("NewMoneyFromString(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoneyJSONFixedTwoDecimals(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromInt(45))
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"45.00"` {
		t.Errorf("marshal = %s, want \"45.00\"", b)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"12.345"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.String() != "12.35" {
		t.Errorf("unmarshal string = %s, want 12.35", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`19.9`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "19.90" {
		t.Errorf("unmarshal number = %s, want 19.90", fromNumber.String())
	}
}
