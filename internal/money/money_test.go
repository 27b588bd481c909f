package money

import (
	"encoding/json"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "two decimals", in: "12.34", want: 1234},
		{name: "integer", in: "1000", want: 100000},
		{name: "one decimal", in: "5.5", want: 550},
		{name: "rounds down", in: "12.344", want: 1234},
		{name: "rounds up", in: "12.345", want: 1235},
		{name: "bare fraction", in: ".99", want: 99},
		{name: "zero", in: "0", want: 0},
		{name: "zero decimal", in: "0.00", want: 0},
		{name: "whitespace trimmed", in: " 7.25 ", want: 725},
		{name: "negative rejected", in: "-1.00", wantErr: true},
		{name: "plus sign rejected", in: "+1.00", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "letters", in: "12a.00", wantErr: true},
		{name: "two dots", in: "1.2.3", wantErr: true},
		{name: "overflow", in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDecimal(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDecimal(%q) error: %v", tt.in, err)
			}
			if got.Cents != tt.want {
				t.Fatalf("ParseDecimal(%q) = %d cents, want %d", tt.in, got.Cents, tt.want)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{100000, "1000.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-1234, "-12.34"},
		{-5, "-0.05"},
	}
	for _, tt := range tests {
		if got := FromCents(tt.cents).String(); got != tt.want {
			t.Fatalf("FromCents(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(FromCents(1234))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(b) != "12.34" {
		t.Fatalf("Marshal = %s, want 12.34", b)
	}

	var m Money
	if err := json.Unmarshal([]byte("1000"), &m); err != nil {
		t.Fatalf("Unmarshal number error: %v", err)
	}
	if m.Cents != 100000 {
		t.Fatalf("Unmarshal number = %d cents, want 100000", m.Cents)
	}

	if err := json.Unmarshal([]byte(`"12.34"`), &m); err != nil {
		t.Fatalf("Unmarshal string error: %v", err)
	}
	if m.Cents != 1234 {
		t.Fatalf("Unmarshal string = %d cents, want 1234", m.Cents)
	}

	if err := json.Unmarshal([]byte(`"-3.50"`), &m); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	income := FromCents(100000)
	expenses := FromCents(125050)

	balance := income.Sub(expenses)
	if balance.Cents != -25050 {
		t.Fatalf("Sub = %d, want -25050", balance.Cents)
	}
	if !balance.IsNegative() {
		t.Fatalf("expected negative balance")
	}
	if got := income.Add(expenses).Cents; got != 225050 {
		t.Fatalf("Add = %d, want 225050", got)
	}
}
