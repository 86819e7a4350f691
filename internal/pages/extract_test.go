package pages

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		valid bool
	}{
		{name: "plain price", text: "$29.99", want: 29.99, valid: true},
		{name: "surrounding whitespace", text: "  $9.99\n", want: 9.99, valid: true},
		{name: "integer price", text: "$15", want: 15, valid: true},
		{name: "no currency symbol", text: "29.99", valid: false},
		{name: "empty text", text: "", valid: false},
		{name: "garbage after symbol", text: "$abc", valid: false},
		{name: "symbol only", text: "$", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parsePrice(tt.text)
			if ok != tt.valid {
				t.Fatalf("parsePrice(%q) valid = %v, want %v", tt.text, ok, tt.valid)
			}
			if tt.valid && got != tt.want {
				t.Errorf("parsePrice(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAmountAfterCurrency(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{name: "subtotal label", label: "Item total: $39.98", want: 39.98},
		{name: "tax label", label: "Tax: $3.20", want: 3.20},
		{name: "total label", label: "Total: $43.18", want: 43.18},
		{name: "no currency symbol degrades to zero", label: "Item total: 39.98", want: 0},
		{name: "unparsable tail degrades to zero", label: "Total: $--", want: 0},
		{name: "empty label", label: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := amountAfterCurrency(tt.label); got != tt.want {
				t.Errorf("amountAfterCurrency(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
