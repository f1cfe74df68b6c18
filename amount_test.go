package trackit

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want Amount
	}{
		{"12.50", A(12.5)},
		{"0", A(0)},
		{" 4.5 ", A(4.5)},
		{"1000", A(1000)},
		{"", A(0)},         // unparsable coerces to zero
		{"twelve", A(0)},   // unparsable coerces to zero
		{"12,50", A(0)},    // comma decimals are not accepted
		{"-3", A(0)},       // negative normalizes to zero
		{"1e3", A(1000)},   // scientific notation is fine for decimal
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseAmount(tc.in); !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestAmount_NaturalDecimalString(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"12.50", "12.5"},
		{"4", "4"},
		{"0.10", "0.1"},
	}
	for _, tc := range testCases {
		if got := ParseAmount(tc.in).String(); got != tc.want {
			t.Errorf("ParseAmount(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmount_BalanceMayBeNegative(t *testing.T) {
	balance := A(100).Sub(A(900))
	if !balance.IsNegative() {
		t.Errorf("balance = %s, want negative", balance)
	}
	if balance.String() != "-800" {
		t.Errorf("balance = %s, want -800", balance)
	}
}
