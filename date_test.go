package trackit

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-05", NewDate(2024, time.January, 5), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false}, // lenient single digits
		{" 2024-01-05 ", NewDate(2024, time.January, 5), false},
		{"05/01/2024", Date{}, true},
		{"not a date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got.Compare(tc.want) != 0 {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateOf_PreservesUnparsableText(t *testing.T) {
	d := DateOf("sometime in June")
	if d.IsValid() {
		t.Fatal("unparsable date reported valid")
	}
	if got := d.String(); got != "sometime in June" {
		t.Errorf("String() = %q, want the original text", got)
	}
}

func TestDate_Compare(t *testing.T) {
	early := DateOf("2020-01-01")
	late := DateOf("2024-01-01")
	bad := DateOf("garbage")
	worse := DateOf("other garbage")

	if early.Compare(late) >= 0 {
		t.Error("2020 not before 2024")
	}
	if late.Compare(early) <= 0 {
		t.Error("2024 not after 2020")
	}
	if early.Compare(early) != 0 {
		t.Error("date not equal to itself")
	}
	// Invalid dates form one equivalence class ordered after all valid dates.
	if late.Compare(bad) >= 0 {
		t.Error("valid date not before invalid date")
	}
	if bad.Compare(late) <= 0 {
		t.Error("invalid date not after valid date")
	}
	if bad.Compare(worse) != 0 {
		t.Error("two invalid dates not equal")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	for _, text := range []string{"2024-02-29", "not a date"} {
		d := DateOf(text)
		data, err := d.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%q): %v", text, err)
		}
		var back Date
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", data, err)
		}
		if back.String() != d.String() {
			t.Errorf("round trip of %q gave %q", d, back)
		}
	}
}
