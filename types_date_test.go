package mmf

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-02-29", NewDate(2024, time.February, 29), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{NewDate(2024, time.January, 1), 31},
		{NewDate(2024, time.February, 1), 29}, // leap year
		{NewDate(2023, time.February, 15), 28},
		{NewDate(2100, time.February, 1), 28}, // century, not a leap year
		{NewDate(2000, time.February, 1), 29}, // 400-year rule
		{NewDate(2024, time.April, 30), 30},
		{NewDate(2024, time.December, 31), 31},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := tt.date.DaysIn(); got != tt.want {
				t.Errorf("DaysIn(%s) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestAddMonths_Clamping(t *testing.T) {
	tests := []struct {
		name   string
		date   Date
		months int
		want   Date
	}{
		{"Jan 31 + 1 month, non-leap", NewDate(2023, time.January, 31), 1, NewDate(2023, time.February, 28)},
		{"Jan 31 + 1 month, leap", NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 29)},
		{"Mar 31 + 1 month", NewDate(2024, time.March, 31), 1, NewDate(2024, time.April, 30)},
		{"Jan 15 + 1 month", NewDate(2024, time.January, 15), 1, NewDate(2024, time.February, 15)},
		{"Dec 31 + 1 month crosses year", NewDate(2023, time.December, 31), 1, NewDate(2024, time.January, 31)},
		{"Nov 30 + 3 months", NewDate(2023, time.November, 30), 3, NewDate(2024, time.February, 29)},
		{"Jan 31 + 12 months", NewDate(2024, time.January, 31), 12, NewDate(2025, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.AddMonths(tt.months); got != tt.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.date, tt.months, got, tt.want)
			}
		})
	}
}

// TestAddMonths_Sequential checks the engine's month-by-month advancement:
// the clamp applies at every step, so Jan 31 reaches Mar 28, not Mar 31.
func TestAddMonths_Sequential(t *testing.T) {
	d := NewDate(2023, time.January, 31)
	d = d.AddMonths(1)
	if want := NewDate(2023, time.February, 28); d != want {
		t.Fatalf("first advance = %s, want %s", d, want)
	}
	d = d.AddMonths(1)
	if want := NewDate(2023, time.March, 28); d != want {
		t.Fatalf("second advance = %s, want %s", d, want)
	}
}

func TestDate_Label(t *testing.T) {
	d := NewDate(2024, time.January, 17)
	if got := d.Label(); got != "January 2024" {
		t.Errorf("Label() = %q, want %q", got, "January 2024")
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{"Zero Date from empty string", `""`, Date{}, false},
		{"Non-Zero Date", `"2024-05-21"`, NewDate(2024, 5, 21), false},
		{"Invalid Date", `"not-a-date"`, Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.expected)
			}
		})
	}

	got, err := json.Marshal(NewDate(2024, 5, 21))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(got) != `"2024-05-21"` {
		t.Errorf("json.Marshal() = %s, want %q", got, `"2024-05-21"`)
	}
}
