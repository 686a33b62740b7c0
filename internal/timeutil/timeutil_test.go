package timeutil

import (
	"testing"
	"time"
)

func TestCombineWithDate(t *testing.T) {
	ref := time.Date(2026, 8, 21, 15, 45, 12, 0, time.UTC)

	got, err := CombineWithDate("07:30", ref)
	if err != nil {
		t.Fatalf("CombineWithDate failed: %v", err)
	}

	want := time.Date(2026, 8, 21, 7, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCombineWithDate_BadTime(t *testing.T) {
	if _, err := CombineWithDate("noon", time.Now()); err == nil {
		t.Error("expected error for unparseable time")
	}
}

func TestSameDay_TimezoneBoundary(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	// 23:30 and 00:30 the next day in Tokyo straddle local midnight even
	// though only an hour apart
	a := time.Date(2026, 8, 21, 23, 30, 0, 0, tokyo)
	b := a.Add(time.Hour)

	if SameDay(a, b, tokyo) {
		t.Error("expected different calendar days across Tokyo midnight")
	}
	// In UTC those same instants are 14:30 and 15:30 on the 21st
	if !SameDay(a, b, time.UTC) {
		t.Error("expected same UTC calendar day")
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		value string
		time  bool
		date  bool
	}{
		{"07:30", true, false},
		{"23:59", true, false},
		{"24:00", false, false},
		{"2026-08-21", false, true},
		{"21/08/2026", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := ValidateTimeFormat(tt.value); got != tt.time {
			t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tt.value, got, tt.time)
		}
		if got := ValidateDateFormat(tt.value); got != tt.date {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.value, got, tt.date)
		}
	}
}

func TestToday_InvalidTimezone(t *testing.T) {
	if _, err := Today("Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Minute, "1h 30m"},
		{60 * time.Minute, "1h 0m"},
		{45 * time.Minute, "45m"},
		{30 * time.Second, "0m"},
		{-5 * time.Minute, "0m"},
	}

	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
