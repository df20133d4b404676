package domain

import (
	"testing"
	"time"
)

func TestSlotOf_TruncatesToHour(t *testing.T) {
	in := time.Date(2020, 5, 10, 13, 42, 17, 999, time.UTC)
	got := SlotOf(in)
	want := time.Date(2020, 5, 10, 13, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("SlotOf = %v, want %v", got, want)
	}
}

func TestSlotOf_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2020, 5, 10, 13, 30, 0, 0, loc)
	got := SlotOf(in)
	if got.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", got.Location())
	}
	if got.Hour() != 10 {
		t.Fatalf("hour = %d, want 10", got.Hour())
	}
}

func TestWithinBusinessHours(t *testing.T) {
	cases := []struct {
		hour int
		want bool
	}{
		{7, false},
		{8, true},
		{12, true},
		{17, true},
		{18, false},
		{0, false},
		{23, false},
	}
	for _, tc := range cases {
		slot := time.Date(2020, 5, 10, tc.hour, 0, 0, 0, time.UTC)
		if got := WithinBusinessHours(slot); got != tc.want {
			t.Errorf("WithinBusinessHours(hour=%d) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2020, time.February, 29},
		{2021, time.February, 28},
		{2020, time.June, 30},
		{2020, time.December, 31},
	}
	for _, tc := range cases {
		if got := DaysIn(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2020, 5, 20, 0, 0, 0, 0, time.UTC)
	b := time.Date(2020, 5, 20, 23, 59, 59, 0, time.UTC)
	c := time.Date(2020, 5, 21, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatalf("expected %v and %v to be the same day", a, b)
	}
	if SameDay(a, c) {
		t.Fatalf("expected %v and %v to be different days", a, c)
	}
}
