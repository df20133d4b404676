package domain

import "time"

// Business hours: bookable hour slots run from 08:00 through 17:00 inclusive.
const (
	OpeningHour = 8
	ClosingHour = 17

	// SlotsPerDay is the number of bookable hour slots in one business day.
	SlotsPerDay = ClosingHour - OpeningHour + 1
)

// AvailabilitySlot reports whether a single hour of a provider's day is
// still bookable. It is derived on every query, never stored.
type AvailabilitySlot struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// AvailabilityDay reports whether a day of a provider's month has at least
// one open slot.
type AvailabilityDay struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

// SlotOf truncates t to the top of its hour. All appointment dates pass
// through here before validation or storage.
func SlotOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
}

// WithinBusinessHours reports whether the slot's hour falls inside the
// operating window.
func WithinBusinessHours(slot time.Time) bool {
	h := slot.Hour()
	return h >= OpeningHour && h <= ClosingHour
}

// DaysIn returns the number of calendar days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
