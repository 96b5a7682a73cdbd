package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// CivilDate drops the clock part of t. Dates and wall-clock times are kept as
// UTC values so that a slot key never depends on the server time zone.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func FormatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// TimeRange is a half-open [Start, End) range of offsets from midnight.
type TimeRange struct {
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

func (r TimeRange) Valid() bool {
	return r.End > r.Start
}

func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

func (r TimeRange) Within(o TimeRange) bool {
	return r.Start >= o.Start && r.End <= o.End
}

func (r TimeRange) String() string {
	return FormatClock(r.Start) + "-" + FormatClock(r.End)
}

// OperatingWindow is the open period of a day minus its excluded ranges
// (the lunch break).
type OperatingWindow struct {
	Open     time.Duration
	Close    time.Duration
	Excluded []TimeRange
}

func (w OperatingWindow) Range() TimeRange {
	return TimeRange{Start: w.Open, End: w.Close}
}

type TimeSlot struct {
	Date     time.Time     `json:"date"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

func NewTimeSlot(date time.Time, start, duration time.Duration) TimeSlot {
	return TimeSlot{Date: CivilDate(date), Start: start, Duration: duration}
}

func (s TimeSlot) Range() TimeRange {
	return TimeRange{Start: s.Start, End: s.Start + s.Duration}
}

func (s TimeSlot) StartsAt() time.Time {
	return s.Date.Add(s.Start)
}

func (s TimeSlot) Equal(o TimeSlot) bool {
	return s.Date.Equal(o.Date) && s.Start == o.Start && s.Duration == o.Duration
}

// Key renders the slot as "2025-10-25T10:00/60m".
func (s TimeSlot) Key() string {
	return fmt.Sprintf("%sT%s/%dm", s.Date.Format(DateLayout), FormatClock(s.Start), int(s.Duration.Minutes()))
}

func SlotKey(service ServiceType, slot TimeSlot) string {
	return string(service) + "|" + slot.Key()
}

// Cells splits the slot into consecutive grid cells of length step. A slot no
// longer than step, or a non-positive step, yields the slot itself.
func (s TimeSlot) Cells(step time.Duration) []TimeSlot {
	if step <= 0 || s.Duration <= step {
		return []TimeSlot{s}
	}
	cells := make([]TimeSlot, 0, int(s.Duration/step))
	for start := s.Start; start+step <= s.Start+s.Duration; start += step {
		cells = append(cells, TimeSlot{Date: s.Date, Start: start, Duration: step})
	}
	return cells
}

// CellKeys returns the occupancy key of every grid cell the slot covers.
func CellKeys(service ServiceType, slot TimeSlot, step time.Duration) []string {
	cells := slot.Cells(step)
	keys := make([]string, len(cells))
	for i, c := range cells {
		keys[i] = SlotKey(service, c)
	}
	return keys
}

// StayInterval is a half-open [CheckIn, CheckOut) hotel stay.
type StayInterval struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func (i StayInterval) Valid() bool {
	return i.CheckOut.After(i.CheckIn)
}

func (i StayInterval) Overlaps(o StayInterval) bool {
	return i.CheckIn.Before(o.CheckOut) && o.CheckIn.Before(i.CheckOut)
}

// Nights counts calendar days between check-in and check-out, at least one.
func (i StayInterval) Nights() int {
	n := int(CivilDate(i.CheckOut).Sub(CivilDate(i.CheckIn)).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

type Occupancy struct {
	Key      string `json:"key"`
	Count    int    `json:"count"`
	Capacity int    `json:"capacity"`
}

func (o Occupancy) Available() int {
	if o.Count >= o.Capacity {
		return 0
	}
	return o.Capacity - o.Count
}

type SlotAvailability struct {
	Slot      TimeSlot `json:"slot"`
	Occupancy Occupancy `json:"occupancy"`
}

// CapacityPolicy decides how many reservations a slot may hold and how many
// parallel hotel lanes exist.
type CapacityPolicy interface {
	SlotCapacity(service ServiceType, slot TimeSlot) int
	HotelLanes() int
}
