package calendar

import (
	"sort"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

// ServiceCalendar is the opening schedule of one service. SlotLength is the
// grid granularity; it is ignored for interval-based services.
type ServiceCalendar struct {
	Window     domain.OperatingWindow
	SlotLength time.Duration
}

type Calendar struct {
	services map[domain.ServiceType]ServiceCalendar
	closed   map[time.Weekday]bool
}

func New(services map[domain.ServiceType]ServiceCalendar, closedDays []time.Weekday) *Calendar {
	c := &Calendar{
		services: make(map[domain.ServiceType]ServiceCalendar, len(services)),
		closed:   make(map[time.Weekday]bool, len(closedDays)),
	}
	for st, sc := range services {
		excluded := append([]domain.TimeRange(nil), sc.Window.Excluded...)
		sort.Slice(excluded, func(i, j int) bool { return excluded[i].Start < excluded[j].Start })
		sc.Window.Excluded = excluded
		c.services[st] = sc
	}
	for _, d := range closedDays {
		c.closed[d] = true
	}
	return c
}

// Default mirrors the shop schedule: grooming 09:00-18:00 and daycare visits
// 09:00-17:00 on an hourly grid with a 12:00-13:00 lunch break, hotel
// check-in/out 08:00-20:00, closed on Sundays.
func Default() *Calendar {
	lunch := []domain.TimeRange{{Start: 12 * time.Hour, End: 13 * time.Hour}}
	return New(map[domain.ServiceType]ServiceCalendar{
		domain.ServiceGrooming: {
			Window:     domain.OperatingWindow{Open: 9 * time.Hour, Close: 18 * time.Hour, Excluded: lunch},
			SlotLength: time.Hour,
		},
		domain.ServiceDaycare: {
			Window:     domain.OperatingWindow{Open: 9 * time.Hour, Close: 17 * time.Hour, Excluded: lunch},
			SlotLength: time.Hour,
		},
		domain.ServiceHotel: {
			Window: domain.OperatingWindow{Open: 8 * time.Hour, Close: 20 * time.Hour},
		},
	}, []time.Weekday{time.Sunday})
}

func (c *Calendar) Service(service domain.ServiceType) (ServiceCalendar, bool) {
	sc, ok := c.services[service]
	return sc, ok
}

func (c *Calendar) SlotLength(service domain.ServiceType) time.Duration {
	return c.services[service].SlotLength
}

func (c *Calendar) IsOpenOn(date time.Time) bool {
	return !c.closed[date.Weekday()]
}

// IsWithinOperatingWindow reports whether r lies fully inside the open window
// of service on date. Excluded ranges are not considered here.
func (c *Calendar) IsWithinOperatingWindow(service domain.ServiceType, date time.Time, r domain.TimeRange) bool {
	sc, ok := c.services[service]
	if !ok || !r.Valid() || !c.IsOpenOn(date) {
		return false
	}
	return r.Within(sc.Window.Range())
}

// ExcludedIntervals returns the excluded ranges of the day ordered by start.
func (c *Calendar) ExcludedIntervals(service domain.ServiceType, date time.Time) []domain.TimeRange {
	sc, ok := c.services[service]
	if !ok || !c.IsOpenOn(date) {
		return nil
	}
	return append([]domain.TimeRange(nil), sc.Window.Excluded...)
}

// Check applies the calendar rules to r. Any overlap with an excluded range
// rejects; touching its boundaries does not.
func (c *Calendar) Check(service domain.ServiceType, date time.Time, r domain.TimeRange) error {
	if !c.IsWithinOperatingWindow(service, date, r) {
		return domain.ErrOutsideOperatingHours
	}
	for _, ex := range c.ExcludedIntervals(service, date) {
		if r.Overlaps(ex) {
			return domain.ErrLunchBreakConflict
		}
	}
	return nil
}

// CheckSlot runs Check and then verifies the slot sits on the service grid:
// it starts on a grid boundary and lasts a whole number of cells.
func (c *Calendar) CheckSlot(service domain.ServiceType, slot domain.TimeSlot) error {
	if err := c.Check(service, slot.Date, slot.Range()); err != nil {
		return err
	}
	sc := c.services[service]
	if sc.SlotLength <= 0 {
		return domain.ErrInvalidSlot
	}
	if slot.Duration%sc.SlotLength != 0 || (slot.Start-sc.Window.Open)%sc.SlotLength != 0 {
		return domain.ErrInvalidSlot
	}
	return nil
}

// CheckStay validates a hotel stay: check-in before check-out, both clock
// times inside the hotel window. Closed weekdays do not apply to stays.
func (c *Calendar) CheckStay(stay domain.StayInterval) error {
	if !stay.Valid() {
		return domain.ErrInvalidStay
	}
	sc, ok := c.services[domain.ServiceHotel]
	if !ok {
		return domain.ErrOutsideOperatingHours
	}
	for _, t := range []time.Time{stay.CheckIn, stay.CheckOut} {
		clock := t.Sub(domain.CivilDate(t))
		if clock < sc.Window.Open || clock > sc.Window.Close {
			return domain.ErrOutsideOperatingHours
		}
	}
	return nil
}

// Slots lists every schedulable slot of the day.
func (c *Calendar) Slots(service domain.ServiceType, date time.Time) []domain.TimeSlot {
	sc, ok := c.services[service]
	if !ok || sc.SlotLength <= 0 || !c.IsOpenOn(date) {
		return nil
	}

	var slots []domain.TimeSlot
	for start := sc.Window.Open; start+sc.SlotLength <= sc.Window.Close; start += sc.SlotLength {
		slot := domain.NewTimeSlot(date, start, sc.SlotLength)
		if c.Check(service, slot.Date, slot.Range()) == nil {
			slots = append(slots, slot)
		}
	}
	return slots
}
