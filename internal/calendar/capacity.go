package calendar

import (
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

// DefaultSlotCapacity is the number of groomers working in parallel.
const DefaultSlotCapacity = 2

// Capacity implements domain.CapacityPolicy from configuration: a default per
// service plus overrides keyed by slot start.
type Capacity struct {
	Defaults  map[domain.ServiceType]int
	Overrides map[domain.ServiceType]map[time.Duration]int
	Lanes     int
}

func (c Capacity) SlotCapacity(service domain.ServiceType, slot domain.TimeSlot) int {
	if byStart, ok := c.Overrides[service]; ok {
		if n, ok := byStart[slot.Start]; ok {
			return n
		}
	}
	if n, ok := c.Defaults[service]; ok && n > 0 {
		return n
	}
	return DefaultSlotCapacity
}

func (c Capacity) HotelLanes() int {
	if c.Lanes <= 0 {
		return 1
	}
	return c.Lanes
}
