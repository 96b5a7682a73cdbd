package domain

import (
	"encoding/json"
	"time"
)

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// ActiveStatuses hold capacity. A completed reservation keeps its slot.
var ActiveStatuses = []ReservationStatus{ReservationConfirmed, ReservationCompleted}

type Reservation struct {
	ID          string            `json:"id"`
	ServiceType ServiceType       `json:"service_type"`
	Slot        *TimeSlot         `json:"slot,omitempty"`
	Stay        *StayInterval     `json:"stay,omitempty"`
	CustomerRef string            `json:"customer_ref"`
	Status      ReservationStatus `json:"status"`
	Payload     json.RawMessage   `json:"payload,omitempty"`
	TotalPrice  int               `json:"total_price"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
}

func (r *Reservation) Active() bool {
	for _, s := range ActiveStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

type ReservationFilter struct {
	ServiceType ServiceType
	Date        *time.Time
	Status      ReservationStatus
	CustomerRef string
	Limit       int
}

// OccupancyState is what a slot index holds: counters per slot key and the
// set of hotel stays per reservation id.
type OccupancyState struct {
	Slots map[string]int
	Stays map[string]StayInterval
}

func NewOccupancyState() OccupancyState {
	return OccupancyState{
		Slots: make(map[string]int),
		Stays: make(map[string]StayInterval),
	}
}

// BuildOccupancyState derives the expected index state from the reservation
// log. A slot longer than the grid of its service counts once in every cell it
// covers; a nil grid keeps slots whole.
func BuildOccupancyState(reservations []*Reservation, grid func(ServiceType) time.Duration) OccupancyState {
	st := NewOccupancyState()
	for _, r := range reservations {
		if !r.Active() {
			continue
		}
		switch {
		case r.Stay != nil:
			st.Stays[r.ID] = *r.Stay
		case r.Slot != nil:
			var step time.Duration
			if grid != nil {
				step = grid(r.ServiceType)
			}
			for _, key := range CellKeys(r.ServiceType, *r.Slot, step) {
				st.Slots[key]++
			}
		}
	}
	return st
}

// Diff counts the slot keys and stays that differ between two states.
func (s OccupancyState) Diff(other OccupancyState) int {
	drift := 0
	for k, v := range s.Slots {
		if other.Slots[k] != v {
			drift++
		}
	}
	for k, v := range other.Slots {
		if _, ok := s.Slots[k]; !ok && v != 0 {
			drift++
		}
	}
	for id, stay := range s.Stays {
		o, ok := other.Stays[id]
		if !ok || !o.CheckIn.Equal(stay.CheckIn) || !o.CheckOut.Equal(stay.CheckOut) {
			drift++
		}
	}
	for id := range other.Stays {
		if _, ok := s.Stays[id]; !ok {
			drift++
		}
	}
	return drift
}
