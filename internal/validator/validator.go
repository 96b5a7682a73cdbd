package validator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/pricing"
)

type calendarChecker interface {
	CheckSlot(service domain.ServiceType, slot domain.TimeSlot) error
	CheckStay(stay domain.StayInterval) error
	SlotLength(service domain.ServiceType) time.Duration
}

type occupancyReader interface {
	CurrentOccupancy(ctx context.Context, key string) (int, error)
	IntervalOccupancy(ctx context.Context, stay domain.StayInterval) (int, error)
}

// Validator applies the booking rules in a fixed order and returns the first
// rejection as is. It never changes occupancy.
type Validator struct {
	calendar calendarChecker
	capacity domain.CapacityPolicy
	index    occupancyReader
}

func New(calendar calendarChecker, capacity domain.CapacityPolicy, index occupancyReader) *Validator {
	return &Validator{
		calendar: calendar,
		capacity: capacity,
		index:    index,
	}
}

func (v *Validator) Validate(ctx context.Context, req domain.BookingRequest) error {
	if err := v.checkRequired(req); err != nil {
		return err
	}
	if err := v.checkCalendar(req); err != nil {
		return err
	}
	return v.checkCapacity(ctx, req)
}

func (v *Validator) checkRequired(req domain.BookingRequest) error {
	if _, err := domain.ParseServiceType(string(req.ServiceType)); err != nil {
		return err
	}
	if req.Payload == nil {
		return domain.MissingField("payload")
	}
	if req.Payload.Service() != req.ServiceType {
		return fmt.Errorf("%w: %s payload sent for %s booking", domain.ErrValidation, req.Payload.Service(), req.ServiceType)
	}
	if strings.TrimSpace(req.CustomerRef) == "" {
		return domain.MissingField("customer_ref")
	}
	if field := req.Payload.MissingField(); field != "" {
		return domain.MissingField(field)
	}

	if req.ServiceType.IntervalBased() {
		if req.Stay == nil {
			return domain.MissingField("stay")
		}
	} else if req.Slot == nil {
		return domain.MissingField("slot")
	}

	// weight class, variant, addons and plan must all be on the price list
	if _, err := pricing.Quote(req); err != nil {
		return err
	}
	return nil
}

func (v *Validator) checkCalendar(req domain.BookingRequest) error {
	if req.ServiceType.IntervalBased() {
		return v.calendar.CheckStay(*req.Stay)
	}
	if want := serviceDuration(req.Payload); want > 0 && req.Slot.Duration != want {
		return fmt.Errorf("%w: service lasts %s, slot %s", domain.ErrInvalidSlot, want, req.Slot.Duration)
	}
	return v.calendar.CheckSlot(req.ServiceType, *req.Slot)
}

// serviceDuration is the length the payload itself asks for, zero when the
// grid length applies.
func serviceDuration(p domain.Payload) time.Duration {
	switch g := p.(type) {
	case domain.GroomingDetails:
		return g.Variant.Duration()
	case *domain.GroomingDetails:
		return g.Variant.Duration()
	}
	return 0
}

// checkCapacity is advisory: the engine still reserves atomically afterwards.
func (v *Validator) checkCapacity(ctx context.Context, req domain.BookingRequest) error {
	if req.ServiceType.IntervalBased() {
		peak, err := v.index.IntervalOccupancy(ctx, *req.Stay)
		if err != nil {
			return fmt.Errorf("read interval occupancy: %w", err)
		}
		if peak >= v.capacity.HotelLanes() {
			return domain.ErrNoLaneAvailable
		}
		return nil
	}

	for _, cell := range req.Slot.Cells(v.calendar.SlotLength(req.ServiceType)) {
		key := domain.SlotKey(req.ServiceType, cell)
		n, err := v.index.CurrentOccupancy(ctx, key)
		if err != nil {
			return fmt.Errorf("read occupancy %s: %w", key, err)
		}
		if n >= v.capacity.SlotCapacity(req.ServiceType, cell) {
			return domain.ErrCapacityExceeded
		}
	}
	return nil
}
