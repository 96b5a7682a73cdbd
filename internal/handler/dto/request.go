package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

// GroomingBookingRequest is the single-screen grooming form. Pet and owner
// fields are flattened next to the requested slot.
type GroomingBookingRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
	domain.GroomingDetails
}

// ToDomain converts the form into a booking request. The slot lasts as long as
// the chosen variant; an unknown variant falls back to slotLength and is
// rejected by the validator. Presence of the pet and owner fields is left to
// the validator so that the caller gets the name of the missing field.
func (r GroomingBookingRequest) ToDomain(slotLength time.Duration) (domain.BookingRequest, error) {
	if strings.TrimSpace(r.Date) == "" {
		return domain.BookingRequest{}, domain.MissingField("date")
	}
	if strings.TrimSpace(r.Time) == "" {
		return domain.BookingRequest{}, domain.MissingField("time")
	}

	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.BookingRequest{}, err
	}
	start, err := domain.ParseClock(r.Time)
	if err != nil {
		return domain.BookingRequest{}, err
	}

	duration := r.Variant.Duration()
	if duration == 0 {
		duration = slotLength
	}

	slot := domain.NewTimeSlot(date, start, duration)
	return domain.BookingRequest{
		ServiceType: domain.ServiceGrooming,
		Slot:        &slot,
		CustomerRef: r.WhatsApp,
		Payload:     r.GroomingDetails,
	}, nil
}

type ReservationQuery struct {
	Service     string `form:"service"`
	Date        string `form:"date"`
	Status      string `form:"status"`
	CustomerRef string `form:"customer_ref"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

func (q ReservationQuery) ToFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		Status:      domain.ReservationStatus(q.Status),
		CustomerRef: q.CustomerRef,
		Limit:       q.Limit,
	}

	if q.Service != "" {
		st, err := domain.ParseServiceType(q.Service)
		if err != nil {
			return filter, err
		}
		filter.ServiceType = st
	}
	if q.Date != "" {
		d, err := domain.ParseDate(q.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &d
	}
	switch filter.Status {
	case "", domain.ReservationConfirmed, domain.ReservationCancelled, domain.ReservationCompleted:
	default:
		return filter, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, q.Status)
	}
	return filter, nil
}

type AvailabilityQuery struct {
	Service string `form:"service"`
	Date    string `form:"date"`
}

type StartWorkflowRequest struct {
	Kind string `json:"kind" binding:"required"`
}
