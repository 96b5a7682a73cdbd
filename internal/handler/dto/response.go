package dto

import (
	"encoding/json"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/workflow"
)

type ReservationResponse struct {
	ID          string          `json:"id"`
	ServiceType string          `json:"service_type"`
	Date        string          `json:"date,omitempty"`
	Time        string          `json:"time,omitempty"`
	CheckIn     string          `json:"check_in,omitempty"`
	CheckOut    string          `json:"check_out,omitempty"`
	CustomerRef string          `json:"customer_ref"`
	Status      string          `json:"status"`
	TotalPrice  int             `json:"total_price"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   string          `json:"created_at"`
	CancelledAt string          `json:"cancelled_at,omitempty"`
}

type SlotResponse struct {
	Time      string `json:"time"`
	End       string `json:"end"`
	Booked    int    `json:"booked"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
}

type AvailabilityResponse struct {
	Service string         `json:"service"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

type StepResponse struct {
	Validation workflow.ValidationResult `json:"validation"`
	Workflow   workflow.Snapshot         `json:"workflow"`
}

type SubmitResponse struct {
	Reservation *ReservationResponse `json:"reservation,omitempty"`
	Workflow    workflow.Snapshot    `json:"workflow"`
	Error       *ErrorResponse       `json:"error,omitempty"`
}

type CountResponse struct {
	Entries int `json:"entries"`
}

// ErrorResponse carries a stable reason code next to the message; Field is
// set for missing-field rejections.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:          r.ID,
		ServiceType: string(r.ServiceType),
		CustomerRef: r.CustomerRef,
		Status:      string(r.Status),
		TotalPrice:  r.TotalPrice,
		Details:     r.Payload,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.Slot != nil {
		resp.Date = r.Slot.Date.Format(domain.DateLayout)
		resp.Time = domain.FormatClock(r.Slot.Start)
	}
	if r.Stay != nil {
		resp.CheckIn = r.Stay.CheckIn.Format(time.RFC3339)
		resp.CheckOut = r.Stay.CheckOut.Format(time.RFC3339)
	}
	if r.CancelledAt != nil {
		resp.CancelledAt = r.CancelledAt.Format(time.RFC3339)
	}
	return resp
}

func ToAvailabilityResponse(service domain.ServiceType, date time.Time, slots []domain.SlotAvailability) AvailabilityResponse {
	resp := AvailabilityResponse{
		Service: string(service),
		Date:    date.Format(domain.DateLayout),
		Slots:   make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		r := s.Slot.Range()
		resp.Slots = append(resp.Slots, SlotResponse{
			Time:      domain.FormatClock(r.Start),
			End:       domain.FormatClock(r.End),
			Booked:    s.Occupancy.Count,
			Capacity:  s.Occupancy.Capacity,
			Available: s.Occupancy.Available(),
		})
	}
	return resp
}
