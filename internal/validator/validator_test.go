package validator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/calendar"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/slotindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saturday = time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)

func groomingRequest(start time.Duration) domain.BookingRequest {
	slot := domain.NewTimeSlot(saturday, start, time.Hour)
	return domain.BookingRequest{
		ServiceType: domain.ServiceGrooming,
		Slot:        &slot,
		CustomerRef: "11999990000",
		Payload: domain.GroomingDetails{
			PetName:   "Thor",
			OwnerName: "Ana",
			WhatsApp:  "11999990000",
			Weight:    domain.Weight10,
			Variant:   domain.GroomingBath,
		},
	}
}

func newValidator() (*Validator, *slotindex.Memory) {
	idx := slotindex.NewMemory()
	return New(calendar.Default(), calendar.Capacity{Lanes: 1}, idx), idx
}

func TestValidator_Validate_Grooming(t *testing.T) {
	v, _ := newValidator()

	assert.NoError(t, v.Validate(context.Background(), groomingRequest(10*time.Hour)))
}

func TestValidator_Validate_MissingFields(t *testing.T) {
	v, _ := newValidator()

	tests := []struct {
		name   string
		mutate func(r *domain.BookingRequest)
		field  string
	}{
		{"no payload", func(r *domain.BookingRequest) { r.Payload = nil }, "payload"},
		{"no customer", func(r *domain.BookingRequest) { r.CustomerRef = " " }, "customer_ref"},
		{"no slot", func(r *domain.BookingRequest) { r.Slot = nil }, "slot"},
		{"no pet name", func(r *domain.BookingRequest) {
			p := r.Payload.(domain.GroomingDetails)
			p.PetName = ""
			r.Payload = p
		}, "pet_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := groomingRequest(10 * time.Hour)
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)

			require.ErrorIs(t, err, domain.ErrMissingField)
			var mf *domain.MissingFieldError
			require.True(t, errors.As(err, &mf))
			assert.Equal(t, tt.field, mf.Field)
		})
	}
}

func TestValidator_Validate_MissingFieldBeforeCalendar(t *testing.T) {
	v, _ := newValidator()
	req := groomingRequest(12 * time.Hour)
	req.CustomerRef = ""

	err := v.Validate(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestValidator_Validate_LunchBreakAtZeroOccupancy(t *testing.T) {
	v, _ := newValidator()

	for _, start := range []time.Duration{12 * time.Hour, 12*time.Hour + 30*time.Minute} {
		req := groomingRequest(start)
		req.Slot.Duration = time.Hour

		err := v.Validate(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrLunchBreakConflict, domain.FormatClock(start))
	}
}

func TestValidator_Validate_CapacityPreCheck(t *testing.T) {
	v, idx := newValidator()
	req := groomingRequest(10 * time.Hour)
	key := domain.SlotKey(req.ServiceType, *req.Slot)

	for i := 0; i < calendar.DefaultSlotCapacity; i++ {
		ok, err := idx.TryReserve(context.Background(), key, calendar.DefaultSlotCapacity)
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.ErrorIs(t, v.Validate(context.Background(), req), domain.ErrCapacityExceeded)
}

func TestValidator_Validate_AddonNotAllowed(t *testing.T) {
	v, _ := newValidator()
	req := groomingRequest(10 * time.Hour)
	p := req.Payload.(domain.GroomingDetails)
	p.Addons = []string{"tosa_tesoura"}
	req.Payload = p

	assert.ErrorIs(t, v.Validate(context.Background(), req), domain.ErrAddonNotAllowed)
}

func TestValidator_Validate_PayloadServiceMismatch(t *testing.T) {
	v, _ := newValidator()
	req := groomingRequest(10 * time.Hour)
	req.ServiceType = domain.ServiceDaycare

	assert.ErrorIs(t, v.Validate(context.Background(), req), domain.ErrValidation)
}

func TestValidator_Validate_Hotel(t *testing.T) {
	v, idx := newValidator()
	stay := domain.StayInterval{
		CheckIn:  time.Date(2025, 10, 22, 10, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 10, 25, 10, 0, 0, 0, time.UTC),
	}
	req := domain.BookingRequest{
		ServiceType: domain.ServiceHotel,
		Stay:        &stay,
		CustomerRef: "11988887777",
		Payload: domain.HotelStay{
			Pet:     domain.PetProfile{Name: "Luna", Breed: "SRD"},
			Tutor:   domain.HotelTutor{Name: "Bruno", Phone: "11988887777"},
			Health:  domain.HotelHealth{EmergencyContactName: "Carla", EmergencyContactPhone: "11977776666"},
			Feeding: domain.HotelFeeding{FoodBrand: "Premier", FoodQuantity: "200g", FeedingFrequency: "2x"},
			Stay:    domain.HotelStayDates{CheckInDate: "2025-10-22", CheckOutDate: "2025-10-25"},
			Consent: domain.HotelConsent{DeclarationAccepted: true, CheckInSignature: "Bruno"},
		},
	}

	require.NoError(t, v.Validate(context.Background(), req))

	ok, err := idx.TryReserveInterval(context.Background(), 1, "r1", stay)
	require.NoError(t, err)
	require.True(t, ok)
	assert.ErrorIs(t, v.Validate(context.Background(), req), domain.ErrNoLaneAvailable)

	inverted := domain.StayInterval{CheckIn: stay.CheckOut, CheckOut: stay.CheckIn}
	req.Stay = &inverted
	assert.ErrorIs(t, v.Validate(context.Background(), req), domain.ErrInvalidStay)
}

func twoHourGrooming(start time.Duration) domain.BookingRequest {
	req := groomingRequest(start)
	p := req.Payload.(domain.GroomingDetails)
	p.Variant = domain.GroomingBathAndGroom
	req.Payload = p
	req.Slot.Duration = p.Variant.Duration()
	return req
}

func TestValidator_Validate_LongServiceHonoursCalendar(t *testing.T) {
	v, _ := newValidator()

	tests := []struct {
		name    string
		start   time.Duration
		wantErr error
	}{
		{"ends at lunch", 10 * time.Hour, nil},
		{"runs into lunch", 11 * time.Hour, domain.ErrLunchBreakConflict},
		{"ends at closing", 16 * time.Hour, nil},
		{"runs past closing", 17 * time.Hour, domain.ErrOutsideOperatingHours},
	}

	short := twoHourGrooming(10 * time.Hour)
	short.Slot.Duration = time.Hour
	assert.ErrorIs(t, v.Validate(context.Background(), short), domain.ErrInvalidSlot)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), twoHourGrooming(tt.start))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidator_Validate_LongServiceNeedsEveryCell(t *testing.T) {
	v, idx := newValidator()
	req := twoHourGrooming(10 * time.Hour)
	second := domain.SlotKey(domain.ServiceGrooming, domain.NewTimeSlot(saturday, 11*time.Hour, time.Hour))

	for i := 0; i < calendar.DefaultSlotCapacity; i++ {
		ok, err := idx.TryReserve(context.Background(), second, calendar.DefaultSlotCapacity)
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.ErrorIs(t, v.Validate(context.Background(), req), domain.ErrCapacityExceeded)
}

func TestValidator_Validate_UnknownEnumsBeforeCapacity(t *testing.T) {
	v, idx := newValidator()
	key := domain.SlotKey(domain.ServiceGrooming, domain.NewTimeSlot(saturday, 10*time.Hour, time.Hour))
	for i := 0; i < calendar.DefaultSlotCapacity; i++ {
		_, err := idx.TryReserve(context.Background(), key, calendar.DefaultSlotCapacity)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		mutate func(p *domain.GroomingDetails)
	}{
		{"weight", func(p *domain.GroomingDetails) { p.Weight = "kg_99" }},
		{"variant", func(p *domain.GroomingDetails) { p.Variant = "spa_day" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := groomingRequest(10 * time.Hour)
			p := req.Payload.(domain.GroomingDetails)
			tt.mutate(&p)
			req.Payload = p

			err := v.Validate(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.NotErrorIs(t, err, domain.ErrCapacityExceeded)
		})
	}
}
