package pricing

import (
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroomingPrice(t *testing.T) {
	tests := []struct {
		name    string
		details domain.GroomingDetails
		want    int
		wantErr error
	}{
		{
			name:    "bath small dog",
			details: domain.GroomingDetails{Weight: domain.WeightUpTo5, Variant: domain.GroomingBath},
			want:    65,
		},
		{
			name:    "grooming only large dog",
			details: domain.GroomingDetails{Weight: domain.WeightOver30, Variant: domain.GroomingOnly},
			want:    300,
		},
		{
			name:    "bath and grooming with addons",
			details: domain.GroomingDetails{Weight: domain.Weight10, Variant: domain.GroomingBathAndGroom, Addons: []string{"hidratacao", "patacure2"}},
			want:    75 + 150 + 25 + 20,
		},
		{
			name:    "scissor cut small dog",
			details: domain.GroomingDetails{Weight: domain.WeightUpTo5, Variant: domain.GroomingBath, Addons: []string{"tosa_tesoura"}},
			want:    65 + 160,
		},
		{
			name:    "scissor cut not offered above 5kg",
			details: domain.GroomingDetails{Weight: domain.Weight15, Variant: domain.GroomingBath, Addons: []string{"tosa_tesoura"}},
			wantErr: domain.ErrAddonNotAllowed,
		},
		{
			name:    "hydration not offered up to 5kg",
			details: domain.GroomingDetails{Weight: domain.WeightUpTo5, Variant: domain.GroomingBath, Addons: []string{"hidratacao"}},
			wantErr: domain.ErrAddonNotAllowed,
		},
		{
			name:    "unknown addon",
			details: domain.GroomingDetails{Weight: domain.Weight20, Variant: domain.GroomingBath, Addons: []string{"massage"}},
			wantErr: domain.ErrAddonNotAllowed,
		},
		{
			name:    "unknown weight",
			details: domain.GroomingDetails{Weight: "kg_99", Variant: domain.GroomingBath},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GroomingPrice(tt.details)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaycarePlanPrice(t *testing.T) {
	price, err := DaycarePlanPrice(domain.DaycarePlan3x)
	require.NoError(t, err)
	assert.Equal(t, 280, price)

	_, err = DaycarePlanPrice("7x_week")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHotelPrice(t *testing.T) {
	stay := domain.StayInterval{
		CheckIn:  time.Date(2025, 10, 26, 10, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 10, 28, 9, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 160, HotelPrice(stay, domain.HotelExtras{}))
	assert.Equal(t, 160+100+50, HotelPrice(stay, domain.HotelExtras{Bath: true, Transport: true}))

	sameDay := domain.StayInterval{CheckIn: stay.CheckIn, CheckOut: stay.CheckIn.Add(4 * time.Hour)}
	assert.Equal(t, HotelDailyRate, HotelPrice(sameDay, domain.HotelExtras{}))
}

func TestQuote(t *testing.T) {
	stay := domain.StayInterval{
		CheckIn:  time.Date(2025, 10, 26, 10, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 10, 29, 10, 0, 0, 0, time.UTC),
	}

	got, err := Quote(domain.BookingRequest{Stay: &stay, Payload: domain.HotelStay{Stay: domain.HotelStayDates{Extras: domain.HotelExtras{Vet: true}}}})
	require.NoError(t, err)
	assert.Equal(t, 3*80+120, got)

	got, err = Quote(domain.BookingRequest{Payload: &domain.DaycareEnrollment{Plan: domain.DaycarePlan{Plan: domain.DaycarePlan5x}}})
	require.NoError(t, err)
	assert.Equal(t, 400, got)

	_, err = Quote(domain.BookingRequest{Payload: domain.HotelStay{}})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}
