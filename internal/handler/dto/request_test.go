package dto

import (
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroomingBookingRequest_ToDomain_SlotFollowsVariant(t *testing.T) {
	tests := []struct {
		variant domain.GroomingVariant
		want    time.Duration
	}{
		{domain.GroomingBath, time.Hour},
		{domain.GroomingBathAndGroom, 2 * time.Hour},
		{domain.GroomingOnly, 2 * time.Hour},
		{"unknown", time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			req := GroomingBookingRequest{
				Date:            "2025-10-25",
				Time:            "11:00",
				GroomingDetails: domain.GroomingDetails{WhatsApp: "11999990000", Variant: tt.variant},
			}

			got, err := req.ToDomain(time.Hour)

			require.NoError(t, err)
			require.NotNil(t, got.Slot)
			assert.Equal(t, 11*time.Hour, got.Slot.Start)
			assert.Equal(t, tt.want, got.Slot.Duration)
			assert.Equal(t, "11999990000", got.CustomerRef)
		})
	}
}

func TestGroomingBookingRequest_ToDomain_MissingDate(t *testing.T) {
	_, err := GroomingBookingRequest{Time: "10:00"}.ToDomain(time.Hour)

	var mf *domain.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "date", mf.Field)
}
