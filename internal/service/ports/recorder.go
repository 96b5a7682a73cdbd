package ports

import "github.com/riquelima/SandyPetShop-v3/internal/domain"

type BookingRecorder interface {
	AttemptFinished(service domain.ServiceType, state domain.AttemptState, reason string)
	ReservationCancelled(service domain.ServiceType)
	OccupancyDrift(entries int)
}
