package ports

import (
	"context"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type ReservationNotifier interface {
	ReservationConfirmed(ctx context.Context, r *domain.Reservation)
	ReservationCancelled(ctx context.Context, r *domain.Reservation)
}
