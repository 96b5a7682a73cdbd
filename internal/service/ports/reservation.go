package ports

import (
	"context"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// Transition moves a reservation from one status to another. changed is
	// false when the reservation was not in status from.
	Transition(ctx context.Context, id string, from, to domain.ReservationStatus) (r *domain.Reservation, changed bool, err error)
	ListActive(ctx context.Context) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}
