package ports

import (
	"context"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

// SlotIndex tracks live occupancy. TryReserve and TryReserveInterval are the
// single check-and-increment points; no caller may read and then write.
type SlotIndex interface {
	CurrentOccupancy(ctx context.Context, key string) (int, error)
	TryReserve(ctx context.Context, key string, capacity int) (bool, error)
	Release(ctx context.Context, key string) error

	IntervalOccupancy(ctx context.Context, stay domain.StayInterval) (int, error)
	TryReserveInterval(ctx context.Context, poolSize int, reservationID string, stay domain.StayInterval) (bool, error)
	ReleaseInterval(ctx context.Context, reservationID string) error

	// Rebuild replaces everything the index holds with st.
	Rebuild(ctx context.Context, st domain.OccupancyState) error
	State(ctx context.Context) (domain.OccupancyState, error)
}
