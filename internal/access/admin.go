package access

import (
	"context"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type reservationAdmin interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Occupancy(ctx context.Context, service domain.ServiceType, date time.Time) ([]domain.SlotAvailability, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	Complete(ctx context.Context, id string) (*domain.Reservation, error)
	RebuildOccupancy(ctx context.Context) (int, error)
	AuditOccupancy(ctx context.Context) (int, error)
}

// AdminService is the only way into administrative operations. Every call
// passes the gate before reaching the engine.
type AdminService struct {
	gate   *Gate
	engine reservationAdmin
	role   domain.Role
}

func NewAdminService(gate *Gate, engine reservationAdmin, role domain.Role) *AdminService {
	if role == "" {
		role = domain.RoleAdmin
	}
	return &AdminService{gate: gate, engine: engine, role: role}
}

func (s *AdminService) ListReservations(ctx context.Context, p *domain.Principal, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if err := s.gate.Authorize(p, s.role); err != nil {
		return nil, err
	}
	return s.engine.List(ctx, filter)
}

func (s *AdminService) Occupancy(ctx context.Context, p *domain.Principal, service domain.ServiceType, date time.Time) ([]domain.SlotAvailability, error) {
	if err := s.gate.Authorize(p, s.role); err != nil {
		return nil, err
	}
	return s.engine.Occupancy(ctx, service, date)
}

func (s *AdminService) Cancel(ctx context.Context, p *domain.Principal, id string) (*domain.Reservation, error) {
	if err := s.gate.Authorize(p, s.role); err != nil {
		return nil, err
	}
	return s.engine.Cancel(ctx, id)
}

func (s *AdminService) Complete(ctx context.Context, p *domain.Principal, id string) (*domain.Reservation, error) {
	if err := s.gate.Authorize(p, s.role); err != nil {
		return nil, err
	}
	return s.engine.Complete(ctx, id)
}

func (s *AdminService) RebuildOccupancy(ctx context.Context, p *domain.Principal) (int, error) {
	if err := s.gate.Authorize(p, s.role); err != nil {
		return 0, err
	}
	return s.engine.RebuildOccupancy(ctx)
}

func (s *AdminService) AuditOccupancy(ctx context.Context, p *domain.Principal) (int, error) {
	if err := s.gate.Authorize(p, s.role); err != nil {
		return 0, err
	}
	return s.engine.AuditOccupancy(ctx)
}
