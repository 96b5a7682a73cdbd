package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/pricing"
	"github.com/riquelima/SandyPetShop-v3/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type bookingValidator interface {
	Validate(ctx context.Context, req domain.BookingRequest) error
}

type slotLister interface {
	Slots(service domain.ServiceType, date time.Time) []domain.TimeSlot
	SlotLength(service domain.ServiceType) time.Duration
}

// SchedulingEngine turns booking requests into reservations. Occupancy is
// claimed through the slot index before anything is written, so two callers
// racing for the last place cannot both succeed.
type SchedulingEngine struct {
	repo      ports.ReservationRepo
	index     ports.SlotIndex
	validator bookingValidator
	calendar  slotLister
	capacity  domain.CapacityPolicy
	notifier  ports.ReservationNotifier
	recorder  ports.BookingRecorder
	logger    logger.Logger
}

func NewSchedulingEngine(
	repo ports.ReservationRepo,
	index ports.SlotIndex,
	validator bookingValidator,
	calendar slotLister,
	capacity domain.CapacityPolicy,
	notifier ports.ReservationNotifier,
	recorder ports.BookingRecorder,
	logger logger.Logger,
) *SchedulingEngine {
	return &SchedulingEngine{
		repo:      repo,
		index:     index,
		validator: validator,
		calendar:  calendar,
		capacity:  capacity,
		notifier:  notifier,
		recorder:  recorder,
		logger:    logger,
	}
}

func (s *SchedulingEngine) Book(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error) {
	attempt := domain.NewAttempt(req.ServiceType)
	res, err := s.book(ctx, req, attempt)

	reason := ""
	if attempt.Reason != nil {
		reason = domain.ReasonCode(attempt.Reason)
	}
	s.recorder.AttemptFinished(req.ServiceType, attempt.State, reason)

	return res, err
}

func (s *SchedulingEngine) book(ctx context.Context, req domain.BookingRequest, attempt *domain.Attempt) (*domain.Reservation, error) {
	if err := attempt.Transition(domain.AttemptValidating); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		s.reject(attempt, err)
		return nil, err
	}

	price, err := pricing.Quote(req)
	if err != nil {
		s.reject(attempt, err)
		return nil, err
	}

	payload, err := json.Marshal(req.Payload)
	if err != nil {
		s.reject(attempt, err)
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:          uuid.New().String(),
		ServiceType: req.ServiceType,
		CustomerRef: req.CustomerRef,
		Status:      domain.ReservationConfirmed,
		Payload:     payload,
		TotalPrice:  price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Stay != nil && req.ServiceType.IntervalBased() {
		stay := *req.Stay
		res.Stay = &stay
	} else if req.Slot != nil {
		slot := *req.Slot
		res.Slot = &slot
	}

	if err = attempt.Transition(domain.AttemptReserved); err != nil {
		return nil, err
	}

	if err = s.reserve(ctx, res); err != nil {
		_ = attempt.Fail(err)
		s.logger.Info("booking rolled back",
			logger.String("service", string(req.ServiceType)),
			logger.String("reason", domain.ReasonCode(err)),
		)
		return nil, err
	}

	if err = s.repo.Create(ctx, res); err != nil {
		s.release(ctx, res)
		_ = attempt.Fail(err)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if err = attempt.Transition(domain.AttemptConfirmed); err != nil {
		return nil, err
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", res.ID),
		logger.String("service", string(res.ServiceType)),
		logger.String("customer_ref", res.CustomerRef),
		logger.Int("total_price", res.TotalPrice),
	)

	go s.notifier.ReservationConfirmed(context.WithoutCancel(ctx), res)

	return res, nil
}

func (s *SchedulingEngine) reject(attempt *domain.Attempt, err error) {
	_ = attempt.Fail(err)
	s.logger.Info("booking rejected",
		logger.String("service", string(attempt.Service)),
		logger.String("reason", domain.ReasonCode(err)),
		logger.String("error", err.Error()),
	)
}

func (s *SchedulingEngine) reserve(ctx context.Context, res *domain.Reservation) error {
	if res.Stay != nil {
		ok, err := s.index.TryReserveInterval(ctx, s.capacity.HotelLanes(), res.ID, *res.Stay)
		if err != nil {
			return fmt.Errorf("reserve stay: %w", err)
		}
		if !ok {
			return domain.ErrNoLaneAvailable
		}
		return nil
	}

	// A service longer than the grid holds every cell it covers, or none.
	cells := res.Slot.Cells(s.calendar.SlotLength(res.ServiceType))
	for i, cell := range cells {
		key := domain.SlotKey(res.ServiceType, cell)
		ok, err := s.index.TryReserve(ctx, key, s.capacity.SlotCapacity(res.ServiceType, cell))
		if err != nil {
			s.releaseCells(ctx, res, cells[:i])
			return fmt.Errorf("reserve slot %s: %w", key, err)
		}
		if !ok {
			s.releaseCells(ctx, res, cells[:i])
			return domain.ErrCapacityExceeded
		}
	}
	return nil
}

// release gives the occupancy of res back. Failures are logged; the next
// rebuild or audit reconciles the index.
func (s *SchedulingEngine) release(ctx context.Context, res *domain.Reservation) {
	if res.Stay != nil {
		if err := s.index.ReleaseInterval(ctx, res.ID); err != nil {
			s.logReleaseFailure(res, err)
		}
		return
	}
	if res.Slot != nil {
		s.releaseCells(ctx, res, res.Slot.Cells(s.calendar.SlotLength(res.ServiceType)))
	}
}

func (s *SchedulingEngine) releaseCells(ctx context.Context, res *domain.Reservation, cells []domain.TimeSlot) {
	for _, cell := range cells {
		if err := s.index.Release(ctx, domain.SlotKey(res.ServiceType, cell)); err != nil {
			s.logReleaseFailure(res, err)
		}
	}
}

func (s *SchedulingEngine) logReleaseFailure(res *domain.Reservation, err error) {
	s.logger.Error("failed to release occupancy",
		logger.String("reservation_id", res.ID),
		logger.String("error", err.Error()),
	)
}

// Cancel frees the slot of a confirmed reservation. Cancelling twice returns
// the stored record without touching occupancy again.
func (s *SchedulingEngine) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	res, changed, err := s.repo.Transition(ctx, id, domain.ReservationConfirmed, domain.ReservationCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}
	if !changed {
		if res.Status == domain.ReservationCancelled {
			return res, nil
		}
		return nil, fmt.Errorf("%w: status is %s", domain.ErrReservationNotActive, res.Status)
	}

	s.release(ctx, res)
	s.recorder.ReservationCancelled(res.ServiceType)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("service", string(res.ServiceType)),
	)

	go s.notifier.ReservationCancelled(context.WithoutCancel(ctx), res)

	return res, nil
}

// Complete marks a served reservation. It keeps its occupancy.
func (s *SchedulingEngine) Complete(ctx context.Context, id string) (*domain.Reservation, error) {
	res, changed, err := s.repo.Transition(ctx, id, domain.ReservationConfirmed, domain.ReservationCompleted)
	if err != nil {
		return nil, fmt.Errorf("complete reservation: %w", err)
	}
	if !changed && res.Status != domain.ReservationCompleted {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrReservationNotActive, res.Status)
	}
	return res, nil
}

func (s *SchedulingEngine) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SchedulingEngine) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return s.repo.List(ctx, filter)
}

// Availability lists every slot of the day with its live occupancy.
func (s *SchedulingEngine) Availability(ctx context.Context, service domain.ServiceType, date time.Time) ([]domain.SlotAvailability, error) {
	if _, err := domain.ParseServiceType(string(service)); err != nil {
		return nil, err
	}
	if service.IntervalBased() {
		return nil, fmt.Errorf("%w: %s is booked by stay, not by slot", domain.ErrValidation, service)
	}

	slots := s.calendar.Slots(service, date)
	out := make([]domain.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		key := domain.SlotKey(service, slot)
		n, err := s.index.CurrentOccupancy(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("read occupancy %s: %w", key, err)
		}
		out = append(out, domain.SlotAvailability{
			Slot: slot,
			Occupancy: domain.Occupancy{
				Key:      key,
				Count:    n,
				Capacity: s.capacity.SlotCapacity(service, slot),
			},
		})
	}
	return out, nil
}

// Occupancy is the admin view of a day. Slot services list their grid like
// Availability; the hotel reports one entry with the peak number of lanes in
// use during the day.
func (s *SchedulingEngine) Occupancy(ctx context.Context, service domain.ServiceType, date time.Time) ([]domain.SlotAvailability, error) {
	if !service.IntervalBased() {
		return s.Availability(ctx, service, date)
	}

	day := domain.CivilDate(date)
	stay := domain.StayInterval{CheckIn: day, CheckOut: day.Add(24 * time.Hour)}
	peak, err := s.index.IntervalOccupancy(ctx, stay)
	if err != nil {
		return nil, fmt.Errorf("read hotel occupancy: %w", err)
	}
	return []domain.SlotAvailability{{
		Slot: domain.NewTimeSlot(day, 0, 24*time.Hour),
		Occupancy: domain.Occupancy{
			Key:      string(service) + "|" + day.Format(domain.DateLayout),
			Count:    peak,
			Capacity: s.capacity.HotelLanes(),
		},
	}}, nil
}

// RebuildOccupancy replaces the index with the state derived from the
// reservation log and returns the number of active reservations replayed.
func (s *SchedulingEngine) RebuildOccupancy(ctx context.Context) (int, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active reservations: %w", err)
	}
	if err = s.index.Rebuild(ctx, domain.BuildOccupancyState(active, s.calendar.SlotLength)); err != nil {
		return 0, fmt.Errorf("rebuild occupancy: %w", err)
	}

	s.logger.Info("occupancy rebuilt", logger.Int("reservations", len(active)))
	return len(active), nil
}

// AuditOccupancy compares the index with the reservation log and reports the
// number of differing entries. It does not repair.
func (s *SchedulingEngine) AuditOccupancy(ctx context.Context) (int, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active reservations: %w", err)
	}
	actual, err := s.index.State(ctx)
	if err != nil {
		return 0, fmt.Errorf("read index state: %w", err)
	}

	drift := domain.BuildOccupancyState(active, s.calendar.SlotLength).Diff(actual)
	s.recorder.OccupancyDrift(drift)
	if drift > 0 {
		s.logger.Warn("occupancy index drifted from reservation log",
			logger.Int("entries", drift),
		)
	}
	return drift, nil
}
