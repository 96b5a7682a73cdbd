package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riquelima/SandyPetShop-v3/internal/calendar"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type schedule interface {
	Service(service domain.ServiceType) (calendar.ServiceCalendar, bool)
}

// Manager owns the draft sessions. Its lock only guards the map; each
// session serializes its own steps.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]Session

	booker   Booker
	schedule schedule
	ttl      time.Duration
	now      func() time.Time
	logger   logger.Logger
}

func NewManager(booker Booker, schedule schedule, ttl time.Duration, log logger.Logger) *Manager {
	return &Manager{
		drafts:   make(map[string]Session),
		booker:   booker,
		schedule: schedule,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   log,
	}
}

func (m *Manager) newSession(kind Kind) (Session, error) {
	id := uuid.New().String()
	switch kind {
	case KindDaycare:
		sc, _ := m.schedule.Service(domain.ServiceDaycare)
		return newFlow(id, kind, daycareSteps, daycareRequest(sc.SlotLength), m.booker, m.now), nil
	case KindHotel:
		sc, _ := m.schedule.Service(domain.ServiceHotel)
		return newFlow(id, kind, hotelSteps, hotelRequest(sc.Window.Open), m.booker, m.now), nil
	}
	return nil, fmt.Errorf("%w: unknown workflow %q", domain.ErrValidation, kind)
}

func (m *Manager) Start(kind Kind) (Snapshot, error) {
	s, err := m.newSession(kind)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	m.drafts[s.ID()] = s
	m.mu.Unlock()

	m.logger.Debug("workflow started",
		logger.String("draft_id", s.ID()),
		logger.String("kind", string(kind)),
	)
	return s.Snapshot(), nil
}

func (m *Manager) session(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return s, nil
}

func (m *Manager) Get(id string) (Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

func (m *Manager) SubmitStep(id string, step StepID, raw []byte) (ValidationResult, Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return ValidationResult{}, Snapshot{}, err
	}
	res, err := s.SubmitStep(step, raw)
	if err != nil {
		return ValidationResult{}, Snapshot{}, err
	}
	return res, s.Snapshot(), nil
}

func (m *Manager) Back(id string) (Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.GoBack()
}

// Submit books the draft. The snapshot is returned on failure too so the
// caller can show where the customer has to continue.
func (m *Manager) Submit(ctx context.Context, id string) (*domain.Reservation, Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, Snapshot{}, err
	}

	res, err := s.SubmitFinal(ctx)
	snap := s.Snapshot()
	if err != nil {
		m.logger.Info("workflow submission rejected",
			logger.String("draft_id", id),
			logger.String("kind", string(s.Kind())),
			logger.String("reason", snap.Reason),
			logger.String("step", string(snap.Current)),
		)
		return nil, snap, err
	}
	return res, snap, nil
}

// ExpireIdle drops drafts untouched for longer than the TTL. Each session
// decides under its own lock, so a draft touched during the sweep is kept.
func (m *Manager) ExpireIdle(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	sessions := make([]Session, 0, len(m.drafts))
	for _, s := range m.drafts {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	// Expire waits for a submission in progress, so it runs without the
	// map lock.
	var idle []string
	for _, s := range sessions {
		if s.Expire(cutoff) {
			idle = append(idle, s.ID())
		}
	}

	m.mu.Lock()
	for _, id := range idle {
		delete(m.drafts, id)
	}
	m.mu.Unlock()

	if len(idle) > 0 {
		m.logger.Info("idle drafts expired", logger.Int("count", len(idle)))
	}
	return len(idle), nil
}
