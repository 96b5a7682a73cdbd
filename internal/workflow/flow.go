package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type Kind string

const (
	KindDaycare Kind = "daycare"
	KindHotel   Kind = "hotel"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDaycare, KindHotel:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: unknown workflow %q", domain.ErrValidation, s)
}

type StepID string

type State string

const (
	StateDraft     State = "draft"
	StateFilled    State = "filled"
	StateSubmitted State = "submitted"
)

type Booker interface {
	Book(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error)
}

type ValidationResult struct {
	Step         StepID `json:"step"`
	Valid        bool   `json:"valid"`
	MissingField string `json:"missing_field,omitempty"`
}

type StepStatus struct {
	ID    StepID `json:"id"`
	Valid bool   `json:"valid"`
}

type Snapshot struct {
	ID            string          `json:"id"`
	Kind          Kind            `json:"kind"`
	State         State           `json:"state"`
	Current       StepID          `json:"current"`
	Steps         []StepStatus    `json:"steps"`
	Data          json.RawMessage `json:"data"`
	Reason        string          `json:"reason,omitempty"`
	Field         string          `json:"field,omitempty"`
	Error         string          `json:"error,omitempty"`
	ReservationID string          `json:"reservation_id,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Session is one customer's draft. Sessions are safe for concurrent use.
type Session interface {
	ID() string
	Kind() Kind
	SubmitStep(step StepID, raw []byte) (ValidationResult, error)
	GoBack() (Snapshot, error)
	SubmitFinal(ctx context.Context) (*domain.Reservation, error)
	Snapshot() Snapshot
	// Expire closes the session if it has been idle since before cutoff and
	// reports whether it did. A closed session rejects every change with
	// domain.ErrDraftNotFound.
	Expire(cutoff time.Time) bool
}

type section interface {
	MissingField() string
}

type step[P any] struct {
	id      StepID
	section func(p *P) section
}

// flow is a linear step machine over the payload P. Steps are entered in
// order; a step can only be left forward once its section is complete.
type flow[P any] struct {
	mu sync.Mutex

	id      string
	kind    Kind
	steps   []step[P]
	request func(p *P) (domain.BookingRequest, error)
	booker  Booker
	now     func() time.Time

	data        P
	current     int
	state       State
	lastErr     error
	reservation *domain.Reservation
	touched     time.Time
	expired     bool
}

func newFlow[P any](id string, kind Kind, steps []step[P], request func(*P) (domain.BookingRequest, error), booker Booker, now func() time.Time) *flow[P] {
	return &flow[P]{
		id:      id,
		kind:    kind,
		steps:   steps,
		request: request,
		booker:  booker,
		now:     now,
		state:   StateDraft,
		touched: now(),
	}
}

func (f *flow[P]) ID() string { return f.id }

func (f *flow[P]) Kind() Kind { return f.kind }

func (f *flow[P]) Expire(cutoff time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.expired {
		return true
	}
	if !f.touched.Before(cutoff) {
		return false
	}
	f.expired = true
	return true
}

func (f *flow[P]) indexOf(id StepID) int {
	for i, s := range f.steps {
		if s.id == id {
			return i
		}
	}
	return -1
}

// SubmitStep merges raw JSON into the step section and validates it.
func (f *flow[P]) SubmitStep(id StepID, raw []byte) (ValidationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.expired {
		return ValidationResult{}, domain.ErrDraftNotFound
	}
	if f.state == StateSubmitted {
		return ValidationResult{}, domain.ErrWorkflowSubmitted
	}
	idx := f.indexOf(id)
	if idx < 0 {
		return ValidationResult{}, fmt.Errorf("%w: %s", domain.ErrUnknownStep, id)
	}
	if idx > f.current {
		return ValidationResult{}, fmt.Errorf("%w: current step is %s", domain.ErrStepOutOfOrder, f.steps[f.current].id)
	}

	sec := f.steps[idx].section(&f.data)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, sec); err != nil {
			return ValidationResult{}, fmt.Errorf("%w: step %s: %v", domain.ErrValidation, id, err)
		}
	}
	f.touched = f.now()
	f.lastErr = nil

	if field := sec.MissingField(); field != "" {
		f.current = idx
		f.state = StateDraft
		return ValidationResult{Step: id, MissingField: field}, nil
	}

	last := len(f.steps) - 1
	switch {
	case idx == last:
		f.state = StateFilled
	case idx == f.current:
		f.current++
	}
	return ValidationResult{Step: id, Valid: true}, nil
}

// GoBack moves to the previous step. Entered data is kept.
func (f *flow[P]) GoBack() (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.expired {
		return Snapshot{}, domain.ErrDraftNotFound
	}
	if f.state == StateSubmitted {
		return Snapshot{}, domain.ErrWorkflowSubmitted
	}
	if f.current > 0 {
		f.current--
	}
	f.state = StateDraft
	f.touched = f.now()
	return f.snapshotLocked(), nil
}

// SubmitFinal books the accumulated payload. On failure the draft stays
// editable: a missing field moves back to the step that owns it, any other
// rejection to the last step, and the reason is kept for the snapshot.
func (f *flow[P]) SubmitFinal(ctx context.Context) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.expired {
		return nil, domain.ErrDraftNotFound
	}
	if f.state == StateSubmitted {
		return f.reservation, nil
	}
	f.touched = f.now()

	for i, s := range f.steps {
		if field := s.section(&f.data).MissingField(); field != "" {
			return nil, f.failLocked(i, domain.MissingField(field))
		}
	}

	req, err := f.request(&f.data)
	if err != nil {
		return nil, f.failLocked(len(f.steps)-1, err)
	}

	res, err := f.booker.Book(ctx, req)
	if err != nil {
		return nil, f.failLocked(f.stepFor(err), err)
	}

	f.state = StateSubmitted
	f.lastErr = nil
	f.reservation = res
	return res, nil
}

func (f *flow[P]) failLocked(stepIdx int, err error) error {
	f.current = stepIdx
	f.state = StateDraft
	f.lastErr = err
	return err
}

// stepFor picks the step owning a missing field ("tutor.phone" belongs to
// "tutor"), falling back to the last step.
func (f *flow[P]) stepFor(err error) int {
	var mf *domain.MissingFieldError
	if errors.As(err, &mf) {
		prefix, _, _ := strings.Cut(mf.Field, ".")
		if idx := f.indexOf(StepID(prefix)); idx >= 0 {
			return idx
		}
	}
	return len(f.steps) - 1
}

func (f *flow[P]) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *flow[P]) snapshotLocked() Snapshot {
	data, _ := json.Marshal(f.data)

	steps := make([]StepStatus, len(f.steps))
	for i, s := range f.steps {
		steps[i] = StepStatus{ID: s.id, Valid: s.section(&f.data).MissingField() == ""}
	}

	snap := Snapshot{
		ID:        f.id,
		Kind:      f.kind,
		State:     f.state,
		Current:   f.steps[f.current].id,
		Steps:     steps,
		Data:      data,
		UpdatedAt: f.touched,
	}
	if f.lastErr != nil {
		snap.Reason = domain.ReasonCode(f.lastErr)
		snap.Error = f.lastErr.Error()
		if snap.Reason == "internal" {
			snap.Error = "booking could not be completed, try again"
		}
		var mf *domain.MissingFieldError
		if errors.As(f.lastErr, &mf) {
			snap.Field = mf.Field
		}
	}
	if f.reservation != nil {
		snap.ReservationID = f.reservation.ID
	}
	return snap
}
