package workflow

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/calendar"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/workflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newManager(t *testing.T) (*Manager, *mocks.MockBooker) {
	t.Helper()
	booker := mocks.NewMockBooker(t)
	return NewManager(booker, calendar.Default(), time.Hour, newTestLogger(t)), booker
}

var daycareInput = map[StepID]string{
	"pet":      `{"name":"Mel","breed":"Poodle"}`,
	"tutor":    `{"name":"Ana","contact_phone":"11999990000","emergency_contact":"Joao 11911112222"}`,
	"health":   `{"vet_phone":"1133334444"}`,
	"behavior": `{"gets_along_with_others":true,"has_allergies":false}`,
	"plan":     `{"plan":"3x_week","visit_date":"2025-10-25","visit_time":"10:00"}`,
}

var hotelInput = map[StepID]string{
	"pet":     `{"name":"Luna","breed":"SRD"}`,
	"tutor":   `{"name":"Bruno","phone":"11988887777"}`,
	"health":  `{"emergency_contact_name":"Carla","emergency_contact_phone":"11977776666"}`,
	"feeding": `{"food_brand":"Premier","food_quantity":"200g","feeding_frequency":"2x"}`,
	"stay":    `{"check_in_date":"2025-10-26","check_in_time":"10:00","check_out_date":"2025-10-28","check_out_time":"10:00"}`,
	"consent": `{"declaration_accepted":true,"check_in_signature":"Bruno"}`,
}

func fill(t *testing.T, m *Manager, id string, steps []StepID, input map[StepID]string) {
	t.Helper()
	for _, s := range steps {
		res, _, err := m.SubmitStep(id, s, []byte(input[s]))
		require.NoError(t, err, s)
		require.True(t, res.Valid, "step %s: missing %s", s, res.MissingField)
	}
}

var (
	daycareOrder = []StepID{"pet", "tutor", "health", "behavior", "plan"}
	hotelOrder   = []StepID{"pet", "tutor", "health", "feeding", "stay", "consent"}
)

func TestManager_Daycare_HappyPath(t *testing.T) {
	m, booker := newManager(t)

	snap, err := m.Start(KindDaycare)
	require.NoError(t, err)
	assert.Equal(t, StepID("pet"), snap.Current)
	assert.Equal(t, StateDraft, snap.State)

	fill(t, m, snap.ID, daycareOrder, daycareInput)

	booker.EXPECT().Book(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req domain.BookingRequest) (*domain.Reservation, error) {
			assert.Equal(t, domain.ServiceDaycare, req.ServiceType)
			assert.Equal(t, "11999990000", req.CustomerRef)
			require.NotNil(t, req.Slot)
			assert.Equal(t, "2025-10-25T10:00/60m", req.Slot.Key())
			return &domain.Reservation{ID: "r1", Status: domain.ReservationConfirmed}, nil
		})

	res, snap, err := m.Submit(context.Background(), snap.ID)

	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)
	assert.Equal(t, StateSubmitted, snap.State)
	assert.Equal(t, "r1", snap.ReservationID)

	_, _, err = m.SubmitStep(snap.ID, "pet", []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrWorkflowSubmitted)
}

func TestManager_StepOutOfOrder(t *testing.T) {
	m, _ := newManager(t)
	snap, err := m.Start(KindHotel)
	require.NoError(t, err)

	_, _, err = m.SubmitStep(snap.ID, "feeding", []byte(hotelInput["feeding"]))

	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)
}

func TestManager_UnknownStep(t *testing.T) {
	m, _ := newManager(t)
	snap, err := m.Start(KindHotel)
	require.NoError(t, err)

	_, _, err = m.SubmitStep(snap.ID, "plan", nil)

	assert.ErrorIs(t, err, domain.ErrUnknownStep)
}

func TestManager_InvalidStepBlocksAdvance(t *testing.T) {
	m, _ := newManager(t)
	snap, err := m.Start(KindDaycare)
	require.NoError(t, err)

	res, snap, err := m.SubmitStep(snap.ID, "pet", []byte(`{"name":"Mel"}`))

	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "pet.breed", res.MissingField)
	assert.Equal(t, StepID("pet"), snap.Current)

	_, _, err = m.SubmitStep(snap.ID, "tutor", []byte(daycareInput["tutor"]))
	assert.ErrorIs(t, err, domain.ErrStepOutOfOrder)

	// merge: only the missing field is sent
	res, snap, err = m.SubmitStep(snap.ID, "pet", []byte(`{"breed":"Poodle"}`))
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, StepID("tutor"), snap.Current)
}

func TestManager_BehaviorRequiresDescriptionWhenFlagged(t *testing.T) {
	m, _ := newManager(t)
	snap, err := m.Start(KindDaycare)
	require.NoError(t, err)
	fill(t, m, snap.ID, daycareOrder[:3], daycareInput)

	res, _, err := m.SubmitStep(snap.ID, "behavior", []byte(`{"has_allergies":true}`))

	require.NoError(t, err)
	assert.Equal(t, "behavior.allergies_description", res.MissingField)
}

func TestManager_GoBackKeepsData(t *testing.T) {
	m, _ := newManager(t)
	snap, err := m.Start(KindDaycare)
	require.NoError(t, err)
	fill(t, m, snap.ID, daycareOrder[:2], daycareInput)

	snap, err = m.Back(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StepID("tutor"), snap.Current)

	var data domain.DaycareEnrollment
	require.NoError(t, json.Unmarshal(snap.Data, &data))
	assert.Equal(t, "Mel", data.Pet.Name)
	assert.Equal(t, "11999990000", data.Tutor.ContactPhone)

	snap, err = m.Back(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StepID("pet"), snap.Current)

	snap, err = m.Back(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StepID("pet"), snap.Current)
}

func TestManager_Hotel_RejectedSubmitKeepsData(t *testing.T) {
	m, booker := newManager(t)
	snap, err := m.Start(KindHotel)
	require.NoError(t, err)
	fill(t, m, snap.ID, hotelOrder, hotelInput)

	booker.EXPECT().Book(mock.Anything, mock.MatchedBy(func(req domain.BookingRequest) bool {
		return req.Stay != nil &&
			req.Stay.CheckIn.Equal(time.Date(2025, 10, 26, 10, 0, 0, 0, time.UTC)) &&
			req.CustomerRef == "11988887777"
	})).Return(nil, domain.ErrNoLaneAvailable).Once()

	res, snap, err := m.Submit(context.Background(), snap.ID)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNoLaneAvailable)
	assert.Equal(t, StepID("consent"), snap.Current)
	assert.Equal(t, "no_lane_available", snap.Reason)
	assert.Equal(t, StateDraft, snap.State)

	var data domain.HotelStay
	require.NoError(t, json.Unmarshal(snap.Data, &data))
	assert.Equal(t, "Luna", data.Pet.Name)
	assert.Equal(t, "2025-10-28", data.Stay.CheckOutDate)
	assert.True(t, data.Consent.DeclarationAccepted)

	// the customer changes the dates and retries
	booker.EXPECT().Book(mock.Anything, mock.Anything).Return(&domain.Reservation{ID: "r2"}, nil).Once()
	_, _, err = m.SubmitStep(snap.ID, "stay", []byte(`{"check_out_date":"2025-10-27"}`))
	require.NoError(t, err)
	res, _, err = m.Submit(context.Background(), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "r2", res.ID)
}

func TestManager_SubmitIncompleteJumpsToStep(t *testing.T) {
	m, _ := newManager(t)
	snap, err := m.Start(KindDaycare)
	require.NoError(t, err)
	fill(t, m, snap.ID, daycareOrder[:2], daycareInput)

	_, snap, err = m.Submit(context.Background(), snap.ID)

	var mf *domain.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "health.vet_phone", mf.Field)
	assert.Equal(t, StepID("health"), snap.Current)
	assert.Equal(t, "health.vet_phone", snap.Field)
}

func TestManager_ExpireIdle(t *testing.T) {
	m, _ := newManager(t)
	now := time.Date(2025, 10, 25, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	old, err := m.Start(KindDaycare)
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	fresh, err := m.Start(KindHotel)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	n, err := m.ExpireIdle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = m.Get(old.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSession_ExpireSeesLateActivity(t *testing.T) {
	m, _ := newManager(t)
	now := time.Date(2025, 10, 25, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	s, err := m.newSession(KindDaycare)
	require.NoError(t, err)
	cutoff := now.Add(time.Minute)

	// touched after the sweep computed its cutoff
	now = now.Add(2 * time.Minute)
	_, err = s.SubmitStep("pet", []byte(daycareInput["pet"]))
	require.NoError(t, err)
	assert.False(t, s.Expire(cutoff))

	assert.True(t, s.Expire(now.Add(time.Minute)))
	_, err = s.SubmitStep("pet", []byte(daycareInput["pet"]))
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	_, err = s.GoBack()
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	_, err = s.SubmitFinal(context.Background())
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("hotel")
	require.NoError(t, err)
	assert.Equal(t, KindHotel, k)

	_, err = ParseKind("grooming")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
