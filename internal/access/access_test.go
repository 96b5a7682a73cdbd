package access

import (
	"context"
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/access/mocks"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
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

var (
	admin = &domain.Principal{Subject: "u1", Role: domain.RoleAdmin}
	staff = &domain.Principal{Subject: "u2", Role: domain.RoleStaff}
)

func TestGate_Authorize_UniformDenial(t *testing.T) {
	g := NewGate(newTestLogger(t))

	assert.NoError(t, g.Authorize(admin, domain.RoleAdmin))

	anonymous := g.Authorize(nil, domain.RoleAdmin)
	wrongRole := g.Authorize(staff, domain.RoleAdmin)

	assert.ErrorIs(t, anonymous, domain.ErrDenied)
	assert.ErrorIs(t, wrongRole, domain.ErrDenied)
	assert.Equal(t, anonymous, wrongRole)
	assert.Equal(t, anonymous.Error(), wrongRole.Error())
}

func TestAdminService_DeniedNeverReachesEngine(t *testing.T) {
	engine := mocks.NewMockReservationAdmin(t)
	svc := NewAdminService(NewGate(newTestLogger(t)), engine, "")
	ctx := context.Background()

	for _, p := range []*domain.Principal{nil, staff} {
		_, err := svc.ListReservations(ctx, p, domain.ReservationFilter{})
		assert.ErrorIs(t, err, domain.ErrDenied)
		_, err = svc.Occupancy(ctx, p, domain.ServiceGrooming, time.Now())
		assert.ErrorIs(t, err, domain.ErrDenied)
		_, err = svc.Cancel(ctx, p, "r1")
		assert.ErrorIs(t, err, domain.ErrDenied)
		_, err = svc.Complete(ctx, p, "r1")
		assert.ErrorIs(t, err, domain.ErrDenied)
		_, err = svc.RebuildOccupancy(ctx, p)
		assert.ErrorIs(t, err, domain.ErrDenied)
		_, err = svc.AuditOccupancy(ctx, p)
		assert.ErrorIs(t, err, domain.ErrDenied)
	}
}

func TestAdminService_AdminAllowed(t *testing.T) {
	engine := mocks.NewMockReservationAdmin(t)
	svc := NewAdminService(NewGate(newTestLogger(t)), engine, domain.RoleAdmin)
	ctx := context.Background()

	cancelled := &domain.Reservation{ID: "r1", Status: domain.ReservationCancelled}
	engine.EXPECT().Cancel(mock.Anything, "r1").Return(cancelled, nil)
	engine.EXPECT().RebuildOccupancy(mock.Anything).Return(4, nil)
	engine.EXPECT().List(mock.Anything, domain.ReservationFilter{Status: domain.ReservationConfirmed}).
		Return([]*domain.Reservation{{ID: "r2"}}, nil)

	res, err := svc.Cancel(ctx, admin, "r1")
	require.NoError(t, err)
	assert.Same(t, cancelled, res)

	n, err := svc.RebuildOccupancy(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	list, err := svc.ListReservations(ctx, admin, domain.ReservationFilter{Status: domain.ReservationConfirmed})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAdminService_Occupancy_Hotel(t *testing.T) {
	engine := mocks.NewMockReservationAdmin(t)
	svc := NewAdminService(NewGate(newTestLogger(t)), engine, domain.RoleAdmin)
	day := time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)

	view := []domain.SlotAvailability{{
		Slot:      domain.NewTimeSlot(day, 0, 24*time.Hour),
		Occupancy: domain.Occupancy{Key: "hotel|2025-10-24", Count: 4, Capacity: 10},
	}}
	engine.EXPECT().Occupancy(mock.Anything, domain.ServiceHotel, day).Return(view, nil)

	got, err := svc.Occupancy(context.Background(), admin, domain.ServiceHotel, day)

	require.NoError(t, err)
	assert.Equal(t, view, got)
}
