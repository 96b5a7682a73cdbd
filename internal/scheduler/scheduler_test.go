package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsBothJobs(t *testing.T) {
	drafts := mocks.NewMockDraftExpirer(t)
	auditor := mocks.NewMockOccupancyAuditor(t)

	s := New(drafts, auditor, 50*time.Millisecond, newTestLogger(t))

	drafts.EXPECT().ExpireIdle(mock.Anything).Return(2, nil)
	auditor.EXPECT().AuditOccupancy(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(drafts.Calls), 1)
	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_Tick_ExpiryErrorStillAudits(t *testing.T) {
	drafts := mocks.NewMockDraftExpirer(t)
	auditor := mocks.NewMockOccupancyAuditor(t)

	s := New(drafts, auditor, 50*time.Millisecond, newTestLogger(t))

	drafts.EXPECT().ExpireIdle(mock.Anything).Return(0, errors.New("boom"))
	auditor.EXPECT().AuditOccupancy(mock.Anything).Return(3, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_Tick_HandlesAuditError(t *testing.T) {
	drafts := mocks.NewMockDraftExpirer(t)
	auditor := mocks.NewMockOccupancyAuditor(t)

	s := New(drafts, auditor, 50*time.Millisecond, newTestLogger(t))

	drafts.EXPECT().ExpireIdle(mock.Anything).Return(0, nil)
	auditor.EXPECT().AuditOccupancy(mock.Anything).Return(0, errors.New("redis down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(auditor.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	drafts := mocks.NewMockDraftExpirer(t)
	auditor := mocks.NewMockOccupancyAuditor(t)

	s := New(drafts, auditor, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	drafts := mocks.NewMockDraftExpirer(t)
	auditor := mocks.NewMockOccupancyAuditor(t)

	s := New(drafts, auditor, 30*time.Millisecond, newTestLogger(t))

	drafts.EXPECT().ExpireIdle(mock.Anything).Return(0, nil)
	auditor.EXPECT().AuditOccupancy(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(drafts.Calls), 3)
}
