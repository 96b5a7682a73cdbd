package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/stretchr/testify/assert"
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

func TestRedisNotifier_PublishesEvent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, DefaultChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	n := NewRedisNotifier(client, "", newTestLogger(t))
	slot := domain.NewTimeSlot(time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC), 10*time.Hour, time.Hour)
	n.ReservationConfirmed(ctx, &domain.Reservation{
		ID:          "r1",
		ServiceType: domain.ServiceGrooming,
		CustomerRef: "11999990000",
		Slot:        &slot,
		TotalPrice:  75,
	})

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
	assert.Equal(t, EventReservationConfirmed, ev.Type)
	assert.Equal(t, "r1", ev.ReservationID)
	assert.Equal(t, 75, ev.TotalPrice)
	require.NotNil(t, ev.Slot)
	assert.Equal(t, slot.Key(), ev.Slot.Key())
}

func TestRedisNotifier_DisabledWithoutClient(t *testing.T) {
	n := NewRedisNotifier(nil, "", newTestLogger(t))

	assert.NotPanics(t, func() {
		n.ReservationCancelled(context.Background(), &domain.Reservation{ID: "r1"})
	})
}
