package slotindex

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var implementations = map[string]func(t *testing.T) ports.SlotIndex{
	"memory": func(t *testing.T) ports.SlotIndex { return NewMemory() },
	"redis": func(t *testing.T) ports.SlotIndex {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		return NewRedis(client, "test:")
	},
}

func forEachIndex(t *testing.T, fn func(t *testing.T, idx ports.SlotIndex)) {
	for name, newIndex := range implementations {
		t.Run(name, func(t *testing.T) {
			fn(t, newIndex(t))
		})
	}
}

func day(d, h int) time.Time {
	return time.Date(2025, 10, d, h, 0, 0, 0, time.UTC)
}

func stay(from, to int) domain.StayInterval {
	return domain.StayInterval{CheckIn: day(from, 10), CheckOut: day(to, 10)}
}

const key = "grooming|2025-10-25T10:00/60m"

func TestIndex_TryReserve_RespectsCapacity(t *testing.T) {
	forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			ok, err := idx.TryReserve(ctx, key, 2)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := idx.TryReserve(ctx, key, 2)
		require.NoError(t, err)
		assert.False(t, ok)

		n, err := idx.CurrentOccupancy(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestIndex_TryReserve_Concurrent(t *testing.T) {
	forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
		ctx := context.Background()
		const capacity = 3
		const callers = 20

		var granted atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := idx.TryReserve(ctx, key, capacity)
				if err == nil && ok {
					granted.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(capacity), granted.Load())
		n, err := idx.CurrentOccupancy(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, capacity, n)
	})
}

func TestIndex_Release_FloorsAtZero(t *testing.T) {
	forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
		ctx := context.Background()

		require.NoError(t, idx.Release(ctx, key))
		ok, err := idx.TryReserve(ctx, key, 1)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, idx.Release(ctx, key))
		require.NoError(t, idx.Release(ctx, key))

		n, err := idx.CurrentOccupancy(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestIndex_TryReserveInterval(t *testing.T) {
	tests := []struct {
		name   string
		first  domain.StayInterval
		second domain.StayInterval
		wantOK bool
	}{
		{"overlapping stays", stay(22, 25), stay(24, 26), false},
		{"disjoint stays", stay(22, 25), stay(26, 28), true},
		{"back to back", stay(22, 25), stay(25, 27), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
				ctx := context.Background()

				ok, err := idx.TryReserveInterval(ctx, 1, "r1", tt.first)
				require.NoError(t, err)
				require.True(t, ok)

				ok, err = idx.TryReserveInterval(ctx, 1, "r2", tt.second)
				require.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
			})
		})
	}
}

func TestIndex_TryReserveInterval_PeakNotTotal(t *testing.T) {
	forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
		ctx := context.Background()

		// Two stays that never overlap each other fit in one of two lanes,
		// leaving the second lane for a stay that spans both.
		for id, s := range map[string]domain.StayInterval{"a": stay(20, 22), "b": stay(23, 25)} {
			ok, err := idx.TryReserveInterval(ctx, 2, id, s)
			require.NoError(t, err)
			require.True(t, ok)
		}

		ok, err := idx.TryReserveInterval(ctx, 2, "c", stay(21, 24))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = idx.TryReserveInterval(ctx, 2, "d", stay(21, 22))
		require.NoError(t, err)
		assert.False(t, ok)

		peak, err := idx.IntervalOccupancy(ctx, stay(20, 26))
		require.NoError(t, err)
		assert.Equal(t, 2, peak)
	})
}

func TestIndex_ReleaseInterval_FreesLane(t *testing.T) {
	forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
		ctx := context.Background()

		ok, err := idx.TryReserveInterval(ctx, 1, "r1", stay(22, 25))
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, idx.ReleaseInterval(ctx, "r1"))

		ok, err = idx.TryReserveInterval(ctx, 1, "r2", stay(24, 26))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestIndex_Rebuild_MatchesReservations(t *testing.T) {
	forEachIndex(t, func(t *testing.T, idx ports.SlotIndex) {
		ctx := context.Background()
		slot := domain.NewTimeSlot(day(25, 0), 10*time.Hour, time.Hour)
		hotel := stay(22, 25)

		// stale state that must disappear
		_, err := idx.TryReserve(ctx, "grooming|2025-10-24T09:00/60m", 2)
		require.NoError(t, err)
		_, err = idx.TryReserveInterval(ctx, 5, "stale", stay(1, 3))
		require.NoError(t, err)

		reservations := []*domain.Reservation{
			{ID: "g1", ServiceType: domain.ServiceGrooming, Slot: &slot, Status: domain.ReservationConfirmed},
			{ID: "g2", ServiceType: domain.ServiceGrooming, Slot: &slot, Status: domain.ReservationCompleted},
			{ID: "g3", ServiceType: domain.ServiceGrooming, Slot: &slot, Status: domain.ReservationCancelled},
			{ID: "h1", ServiceType: domain.ServiceHotel, Stay: &hotel, Status: domain.ReservationConfirmed},
		}
		require.NoError(t, idx.Rebuild(ctx, domain.BuildOccupancyState(reservations, nil)))

		st, err := idx.State(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{key: 2}, st.Slots)
		require.Contains(t, st.Stays, "h1")
		assert.True(t, st.Stays["h1"].CheckIn.Equal(hotel.CheckIn))
		assert.NotContains(t, st.Stays, "stale")
		assert.Zero(t, domain.BuildOccupancyState(reservations, nil).Diff(st))
	})
}

func TestPeakOverlap(t *testing.T) {
	stays := []domain.StayInterval{stay(1, 5), stay(2, 4), stay(3, 6), stay(6, 8)}

	assert.Equal(t, 3, peakOverlap(stays, stay(1, 8)))
	assert.Equal(t, 1, peakOverlap(stays, stay(6, 7)))
	assert.Equal(t, 0, peakOverlap(stays, stay(9, 10)))
	assert.Equal(t, 0, peakOverlap(nil, stay(1, 2)))
}

func ExampleMemory_TryReserve() {
	idx := NewMemory()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, _ := idx.TryReserve(ctx, key, 2)
		fmt.Println(ok)
	}
	// Output:
	// true
	// true
	// false
}

func TestHashTagged(t *testing.T) {
	assert.Equal(t, DefaultKeyPrefix, hashTagged(""))
	assert.Equal(t, "{petcare}:", hashTagged("petcare:"))
	assert.Equal(t, "{shop}:", hashTagged("shop"))
	assert.Equal(t, "{petcare}:", hashTagged("{petcare}:"))
	assert.Equal(t, "{x}:", hashTagged("x:"))
}

func TestRedis_KeysShareOneHashSlot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	idx := NewRedis(client, "test:")
	ctx := context.Background()

	_, err := idx.TryReserve(ctx, key, 2)
	require.NoError(t, err)
	_, err = idx.TryReserveInterval(ctx, 1, "h1", stay(22, 25))
	require.NoError(t, err)

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	for _, k := range keys {
		assert.Regexp(t, `^\{test\}:`, k)
	}
}
