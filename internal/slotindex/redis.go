package slotindex

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

// DefaultKeyPrefix carries a hash tag so that every key lands in one cluster
// slot; the reserve script touches two keys at once.
const DefaultKeyPrefix = "{petcare}:"

// KEYS[1] slot counter, KEYS[2] set of known slot keys, ARGV[1] capacity.
var reserveScript = redis.NewScript(`
local n = tonumber(redis.call('GET', KEYS[1]) or '0')
if n >= tonumber(ARGV[1]) then
	return -1
end
redis.call('SADD', KEYS[2], KEYS[1])
return redis.call('INCR', KEYS[1])
`)

var releaseScript = redis.NewScript(`
local n = tonumber(redis.call('GET', KEYS[1]) or '0')
if n <= 0 then
	return 0
end
return redis.call('DECR', KEYS[1])
`)

// KEYS[1] stays hash, ARGV: pool size, reservation id, check-in, check-out
// (unix seconds). Same sweep as peakOverlap: ends sort before starts.
var reserveIntervalScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[2]) == 1 then
	return 1
end
local pool = tonumber(ARGV[1])
local s = tonumber(ARGV[3])
local e = tonumber(ARGV[4])
local edges = {}
for _, v in ipairs(redis.call('HVALS', KEYS[1])) do
	local a, b = string.match(v, '^(%-?%d+):(%-?%d+)$')
	a = tonumber(a)
	b = tonumber(b)
	if a < e and s < b then
		table.insert(edges, {math.max(a, s), 1})
		table.insert(edges, {math.min(b, e), -1})
	end
end
table.sort(edges, function(x, y)
	if x[1] == y[1] then
		return x[2] < y[2]
	end
	return x[1] < y[1]
end)
local cur, peak = 0, 0
for _, edge in ipairs(edges) do
	cur = cur + edge[2]
	if cur > peak then
		peak = cur
	end
end
if peak >= pool then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[2], ARGV[3] .. ':' .. ARGV[4])
return 1
`)

// Redis keeps occupancy in Redis so several engine processes share one index.
// Every check-and-increment runs as a single Lua script.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: hashTagged(prefix)}
}

// hashTagged wraps a plain prefix as "{name}:". A prefix that already holds a
// hash tag is kept.
func hashTagged(prefix string) string {
	if prefix == "" {
		return DefaultKeyPrefix
	}
	if open := strings.Index(prefix, "{"); open >= 0 && strings.Index(prefix[open:], "}") > 1 {
		return prefix
	}
	return "{" + strings.TrimSuffix(prefix, ":") + "}:"
}

func (r *Redis) slotKey(key string) string { return r.prefix + "slot:" + key }
func (r *Redis) slotSetKey() string        { return r.prefix + "slots" }
func (r *Redis) staysKey() string          { return r.prefix + "stays" }

func (r *Redis) CurrentOccupancy(ctx context.Context, key string) (int, error) {
	n, err := r.client.Get(ctx, r.slotKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get occupancy %s: %w", key, err)
	}
	return n, nil
}

func (r *Redis) TryReserve(ctx context.Context, key string, capacity int) (bool, error) {
	n, err := reserveScript.Run(ctx, r.client, []string{r.slotKey(key), r.slotSetKey()}, capacity).Int()
	if err != nil {
		return false, fmt.Errorf("reserve %s: %w", key, err)
	}
	return n > 0, nil
}

func (r *Redis) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, r.client, []string{r.slotKey(key)}).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

func (r *Redis) stays(ctx context.Context) (map[string]domain.StayInterval, error) {
	raw, err := r.client.HGetAll(ctx, r.staysKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("load stays: %w", err)
	}
	out := make(map[string]domain.StayInterval, len(raw))
	for id, v := range raw {
		stay, err := decodeStay(v)
		if err != nil {
			return nil, fmt.Errorf("stay %s: %w", id, err)
		}
		out[id] = stay
	}
	return out, nil
}

func (r *Redis) IntervalOccupancy(ctx context.Context, stay domain.StayInterval) (int, error) {
	stays, err := r.stays(ctx)
	if err != nil {
		return 0, err
	}
	list := make([]domain.StayInterval, 0, len(stays))
	for _, s := range stays {
		list = append(list, s)
	}
	return peakOverlap(list, stay), nil
}

func (r *Redis) TryReserveInterval(ctx context.Context, poolSize int, reservationID string, stay domain.StayInterval) (bool, error) {
	n, err := reserveIntervalScript.Run(ctx, r.client, []string{r.staysKey()},
		poolSize, reservationID, stay.CheckIn.Unix(), stay.CheckOut.Unix()).Int()
	if err != nil {
		return false, fmt.Errorf("reserve stay %s: %w", reservationID, err)
	}
	return n == 1, nil
}

func (r *Redis) ReleaseInterval(ctx context.Context, reservationID string) error {
	if err := r.client.HDel(ctx, r.staysKey(), reservationID).Err(); err != nil {
		return fmt.Errorf("release stay %s: %w", reservationID, err)
	}
	return nil
}

// Rebuild drops every counter and stay and writes the derived state in one
// MULTI/EXEC block.
func (r *Redis) Rebuild(ctx context.Context, st domain.OccupancyState) error {
	known, err := r.client.SMembers(ctx, r.slotSetKey()).Result()
	if err != nil {
		return fmt.Errorf("list slot keys: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(known) > 0 {
			pipe.Del(ctx, known...)
		}
		pipe.Del(ctx, r.slotSetKey(), r.staysKey())
		for key, n := range st.Slots {
			pipe.Set(ctx, r.slotKey(key), n, 0)
			pipe.SAdd(ctx, r.slotSetKey(), r.slotKey(key))
		}
		for id, stay := range st.Stays {
			pipe.HSet(ctx, r.staysKey(), id, encodeStay(stay))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	return nil
}

func (r *Redis) State(ctx context.Context) (domain.OccupancyState, error) {
	st := domain.NewOccupancyState()

	keys, err := r.client.SMembers(ctx, r.slotSetKey()).Result()
	if err != nil {
		return st, fmt.Errorf("list slot keys: %w", err)
	}
	if len(keys) > 0 {
		vals, err := r.client.MGet(ctx, keys...).Result()
		if err != nil {
			return st, fmt.Errorf("load slot counters: %w", err)
		}
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return st, fmt.Errorf("slot counter %s: %w", keys[i], err)
			}
			if n > 0 {
				st.Slots[strings.TrimPrefix(keys[i], r.slotKey(""))] = n
			}
		}
	}

	stays, err := r.stays(ctx)
	if err != nil {
		return st, err
	}
	st.Stays = stays
	return st, nil
}

func encodeStay(s domain.StayInterval) string {
	return strconv.FormatInt(s.CheckIn.Unix(), 10) + ":" + strconv.FormatInt(s.CheckOut.Unix(), 10)
}

func decodeStay(v string) (domain.StayInterval, error) {
	in, out, ok := strings.Cut(v, ":")
	if !ok {
		return domain.StayInterval{}, fmt.Errorf("malformed stay %q", v)
	}
	a, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		return domain.StayInterval{}, err
	}
	b, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return domain.StayInterval{}, err
	}
	return domain.StayInterval{CheckIn: time.Unix(a, 0).UTC(), CheckOut: time.Unix(b, 0).UTC()}, nil
}
