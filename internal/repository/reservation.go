package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, service_type, customer_ref, slot_date, slot_start_minutes, slot_minutes,
       check_in, check_out, status, payload, total_price, created_at, updated_at, cancelled_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	var (
		slotDate   sql.NullTime
		slotStart  sql.NullInt64
		slotLength sql.NullInt64
		checkIn    sql.NullTime
		checkOut   sql.NullTime
	)
	if res.Slot != nil {
		slotDate = sql.NullTime{Time: res.Slot.Date, Valid: true}
		slotStart = sql.NullInt64{Int64: int64(res.Slot.Start / time.Minute), Valid: true}
		slotLength = sql.NullInt64{Int64: int64(res.Slot.Duration / time.Minute), Valid: true}
	}
	if res.Stay != nil {
		checkIn = sql.NullTime{Time: res.Stay.CheckIn, Valid: true}
		checkOut = sql.NullTime{Time: res.Stay.CheckOut, Valid: true}
	}
	payload := res.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	query := `INSERT INTO reservations (id, service_type, customer_ref, slot_date, slot_start_minutes, slot_minutes,
                                  check_in, check_out, status, payload, total_price, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.ServiceType, res.CustomerRef, slotDate, slotStart, slotLength,
		checkIn, checkOut, res.Status, string(payload), res.TotalPrice, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: duplicate reservation id %s", domain.ErrValidation, res.ID)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrReservationNotFound
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return res, nil
}

// Transition updates the status only when the stored status equals from, so
// concurrent cancels cannot both succeed.
func (r *ReservationRepository) Transition(ctx context.Context, id string, from, to domain.ReservationStatus) (*domain.Reservation, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false, domain.ErrReservationNotFound
	}

	query := `UPDATE reservations
              SET status = $3::text,
                  updated_at = now(),
                  cancelled_at = CASE WHEN $3::text = 'cancelled' THEN now() ELSE cancelled_at END
              WHERE id = $1 AND status = $2
              RETURNING ` + reservationColumns
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return nil, false, fmt.Errorf("update reservation status: %w", err)
	}

	res, err := scanReservation(row)
	switch {
	case err == nil:
		return res, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return nil, false, fmt.Errorf("scan reservation: %w", err)
	}

	res, err = r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return res, false, nil
}

func (r *ReservationRepository) ListActive(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
              FROM reservations
              WHERE status = ANY($1)
              ORDER BY created_at`

	statuses := make([]string, len(domain.ActiveStatuses))
	for i, st := range domain.ActiveStatuses {
		statuses[i] = string(st)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	query, args := listQuery(filter)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// listQuery builds the filtered SELECT. Every placeholder is compared with a
// single column type; lib/pq sends parameters untyped and Postgres rejects a
// placeholder used as two types.
func listQuery(filter domain.ReservationFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ServiceType != "" {
		where = append(where, "service_type = "+arg(string(filter.ServiceType)))
	}
	if filter.Status != "" {
		where = append(where, "status = "+arg(string(filter.Status)))
	}
	if filter.CustomerRef != "" {
		where = append(where, "customer_ref = "+arg(filter.CustomerRef))
	}
	if filter.Date != nil {
		day := domain.CivilDate(*filter.Date)
		where = append(where, fmt.Sprintf("(slot_date = %s::date OR (check_in < %s AND check_out > %s))",
			arg(day.Format(domain.DateLayout)), arg(day.Add(24*time.Hour)), arg(day)))
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY COALESCE(check_in, slot_date + make_interval(mins => slot_start_minutes)), created_at`
	if filter.Limit > 0 {
		query += ` LIMIT ` + arg(filter.Limit)
	}
	return query, args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var (
		res         domain.Reservation
		slotDate    sql.NullTime
		slotStart   sql.NullInt64
		slotLength  sql.NullInt64
		checkIn     sql.NullTime
		checkOut    sql.NullTime
		payload     []byte
		cancelledAt sql.NullTime
	)
	if err := s.Scan(
		&res.ID, &res.ServiceType, &res.CustomerRef, &slotDate, &slotStart, &slotLength,
		&checkIn, &checkOut, &res.Status, &payload, &res.TotalPrice,
		&res.CreatedAt, &res.UpdatedAt, &cancelledAt,
	); err != nil {
		return nil, err
	}

	if slotDate.Valid {
		slot := domain.NewTimeSlot(slotDate.Time,
			time.Duration(slotStart.Int64)*time.Minute,
			time.Duration(slotLength.Int64)*time.Minute)
		res.Slot = &slot
	}
	if checkIn.Valid && checkOut.Valid {
		res.Stay = &domain.StayInterval{CheckIn: checkIn.Time.UTC(), CheckOut: checkOut.Time.UTC()}
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		res.CancelledAt = &t
	}
	res.Payload = payload
	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
