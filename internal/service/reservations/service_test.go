package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/TableTime-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/TableTime-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type sweepCounter struct {
	total int64
}

func (c *sweepCounter) AddSweepTransitions(count int64) { c.total += count }

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	if t, ok := f.tables[id]; ok {
		return t, nil
	}
	return nil, tableRepo.ErrTableNotFound
}

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := f.reservations[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if filter.UserID != nil && (r.UserID == nil || *r.UserID != *filter.UserID) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.OnlyActive && !r.IsActive() {
			continue
		}
		if filter.FromDate != nil && r.Date.Before(*filter.FromDate) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	now := time.Now()
	r.Status = domain.StatusCancelled
	r.CancelledAt = &now
	return nil
}

func (f *fakeReservationRepo) CompleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for _, r := range f.reservations {
		if r.Status == domain.StatusConfirmed && r.Date.Before(cutoff) {
			r.Status = domain.StatusCompleted
			count++
		}
	}
	return count, nil
}

func seedReservation(id int64, status domain.ReservationStatus, date time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		TableID:   3,
		Date:      date,
		Time:      "19:00",
		PartySize: 2,
		Customer:  domain.Customer{Name: "Анна Петрова", Email: "anna@example.com"},
		Status:    status,
	}
}

func newTestService(resRepo *fakeReservationRepo, metrics Metrics) *Service {
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{
		3: {ID: 3, Capacity: 4, Type: domain.TableTypeCenter, IsActive: true},
	}}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return NewService(resRepo, tblRepo, metrics, nopLogger{})
}

var futureDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestGetByID(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: seedReservation(1, domain.StatusConfirmed, futureDate),
	}}
	svc := newTestService(resRepo, nil)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2026-09-10", resp.Date)
	require.NotNil(t, resp.Table)
	assert.Equal(t, int64(3), resp.Table.ID)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: seedReservation(1, domain.StatusConfirmed, futureDate),
	}}
	svc := newTestService(resRepo, nil)

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.NotNil(t, resp.CancelledAt)

	// Повторная отмена — явный отказ, не тихий успех
	_, err = svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_TerminalStatus(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: seedReservation(1, domain.StatusCompleted, futureDate),
		2: seedReservation(2, domain.StatusNoShow, futureDate),
	}}
	svc := newTestService(resRepo, nil)

	_, err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: seedReservation(1, domain.StatusPending, futureDate),
	}}
	svc := newTestService(resRepo, nil)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// Назад в pending статусная машина не ходит
	_, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "banquet"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations_Upcoming(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: seedReservation(1, domain.StatusConfirmed, today.AddDate(0, 0, 3)),
		2: seedReservation(2, domain.StatusConfirmed, today.AddDate(0, 0, -3)),
		3: seedReservation(3, domain.StatusCancelled, today.AddDate(0, 0, 3)),
	}}
	for _, r := range resRepo.reservations {
		r.UserID = ptr.Ptr(int64(42))
	}
	svc := newTestService(resRepo, nil)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:   42,
		Upcoming: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestSweepExpired(t *testing.T) {
	asOf := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		// Два дня назад — завершается
		1: seedReservation(1, domain.StatusConfirmed, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)),
		// Вчера — в пределах суточного зазора, не трогаем
		2: seedReservation(2, domain.StatusConfirmed, time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)),
		// Сегодня — не трогаем
		3: seedReservation(3, domain.StatusConfirmed, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)),
		// Прошедшее, но отмененное — статус не меняется
		4: seedReservation(4, domain.StatusCancelled, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
	}}
	metrics := &sweepCounter{}
	svc := newTestService(resRepo, metrics)

	count, err := svc.SweepExpired(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, int64(1), metrics.total)

	assert.Equal(t, domain.StatusCompleted, resRepo.reservations[1].Status)
	assert.Equal(t, domain.StatusConfirmed, resRepo.reservations[2].Status)
	assert.Equal(t, domain.StatusConfirmed, resRepo.reservations[3].Status)
	assert.Equal(t, domain.StatusCancelled, resRepo.reservations[4].Status)

	// Идемпотентность: повторный запуск ничего не меняет
	count, err = svc.SweepExpired(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
