package create_reservation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/TableTime-ReservationService/pkg/ptr"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

// Тестовые фейки

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (p fixedTime) Now() time.Time { return p.now }

type countingMetrics struct {
	mu        sync.Mutex
	created   map[string]int
	conflicts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		created:   make(map[string]int),
		conflicts: make(map[string]int),
	}
}

func (m *countingMetrics) IncReservationCreated(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[status]++
}

func (m *countingMetrics) IncReservationConflict(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts[reason]++
}

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func (f *fakeTableRepo) GetActiveByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok || !t.IsActive {
		return nil, tableRepo.ErrTableNotFound
	}
	return t, nil
}

// fakeReservationRepo хранит активные бронирования под мьютексом и,
// как частичный уникальный индекс, пропускает первую вставку на ключ
type fakeReservationRepo struct {
	mu     sync.Mutex
	nextID int64
	active map[string]*domain.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{active: make(map[string]*domain.Reservation)}
}

func slotKey(tableID int64, date time.Time, slot types.TimeString) string {
	return fmt.Sprintf("%d|%s|%s", tableID, date.Format(domain.DateFormat), slot)
}

func (f *fakeReservationRepo) GetActiveBySlot(_ context.Context, tableID int64, date time.Time, slot types.TimeString) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res, ok := f.active[slotKey(tableID, date, slot)]; ok {
		return res, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(res.TableID, res.Date, res.Time)
	if _, taken := f.active[key]; taken {
		return nil, reservationRepo.ErrSlotTaken
	}

	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.active[key] = &created
	return &created, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Хелперы

func testTable() *domain.Table {
	return &domain.Table{ID: 3, Capacity: 4, Type: domain.TableTypeCenter, IsActive: true}
}

func testRequest() *Request {
	return &Request{
		TableID:   3,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:      "19:00",
		PartySize: 2,
		Customer: Customer{
			Name:  "Анна Петрова",
			Email: "anna@example.com",
		},
	}
}

func newTestUseCase(resRepo ReservationRepository, tblRepo TableRepository, metrics Metrics, requireApproval bool) *UseCase {
	uc := NewUseCase(resRepo, tblRepo, passthroughTxManager{}, metrics, requireApproval, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)}
	return uc
}

// Тесты

func TestExecute_Success(t *testing.T) {
	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
	metrics := newCountingMetrics()
	uc := newTestUseCase(resRepo, tblRepo, metrics, false)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Reservation)

	assert.Equal(t, int64(1), resp.Reservation.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Reservation.Status)
	assert.Equal(t, int64(3), resp.Reservation.TableID)
	assert.Equal(t, types.TimeString("19:00"), resp.Reservation.Time)
	assert.Equal(t, "Анна Петрова", resp.Reservation.Customer.Name)
	assert.Equal(t, int64(3), resp.Table.ID)
	assert.Equal(t, 1, metrics.created["confirmed"])
}

func TestExecute_RequireApproval(t *testing.T) {
	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
	metrics := newCountingMetrics()
	uc := newTestUseCase(resRepo, tblRepo, metrics, true)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
	assert.Equal(t, 1, metrics.created["pending"])
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"zero table id", func(r *Request) { r.TableID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty time", func(r *Request) { r.Time = "" }, ErrInvalidInput},
		{"malformed time", func(r *Request) { r.Time = "19h00" }, ErrInvalidInput},
		{"party size zero", func(r *Request) { r.PartySize = 0 }, ErrInvalidInput},
		{"party size above max", func(r *Request) { r.PartySize = 21 }, ErrInvalidInput},
		{"missing customer name", func(r *Request) { r.Customer.Name = "" }, ErrInvalidInput},
		{"missing customer email", func(r *Request) { r.Customer.Email = "" }, ErrInvalidInput},
		{"malformed customer email", func(r *Request) { r.Customer.Email = "not-an-email" }, ErrInvalidInput},
		{"time outside slot grid", func(r *Request) { r.Time = "15:00" }, ErrInvalidSlot},
		{"date in the past", func(r *Request) { r.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resRepo := newFakeReservationRepo()
			tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
			uc := newTestUseCase(resRepo, tblRepo, NopMetrics{}, false)

			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_BookingTodayAllowed(t *testing.T) {
	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
	uc := newTestUseCase(resRepo, tblRepo, NopMetrics{}, false)

	// Сравниваются только календарные даты: вечерний слот сегодняшнего
	// дня бронируется даже после полудня
	req := testRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TableNotFound(t *testing.T) {
	resRepo := newFakeReservationRepo()
	inactive := testTable()
	inactive.ID = 7
	inactive.IsActive = false
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{7: inactive}}
	uc := newTestUseCase(resRepo, tblRepo, NopMetrics{}, false)

	req := testRequest()
	req.TableID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotFound)

	// Выведенный из зала стол неотличим от несуществующего
	req.TableID = 7
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
	uc := newTestUseCase(resRepo, tblRepo, NopMetrics{}, false)

	req := testRequest()
	req.PartySize = 5 // стол на 4

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_SlotTaken(t *testing.T) {
	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
	metrics := newCountingMetrics()
	uc := newTestUseCase(resRepo, tblRepo, metrics, false)

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Тот же стол, дата и слот — конфликт
	second := testRequest()
	second.Customer.Name = "Борис Иванов"
	second.Customer.Email = "boris@example.com"
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, metrics.conflicts["slot_taken"])

	// Другой слот того же дня свободен
	third := testRequest()
	third.Time = "19:30"
	_, err = uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	resRepo := newFakeReservationRepo()
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{3: testTable()}}
	metrics := newCountingMetrics()
	uc := newTestUseCase(resRepo, tblRepo, metrics, false)

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := testRequest()
			req.Customer.Email = fmt.Sprintf("guest%d@example.com", n)
			req.UserID = ptr.Ptr(int64(n + 1))
			_, errs[n] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	// Ровно одна вставка выигрывает гонку, остальные получают конфликт
	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, resRepo.active, 1)
	assert.Equal(t, 1, metrics.created["confirmed"])
}
