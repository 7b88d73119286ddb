package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/pkg/ptr"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) ListActive(_ context.Context, minCapacity *int) ([]*domain.Table, error) {
	out := make([]*domain.Table, 0, len(f.tables))
	for _, t := range f.tables {
		if minCapacity != nil && t.Capacity < *minCapacity {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetActiveByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.Date.Equal(date) && r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

var testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func testHall() []*domain.Table {
	return []*domain.Table{
		{ID: 1, Capacity: 2, Type: domain.TableTypeWindow, IsActive: true},
		{ID: 3, Capacity: 4, Type: domain.TableTypeCenter, IsActive: true},
		{ID: 6, Capacity: 8, Type: domain.TableTypeFamily, IsActive: true},
	}
}

func reservation(tableID int64, slot types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		TableID: tableID,
		Date:    testDate,
		Time:    slot,
		Status:  status,
	}
}

func tableIDs(tables []*domain.Table) []int64 {
	ids := make([]int64, 0, len(tables))
	for _, t := range tables {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestExecute_SingleSlot(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{
			reservation(3, "19:00", domain.StatusConfirmed),
			reservation(6, "19:00", domain.StatusPending),
			reservation(1, "12:00", domain.StatusConfirmed), // другой слот, не мешает
		}},
		&fakeTableRepo{tables: testHall()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDate,
		Time: ptr.Ptr(types.TimeString("19:00")),
	})
	require.NoError(t, err)

	// pending занимает слот наравне с confirmed
	assert.Equal(t, []int64{1}, tableIDs(resp.AvailableTables))
	assert.Empty(t, resp.BySlot)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{
			reservation(3, "19:00", domain.StatusCancelled),
			reservation(1, "19:00", domain.StatusCompleted),
		}},
		&fakeTableRepo{tables: testHall()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDate,
		Time: ptr.Ptr(types.TimeString("19:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3, 6}, tableIDs(resp.AvailableTables))
}

func TestExecute_FullDayGrid(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: []*domain.Reservation{
			reservation(3, "19:00", domain.StatusConfirmed),
		}},
		&fakeTableRepo{tables: testHall()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	// По записи на каждый слот сетки в её порядке
	require.Len(t, resp.BySlot, len(domain.TimeSlots))
	for i, slot := range domain.TimeSlots {
		assert.Equal(t, slot, resp.BySlot[i].Slot)
	}

	bySlot := make(map[types.TimeString][]int64)
	for _, st := range resp.BySlot {
		bySlot[st.Slot] = tableIDs(st.Tables)
	}

	assert.Equal(t, []int64{1, 6}, bySlot["19:00"])
	assert.Equal(t, []int64{1, 3, 6}, bySlot["19:30"])
	assert.Equal(t, []int64{1, 3, 6}, bySlot["12:00"])
}

func TestExecute_MinCapacityFilter(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{},
		&fakeTableRepo{tables: testHall()},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        testDate,
		Time:        ptr.Ptr(types.TimeString("20:00")),
		MinCapacity: ptr.Ptr(6),
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{6}, tableIDs(resp.AvailableTables))
}

func TestExecute_EmptyHallIsNotAnError(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{},
		&fakeTableRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDate,
		Time: ptr.Ptr(types.TimeString("12:00")),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableTables)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeTableRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = uc.Execute(context.Background(), &Request{
		Date: testDate,
		Time: ptr.Ptr(types.TimeString("15:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = uc.Execute(context.Background(), &Request{
		Date:        testDate,
		MinCapacity: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
