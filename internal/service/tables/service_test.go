package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/TableTime-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTableRepo struct {
	tables map[int64]*domain.Table
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[int64]*domain.Table)}
}

func (f *fakeTableRepo) Create(_ context.Context, t *domain.Table) (*domain.Table, error) {
	if _, exists := f.tables[t.ID]; exists {
		return nil, tableRepo.ErrDuplicateTable
	}
	copied := *t
	f.tables[t.ID] = &copied
	return &copied, nil
}

func (f *fakeTableRepo) ListActive(_ context.Context, minCapacity *int) ([]*domain.Table, error) {
	out := make([]*domain.Table, 0)
	for _, t := range f.tables {
		if !t.IsActive {
			continue
		}
		if minCapacity != nil && t.Capacity < *minCapacity {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTableRepo) Deactivate(_ context.Context, id int64) error {
	t, ok := f.tables[id]
	if !ok || !t.IsActive {
		return tableRepo.ErrTableNotFound
	}
	t.IsActive = false
	return nil
}

func validRequest() *CreateTableRequest {
	return &CreateTableRequest{
		ID:          5,
		Capacity:    6,
		Type:        "Terrace",
		Description: "Стол на террасе",
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeTableRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, domain.TableTypeTerrace, created.Type)
	assert.True(t, created.IsActive)

	// Номер занят
	_, err = svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateTable)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *CreateTableRequest)
	}{
		{"zero id", func(r *CreateTableRequest) { r.ID = 0 }},
		{"negative id", func(r *CreateTableRequest) { r.ID = -1 }},
		{"capacity below min", func(r *CreateTableRequest) { r.Capacity = 0 }},
		{"capacity above max", func(r *CreateTableRequest) { r.Capacity = 21 }},
		{"unknown type", func(r *CreateTableRequest) { r.Type = "Rooftop" }},
		{"lowercase type", func(r *CreateTableRequest) { r.Type = "terrace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeTableRepo(), nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListActive(t *testing.T) {
	repo := newFakeTableRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &CreateTableRequest{ID: 1, Capacity: 2, Type: "Window"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &CreateTableRequest{ID: 2, Capacity: 8, Type: "Family"})
	require.NoError(t, err)

	all, err := svc.ListActive(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	large, err := svc.ListActive(context.Background(), ptr.Ptr(6))
	require.NoError(t, err)
	require.Len(t, large, 1)
	assert.Equal(t, int64(2), large[0].ID)

	_, err = svc.ListActive(context.Background(), ptr.Ptr(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivate(t *testing.T) {
	repo := newFakeTableRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), 5))

	// Выведенный стол пропадает из выдачи, но строка остается
	active, err := svc.ListActive(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Повторная деактивация неотличима от несуществующего стола
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 5), ErrTableNotFound)
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 99), ErrTableNotFound)
}
