package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	"github.com/m04kA/TableTime-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/TableTime-ReservationService/pkg/txmanager"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// tableColumns полный список колонок таблицы tables
var tableColumns = []string{
	"id",
	"capacity",
	"type",
	"is_active",
	"description",
}

// Repository репозиторий для работы с каталогом столов
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол
// Номер стола назначается администратором и должен быть уникален
func (r *Repository) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns("id", "capacity", "type", "is_active", "description").
		Values(t.ID, t.Capacity, t.Type, t.IsActive, t.Description).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTable
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает стол по номеру вне зависимости от активности
// Используется для подгрузки снапшота стола к историческим бронированиям:
// стол мог быть выведен из зала уже после создания бронирования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetActiveByID получает активный стол по номеру
// Возвращает ErrTableNotFound и для несуществующего, и для выведенного из зала стола
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Table, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "is_active": true})
}

// ListActive получает активные столы, отсортированные по номеру
// Если minCapacity задан, оставляет только столы с вместимостью не меньше указанной
func (r *Repository) ListActive(ctx context.Context, minCapacity *int) ([]*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"is_active": true})

	if minCapacity != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"capacity": *minCapacity})
	}

	selectBuilder = selectBuilder.OrderBy("id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Capacity, &t.Type, &t.IsActive, &t.Description); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// Deactivate логически удаляет стол (is_active = false)
// Физическое удаление запрещено: бронирования ссылаются на стол по номеру
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// getOne получает один стол по условию
func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Table, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Table
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Capacity,
		&t.Type,
		&t.IsActive,
		&t.Description,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan table: %v", ErrScanRow, err)
	}

	return &t, nil
}

// isUniqueViolation проверяет, что ошибка — нарушение уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
