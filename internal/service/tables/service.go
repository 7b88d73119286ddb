package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
)

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	ID          int64  `json:"id"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Service сервис каталога столов: выборка для гостей,
// административное создание и логическое удаление
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// ListActive получает активные столы, отсортированные по номеру
// При заданном minCapacity оставляет только достаточно вместительные столы
func (s *Service) ListActive(ctx context.Context, minCapacity *int) ([]*domain.Table, error) {
	if minCapacity != nil && *minCapacity <= 0 {
		return nil, fmt.Errorf("%w: minCapacity must be positive", ErrInvalidInput)
	}

	tables, err := s.tableRepo.ListActive(ctx, minCapacity)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return tables, nil
}

// Create создает новый стол с административно назначенным номером
func (s *Service) Create(ctx context.Context, req *CreateTableRequest) (*domain.Table, error) {
	s.logger.Info("Create: creating table id=%d, capacity=%d, type=%s", req.ID, req.Capacity, req.Type)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	t := &domain.Table{
		ID:          req.ID,
		Capacity:    req.Capacity,
		Type:        domain.TableType(req.Type),
		IsActive:    true,
		Description: req.Description,
	}

	created, err := s.tableRepo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, tableRepo.ErrDuplicateTable) {
			s.logger.Warn("Create: table id=%d already exists", req.ID)
			return nil, ErrDuplicateTable
		}
		s.logger.Error("Create: repository error for table id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created table id=%d", created.ID)
	return created, nil
}

// Deactivate логически удаляет стол
// История бронирований стола сохраняется: они ссылаются на него по номеру
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating table id=%d", id)

	if err := s.tableRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Deactivate: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("Deactivate: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated table id=%d", id)
	return nil
}

// validateCreateRequest валидирует запрос на создание стола по полям
func validateCreateRequest(req *CreateTableRequest) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if req.Capacity < domain.MinTableCapacity || req.Capacity > domain.MaxTableCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
	}
	if !domain.IsValidTableType(domain.TableType(req.Type)) {
		return fmt.Errorf("%w: unknown table type %q", ErrInvalidInput, req.Type)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters",
			ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
