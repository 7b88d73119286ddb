package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
	"github.com/m04kA/TableTime-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями: чтение, отмена,
// административная смена статуса и периодическое завершение устаревших
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID вместе со снапшотом стола
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res, s.resolveTable(ctx, res.TableID)), nil
}

// List получает бронирования с фильтрацией по дате, статусу и email гостя
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, date=%v, status=%v, email=%v",
		req.Date, req.Status, req.Email)

	filter := domain.ReservationsFilter{
		Date:  req.Date,
		Email: req.Email,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return s.toListResponse(ctx, reservations), nil
}

// GetUserReservations получает историю бронирований пользователя
// При upcoming=true оставляет только активные бронирования с сегодняшней даты
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: user=%d, status=%v, upcoming=%t",
		req.UserID, req.Status, req.Upcoming)

	filter := domain.ReservationsFilter{
		UserID: &req.UserID,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if req.Upcoming {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		filter.FromDate = &today
		filter.OnlyActive = true
		filter.Status = nil
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	return s.toListResponse(ctx, reservations), nil
}

// Cancel отменяет бронирование
// Повторная отмена отклоняется с ErrAlreadyCancelled, отмена из терминального
// статуса (completed, no-show) — с ErrCannotCancel
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if res.IsCancelled() {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}
	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
		return nil, ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to re-read reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - re-read error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return models.FromDomainReservation(cancelled, s.resolveTable(ctx, cancelled.TableID)), nil
}

// UpdateStatus административно меняет статус бронирования
// Допустимы только переходы вперед по статусной машине
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !res.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for reservation id=%d",
			res.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, newStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to re-read reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - re-read error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return models.FromDomainReservation(updated, s.resolveTable(ctx, updated.TableID)), nil
}

// SweepExpired завершает устаревшие confirmed-бронирования
// Переводятся бронирования с датой строго раньше (asOf - 1 день);
// сравнивается только календарная дата, без времени слота.
// Идемпотентна: повторный запуск с тем же asOf ничего не меняет
func (s *Service) SweepExpired(ctx context.Context, asOf time.Time) (int64, error) {
	cutoff := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -1)

	count, err := s.reservationRepo.CompleteExpired(ctx, cutoff)
	if err != nil {
		s.logger.Error("SweepExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepExpired - repository error: %v", ErrInternal, err)
	}

	s.metrics.AddSweepTransitions(count)
	s.logger.Info("SweepExpired: retired %d confirmed reservations before %s",
		count, cutoff.Format(domain.DateFormat))
	return count, nil
}

// Вспомогательные методы

// resolveTable подгружает снапшот стола; ошибка разрешения не фатальна
func (s *Service) resolveTable(ctx context.Context, tableID int64) *domain.Table {
	t, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		if !errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Error("resolveTable: failed to get table id=%d: %v", tableID, err)
		}
		return nil
	}
	return t
}

// toListResponse конвертирует бронирования в список DTO со снапшотами столов
// Снапшоты кэшируются в пределах одного запроса, чтобы не ходить в БД на каждую строку
func (s *Service) toListResponse(ctx context.Context, reservations []*domain.Reservation) *models.ReservationListResponse {
	tableCache := make(map[int64]*domain.Table)

	resp := &models.ReservationListResponse{
		Reservations: make([]models.ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		t, ok := tableCache[res.TableID]
		if !ok {
			t = s.resolveTable(ctx, res.TableID)
			tableCache[res.TableID] = t
		}
		if converted := models.FromDomainReservation(res, t); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}
