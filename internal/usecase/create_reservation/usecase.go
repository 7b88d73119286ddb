package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TableTime-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/TableTime-ReservationService/internal/infra/storage/table"
)

// UseCase use case создания бронирования — единственное место,
// где корректность не может быть рекомендательной: нарушение атомарности
// здесь означает двойное бронирование стола
type UseCase struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	requireApproval bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// requireApproval: если true, новые бронирования создаются в статусе pending
// и требуют подтверждения администратором; иначе сразу confirmed
func NewUseCase(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	metrics Metrics,
	requireApproval bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		requireApproval: requireApproval,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// а частичный уникальный индекс на (table_id, date, time) для активных
// статусов служит последним рубежом: даже если два конкурентных запроса
// одновременно увидят слот свободным, вставку завершит ровно один —
// второй получит ErrSlotTaken. Повторов внутри usecase нет: конфликт
// означает, что слот действительно занят, выбор нового слота за клиентом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: table=%d, date=%s, time=%s, partySize=%d",
		req.TableID, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	// 1. Валидация входных данных по полям
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем принадлежность времени сетке слотов
	if err := validateSlot(req); err != nil {
		uc.logger.Warn("CreateReservation: time=%s is not in the slot grid", req.Time)
		return nil, err
	}

	// 3. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем активный стол
	tbl, err := uc.tableRepo.GetActiveByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// 5. Проверяем вместимость
	if err := validateCapacity(tbl, req.PartySize); err != nil {
		uc.logger.Warn("CreateReservation: capacity check failed for table id=%d: %v", req.TableID, err)
		return nil, err
	}

	status := domain.StatusConfirmed
	if uc.requireApproval {
		status = domain.StatusPending
	}

	var result *domain.Reservation

	// 6. Атомарный check-and-insert в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перечитываем слот с блокировкой (FOR UPDATE) — тот же запрос,
		// которым пользуется калькулятор доступности
		_, err := uc.reservationRepo.GetActiveBySlot(txCtx, req.TableID, req.Date, req.Time)
		if err == nil {
			uc.logger.Warn("CreateReservation: slot taken, table=%d, date=%s, time=%s",
				req.TableID, req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotTaken
		}
		if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		// 6.2. Слот свободен — создаем бронирование
		res := &domain.Reservation{
			TableID:   req.TableID,
			UserID:    req.UserID,
			Date:      req.Date,
			Time:      req.Time,
			PartySize: req.PartySize,
			Customer: domain.Customer{
				Name:  req.Customer.Name,
				Email: req.Customer.Email,
				Phone: req.Customer.Phone,
			},
			Status: status,
			Notes:  req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			// Уникальный индекс отбил проигравшую вставку конкурентной гонки
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: lost insert race, table=%d, date=%s, time=%s",
					req.TableID, req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.metrics.IncReservationConflict("slot_taken")
		}
		return nil, err
	}

	uc.metrics.IncReservationCreated(string(result.Status))
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, status=%s",
		result.ID, result.Status)

	return &Response{
		Reservation: result,
		Table:       tbl,
	}, nil
}
