package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableTime-ReservationService/internal/api/handlers"
	"github.com/m04kA/TableTime-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/TableTime-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/TableTime-ReservationService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgTableNotFound      = "стол не найден"
	msgCapacityExceeded   = "размер компании превышает вместимость стола"
	msgInvalidSlot        = "время не входит в сетку доступных слотов"
	msgDateInPast         = "дата бронирования не может быть в прошлом"
	msgSlotTaken          = "стол уже забронирован на выбранное время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// ID пользователя опционален: гости бронируют без аккаунта
	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Создаем бронирование
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: table_id=%d, party_size=%d",
				req.TableID, req.PartySize)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: table_id=%d, date=%s, time=%s",
				req.TableID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: table_id=%d, error=%v",
				req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%d, table_id=%d, date=%s, time=%s, status=%s",
		result.Reservation.ID, result.Reservation.TableID, req.Date, req.Time, result.Reservation.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
