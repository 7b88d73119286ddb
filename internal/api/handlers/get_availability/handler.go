package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableTime-ReservationService/internal/api/handlers"
	getAvailability "github.com/m04kA/TableTime-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgMissingDate  = "параметр date обязателен"
	msgInvalidSlot  = "время не входит в сетку доступных слотов"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ParseQuery(query.Get("date"), query.Get("time"), query.Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMissingDate):
			h.logger.Warn("GET /availability - Missing date parameter")
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, getAvailability.ErrInvalidSlot):
			h.logger.Warn("GET /availability - Invalid slot: time=%s", query.Get("time"))
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: date=%s, error=%v",
				query.Get("date"), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability computed: date=%s, time=%s",
		query.Get("date"), query.Get("time"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
