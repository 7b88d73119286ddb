package create_table

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableTime-ReservationService/internal/api/handlers"
	"github.com/m04kA/TableTime-ReservationService/internal/service/tables"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTable       = "некорректные параметры стола"
	msgDuplicateTable     = "стол с таким номером уже существует"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid table parameters: id=%d, error=%v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidTable)

		case errors.Is(err, tables.ErrDuplicateTable):
			h.logger.Warn("POST /tables - Duplicate table: id=%d", req.ID)
			handlers.RespondConflict(w, msgDuplicateTable)

		default:
			h.logger.Error("POST /tables - Failed to create table: id=%d, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created successfully: id=%d, capacity=%d, type=%s",
		table.ID, table.Capacity, table.Type)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainTable(table))
}
