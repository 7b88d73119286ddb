package list_tables

import (
	"net/http"
	"strconv"

	"github.com/m04kA/TableTime-ReservationService/internal/api/handlers"
)

const (
	msgInvalidMinCapacity = "некорректное значение minCapacity"
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

// Handle GET /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var minCapacity *int
	if raw := r.URL.Query().Get("minCapacity"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /tables - Invalid minCapacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinCapacity)
			return
		}
		minCapacity = &value
	}

	tables, err := h.service.ListActive(r.Context(), minCapacity)
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables - Tables retrieved successfully: count=%d", len(tables))
	handlers.RespondJSON(w, http.StatusOK, FromDomainTables(tables))
}
