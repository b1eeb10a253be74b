package loads_active_get

import (
	"net/http"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	loads, err := h.service.ActiveLoads(r.Context())
	if err != nil {
		respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.LoadsFromDomain(loads))
}
