package truck_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/service/truck"
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
	truckID := mux.Vars(r)["id"]

	found, err := h.service.GetTruck(r.Context(), truckID)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrTruckNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.TruckFromDomain(*found))
}
