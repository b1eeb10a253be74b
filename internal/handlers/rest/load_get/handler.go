package load_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/service/load"
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
	loadID := mux.Vars(r)["id"]

	found, err := h.service.GetLoad(r.Context(), loadID)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrLoadNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.LoadFromDomain(*found))
}
