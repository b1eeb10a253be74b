package load_bids_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
	"bharatloads/internal/service/bid"
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
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Error(w, h.log, http.StatusUnauthorized, "authentication required")
		return
	}
	loadID := mux.Vars(r)["id"]

	bids, err := h.service.ListLoadBids(r.Context(), loadID, userID)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrLoadNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, bid.ErrNotLoadBidOwner):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.BidsFromDomain(bids))
}
