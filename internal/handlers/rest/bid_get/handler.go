package bid_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
	"bharatloads/internal/service/bid"
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
	bidID := mux.Vars(r)["id"]

	found, err := h.service.GetBid(r.Context(), bidID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrBidNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, bid.ErrNotBidOwner):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.BidFromDomain(*found))
}
