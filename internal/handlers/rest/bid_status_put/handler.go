package bid_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bharatloads/internal/entities"
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

	var statusUpdateDTO dto.BidStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateBidStatus(
		r.Context(),
		bidID,
		userID,
		entities.BidStatus(statusUpdateDTO.Status),
		statusUpdateDTO.RejectionReason,
		statusUpdateDTO.RejectionNote,
	)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrMissingRequiredFields),
			errors.Is(err, bid.ErrInvalidStatus):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, bid.ErrBidNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, bid.ErrNotOfferedTo):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		case errors.Is(err, bid.ErrBidAlreadyAccepted),
			errors.Is(err, bid.ErrBidAlreadyClosed):
			respond.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.BidFromDomain(*updated))
}
