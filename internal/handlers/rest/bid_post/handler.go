package bid_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bharatloads/internal/entities"
	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
	"bharatloads/internal/service/bid"
	"bharatloads/internal/service/load"
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
	userID, err := auth.UserID(r.Context())
	if err != nil {
		respond.Error(w, h.log, http.StatusUnauthorized, "authentication required")
		return
	}

	var bidCreateDTO dto.BidCreate
	if err := json.NewDecoder(r.Body).Decode(&bidCreateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	bidCreateEntity := entities.BidCreate{
		BidderID:     userID,
		BidType:      entities.BidType(bidCreateDTO.BidType),
		LoadID:       bidCreateDTO.LoadID,
		TruckID:      bidCreateDTO.TruckID,
		BiddedAmount: bidCreateDTO.BiddedAmount.ToDomain(),
	}

	created, err := h.service.CreateBid(r.Context(), bidCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrMissingRequiredFields),
			errors.Is(err, bid.ErrInvalidBidType),
			errors.Is(err, bid.ErrInvalidAmount):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, load.ErrLoadNotFound),
			errors.Is(err, truck.ErrTruckNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, bid.ErrWrongSideBidder),
			errors.Is(err, bid.ErrOwnEntityBid):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.BidFromDomain(*created))
}
