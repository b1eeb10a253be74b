package bids_search_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"

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

	filter, err := parseFilter(r, userID)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	bids, err := h.service.SearchBids(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bid.ErrMissingRequiredFields):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.BidsFromDomain(bids))
}

func parseFilter(r *http.Request, userID string) (entities.BidFilter, error) {
	query := r.URL.Query()
	filter := entities.BidFilter{BidderID: userID}

	if v := query.Get("status"); v != "" {
		filter.Status = pointer.To(entities.BidStatus(v))
	}
	if v := query.Get("bid_type"); v != "" {
		filter.BidType = pointer.To(entities.BidType(v))
	}
	if v := query.Get("min_amount"); v != "" {
		minAmount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return entities.BidFilter{}, errors.New("invalid min_amount")
		}
		filter.MinAmount = &minAmount
	}
	if v := query.Get("max_amount"); v != "" {
		maxAmount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return entities.BidFilter{}, errors.New("invalid max_amount")
		}
		filter.MaxAmount = &maxAmount
	}
	if v := query.Get("material_type"); v != "" {
		filter.MaterialType = pointer.To(entities.MaterialType(v))
	}
	if v := query.Get("source"); v != "" {
		filter.Source = &v
	}
	if v := query.Get("destination"); v != "" {
		filter.Destination = &v
	}

	return filter, nil
}
