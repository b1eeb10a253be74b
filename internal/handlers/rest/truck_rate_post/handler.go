package truck_rate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bharatloads/internal/entities"
	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
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
	truckID := mux.Vars(r)["id"]

	var rateDTO dto.TruckRate
	if err := json.NewDecoder(r.Body).Decode(&rateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	ratingEntity := entities.TruckRating{
		TruckID: truckID,
		Rating:  rateDTO.Rating,
		Comment: rateDTO.Comment,
		RatedBy: userID,
	}

	created, err := h.service.RateTruck(r.Context(), ratingEntity)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrMissingRequiredFields),
			errors.Is(err, truck.ErrInvalidRating):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, truck.ErrTruckNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, truck.ErrOwnTruckRating):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.TruckRatingFromDomain(*created))
}
