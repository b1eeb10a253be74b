package load_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"bharatloads/internal/entities"
	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/pkg/auth"
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

	var loadUpdateDTO dto.LoadUpdate
	if err := json.NewDecoder(r.Body).Decode(&loadUpdateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	modify := toModify(loadID, loadUpdateDTO)

	updated, err := h.service.UpdateLoad(r.Context(), userID, modify)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidMaterialType),
			errors.Is(err, load.ErrInvalidVehicleType),
			errors.Is(err, load.ErrInvalidBodyType),
			errors.Is(err, load.ErrInvalidAmount),
			errors.Is(err, load.ErrInvalidCoordinates):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, load.ErrLoadNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, load.ErrNotLoadOwner):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.LoadFromDomain(*updated))
}

func toModify(loadID string, in dto.LoadUpdate) entities.LoadModify {
	modify := entities.LoadModify{
		ID:             &loadID,
		Weight:         in.Weight,
		NumberOfWheels: in.NumberOfWheels,
	}
	if in.MaterialType != nil {
		modify.MaterialType = pointer.To(entities.MaterialType(*in.MaterialType))
	}
	if in.Source != nil {
		modify.Source = pointer.To(in.Source.ToDomain())
	}
	if in.Destination != nil {
		modify.Destination = pointer.To(in.Destination.ToDomain())
	}
	if in.VehicleBodyType != nil {
		modify.VehicleBodyType = pointer.To(entities.VehicleBodyType(*in.VehicleBodyType))
	}
	if in.VehicleType != nil {
		modify.VehicleType = pointer.To(entities.VehicleType(*in.VehicleType))
	}
	if in.OfferedAmount != nil {
		modify.OfferedAmount = pointer.To(in.OfferedAmount.ToDomain())
	}
	return modify
}
