package truck_put

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

	var truckUpdateDTO dto.TruckUpdate
	if err := json.NewDecoder(r.Body).Decode(&truckUpdateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	modify := toModify(truckID, truckUpdateDTO)

	updated, err := h.service.UpdateTruck(r.Context(), userID, modify)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrMissingRequiredFields),
			errors.Is(err, truck.ErrInvalidVehicleType),
			errors.Is(err, truck.ErrInvalidBodyType),
			errors.Is(err, truck.ErrInvalidCoordinates),
			errors.Is(err, truck.ErrInvalidCapacity):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, truck.ErrTruckNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, truck.ErrNotTruckOwner):
			respond.Error(w, h.log, http.StatusForbidden, err.Error())
		case errors.Is(err, truck.ErrDuplicateTruckNumber):
			respond.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.TruckFromDomain(*updated))
}

func toModify(truckID string, in dto.TruckUpdate) entities.TruckModify {
	modify := entities.TruckModify{
		ID:          &truckID,
		TruckPermit: in.TruckPermit,
		TruckNumber: in.TruckNumber,
		Capacity:    in.Capacity,
		Tyres:       in.Tyres,
		RCImage:     in.RCImage,
	}
	if in.Location != nil {
		modify.Location = pointer.To(in.Location.ToDomain())
	}
	if in.VehicleBodyType != nil {
		modify.VehicleBodyType = pointer.To(entities.VehicleBodyType(*in.VehicleBodyType))
	}
	if in.TruckType != nil {
		modify.TruckType = pointer.To(entities.VehicleType(*in.TruckType))
	}
	if in.TruckBodyType != nil {
		modify.TruckBodyType = pointer.To(entities.TruckBodyType(*in.TruckBodyType))
	}
	return modify
}
