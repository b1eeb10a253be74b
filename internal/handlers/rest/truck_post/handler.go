package truck_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var truckCreateDTO dto.TruckCreate
	if err := json.NewDecoder(r.Body).Decode(&truckCreateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	truckEntity := entities.Truck{
		OwnerID:         userID,
		TruckPermit:     truckCreateDTO.TruckPermit,
		TruckNumber:     truckCreateDTO.TruckNumber,
		Location:        truckCreateDTO.Location.ToDomain(),
		Capacity:        truckCreateDTO.Capacity,
		VehicleBodyType: entities.VehicleBodyType(truckCreateDTO.VehicleBodyType),
		TruckType:       entities.VehicleType(truckCreateDTO.TruckType),
		TruckBodyType:   entities.TruckBodyType(truckCreateDTO.TruckBodyType),
		Tyres:           truckCreateDTO.Tyres,
		RCImage:         truckCreateDTO.RCImage,
	}

	created, err := h.service.CreateTruck(r.Context(), truckEntity)
	if err != nil {
		switch {
		case errors.Is(err, truck.ErrMissingRequiredFields),
			errors.Is(err, truck.ErrInvalidVehicleType),
			errors.Is(err, truck.ErrInvalidBodyType),
			errors.Is(err, truck.ErrInvalidCoordinates),
			errors.Is(err, truck.ErrInvalidCapacity):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, truck.ErrDuplicateTruckNumber):
			respond.Error(w, h.log, http.StatusConflict, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.TruckFromDomain(*created))
}
