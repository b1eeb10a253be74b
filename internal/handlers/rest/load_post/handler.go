package load_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var loadCreateDTO dto.LoadCreate
	if err := json.NewDecoder(r.Body).Decode(&loadCreateDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	loadEntity := entities.Load{
		TransporterID:   userID,
		MaterialType:    entities.MaterialType(loadCreateDTO.MaterialType),
		Weight:          loadCreateDTO.Weight,
		Source:          loadCreateDTO.Source.ToDomain(),
		Destination:     loadCreateDTO.Destination.ToDomain(),
		VehicleBodyType: entities.VehicleBodyType(loadCreateDTO.VehicleBodyType),
		VehicleType:     entities.VehicleType(loadCreateDTO.VehicleType),
		NumberOfWheels:  loadCreateDTO.NumberOfWheels,
		OfferedAmount:   loadCreateDTO.OfferedAmount.ToDomain(),
		WhenNeeded:      entities.UrgencyType(loadCreateDTO.WhenNeeded),
		ScheduledAt:     loadCreateDTO.ScheduledAt,
	}

	created, err := h.service.CreateLoad(r.Context(), loadEntity)
	if err != nil {
		switch {
		case errors.Is(err, load.ErrMissingRequiredFields),
			errors.Is(err, load.ErrInvalidMaterialType),
			errors.Is(err, load.ErrInvalidVehicleType),
			errors.Is(err, load.ErrInvalidBodyType),
			errors.Is(err, load.ErrInvalidAmount),
			errors.Is(err, load.ErrInvalidCoordinates),
			errors.Is(err, load.ErrInvalidUrgency),
			errors.Is(err, load.ErrScheduleInPast):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.LoadFromDomain(*created))
}
