package trucks_nearby_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"

	"bharatloads/internal/entities"
	"bharatloads/internal/handlers/rest/dto"
	"bharatloads/internal/handlers/rest/respond"
	"bharatloads/internal/service/geosearch"
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
	query, err := parseQuery(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	trucks, page, err := h.service.NearbyTrucks(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, geosearch.ErrMissingCoordinates),
			errors.Is(err, geosearch.ErrCoordinatesOutOfRange),
			errors.Is(err, geosearch.ErrInvalidRadius):
			respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respond.Page(w, h.log, http.StatusOK, dto.NearbyTrucksFromDomain(trucks), dto.PageInfoFromDomain(page))
}

func parseQuery(r *http.Request) (geosearch.TrucksQuery, error) {
	values := r.URL.Query()
	var q geosearch.TrucksQuery

	latRaw, lonRaw := values.Get("latitude"), values.Get("longitude")
	if latRaw != "" || lonRaw != "" {
		lat, err := strconv.ParseFloat(latRaw, 64)
		if err != nil {
			return geosearch.TrucksQuery{}, errors.New("invalid latitude")
		}
		lon, err := strconv.ParseFloat(lonRaw, 64)
		if err != nil {
			return geosearch.TrucksQuery{}, errors.New("invalid longitude")
		}
		q.Center = &geosearch.Coordinates{Latitude: lat, Longitude: lon}
	}

	if v := values.Get("radius_km"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return geosearch.TrucksQuery{}, errors.New("invalid radius_km")
		}
		q.RadiusKm = radius
	}

	if v := values.Get("truck_type"); v != "" {
		q.Filter.TruckType = pointer.To(entities.VehicleType(v))
	}
	if v := values.Get("truck_body_type"); v != "" {
		q.Filter.TruckBodyType = pointer.To(entities.TruckBodyType(v))
	}
	if v := values.Get("vehicle_body_type"); v != "" {
		q.Filter.VehicleBodyType = pointer.To(entities.VehicleBodyType(v))
	}

	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return geosearch.TrucksQuery{}, errors.New("invalid page")
		}
		q.Page = page
	}
	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return geosearch.TrucksQuery{}, errors.New("invalid limit")
		}
		q.Limit = limit
	}

	return q, nil
}
