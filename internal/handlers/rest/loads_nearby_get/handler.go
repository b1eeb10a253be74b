package loads_nearby_get

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

	loads, page, err := h.service.NearbyLoads(r.Context(), query)
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

	respond.Page(w, h.log, http.StatusOK, dto.NearbyLoadsFromDomain(loads), dto.PageInfoFromDomain(page))
}

func parseQuery(r *http.Request) (geosearch.LoadsQuery, error) {
	values := r.URL.Query()
	var q geosearch.LoadsQuery

	source, err := parseCoordinates(values.Get("source_latitude"), values.Get("source_longitude"))
	if err != nil {
		return geosearch.LoadsQuery{}, err
	}
	destination, err := parseCoordinates(values.Get("destination_latitude"), values.Get("destination_longitude"))
	if err != nil {
		return geosearch.LoadsQuery{}, err
	}
	q.Source = source
	q.Destination = destination

	if v := values.Get("radius_km"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return geosearch.LoadsQuery{}, errors.New("invalid radius_km")
		}
		q.RadiusKm = radius
	}

	if v := values.Get("material_type"); v != "" {
		q.Filter.MaterialType = pointer.To(entities.MaterialType(v))
	}
	if v := values.Get("vehicle_type"); v != "" {
		q.Filter.VehicleType = pointer.To(entities.VehicleType(v))
	}
	if v := values.Get("vehicle_body_type"); v != "" {
		q.Filter.VehicleBodyType = pointer.To(entities.VehicleBodyType(v))
	}

	q.Page, q.Limit, err = parsePagination(values.Get("page"), values.Get("limit"))
	if err != nil {
		return geosearch.LoadsQuery{}, err
	}
	return q, nil
}

func parseCoordinates(latRaw, lonRaw string) (*geosearch.Coordinates, error) {
	if latRaw == "" && lonRaw == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, errors.New("invalid latitude")
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return nil, errors.New("invalid longitude")
	}
	return &geosearch.Coordinates{Latitude: lat, Longitude: lon}, nil
}

func parsePagination(pageRaw, limitRaw string) (int, int, error) {
	var page, limit int
	var err error
	if pageRaw != "" {
		if page, err = strconv.Atoi(pageRaw); err != nil {
			return 0, 0, errors.New("invalid page")
		}
	}
	if limitRaw != "" {
		if limit, err = strconv.Atoi(limitRaw); err != nil {
			return 0, 0, errors.New("invalid limit")
		}
	}
	return page, limit, nil
}
