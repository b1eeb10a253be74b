package geosearch

import (
	"context"
	"fmt"
	"sort"

	"bharatloads/internal/entities"
	"bharatloads/pkg/geodist"
	"bharatloads/pkg/logger"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Coordinates центр поиска; указатели в запросах отличают "не задано"
// от нулевой точки.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type TrucksQuery struct {
	Center   *Coordinates
	RadiusKm float64
	Filter   entities.TruckSearchFilter
	Page     int
	Limit    int
}

type LoadsQuery struct {
	Source      *Coordinates
	Destination *Coordinates
	RadiusKm    float64
	Filter      entities.LoadSearchFilter
	Page        int
	Limit       int
}

type GeoSearch struct {
	trucks TruckFinder
	loads  LoadFinder
	index  CandidateIndex // nil когда Redis не сконфигурирован
	log    logger.Logger
}

func New(trucks TruckFinder, loads LoadFinder, index CandidateIndex, log logger.Logger) *GeoSearch {
	return &GeoSearch{
		trucks: trucks,
		loads:  loads,
		index:  index,
		log:    log,
	}
}

func (s *GeoSearch) NearbyTrucks(ctx context.Context, q TrucksQuery) ([]entities.NearbyTruck, entities.PageInfo, error) {
	center, err := resolveCenter(q.Center, q.RadiusKm)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}

	var candidates []string
	if s.index != nil {
		candidates, err = s.index.TruckCandidates(ctx, center)
		if err != nil {
			s.log.Warn("geo index unavailable, falling back to sql predicate",
				logger.NewField("error", err.Error()),
			)
			candidates = nil
		}
		// индекс наполняется best-effort: пустой ответ не доказывает
		// отсутствие записей, сужать по нему нельзя
		if len(candidates) == 0 {
			candidates = nil
		}
	}

	trucks, err := s.trucks.WithinRadius(ctx, center, q.Filter, candidates)
	if err != nil {
		return nil, entities.PageInfo{}, fmt.Errorf("search trucks within radius: %w", err)
	}

	ranked := make([]entities.NearbyTruck, 0, len(trucks))
	for _, truck := range trucks {
		km := geodist.Haversine(center.Latitude, center.Longitude,
			truck.Location.Latitude, truck.Location.Longitude)
		ranked = append(ranked, entities.NearbyTruck{
			Truck:      truck,
			DistanceKm: geodist.Round1(km),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	lo, hi, page := paginate(len(ranked), q.Page, q.Limit)
	return ranked[lo:hi], page, nil
}

// NearbyLoads односторонний поиск: задан ровно один центр, source или
// destination.
func (s *GeoSearch) NearbyLoads(ctx context.Context, q LoadsQuery) ([]entities.NearbyLoad, entities.PageInfo, error) {
	if q.Source != nil && q.Destination != nil {
		return s.NearbyLoadsDualSided(ctx, q)
	}

	side := entities.MatchSource
	coords := q.Source
	if coords == nil {
		side = entities.MatchDestination
		coords = q.Destination
	}

	center, err := resolveCenter(coords, q.RadiusKm)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}

	loads, err := s.findLoads(ctx, side, center, q.Filter)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}

	ranked := rankLoads(loads, side, center)

	lo, hi, page := paginate(len(ranked), q.Page, q.Limit)
	return ranked[lo:hi], page, nil
}

// NearbyLoadsDualSided поиск по обоим концам маршрута. Приоритет
// BOTH > SOURCE > DESTINATION, внутри группы по возрастанию дистанции;
// страница нарезается после полного ранжирования.
func (s *GeoSearch) NearbyLoadsDualSided(ctx context.Context, q LoadsQuery) ([]entities.NearbyLoad, entities.PageInfo, error) {
	source, err := resolveCenter(q.Source, q.RadiusKm)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}
	destination, err := resolveCenter(q.Destination, q.RadiusKm)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}

	bySource, err := s.findLoads(ctx, entities.MatchSource, source, q.Filter)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}
	byDestination, err := s.findLoads(ctx, entities.MatchDestination, destination, q.Filter)
	if err != nil {
		return nil, entities.PageInfo{}, err
	}

	destinationHits := make(map[string]entities.Load, len(byDestination))
	for _, load := range byDestination {
		destinationHits[load.ID] = load
	}

	var both, sourceOnly, destinationOnly []entities.NearbyLoad
	seen := make(map[string]struct{}, len(bySource))

	for _, load := range bySource {
		seen[load.ID] = struct{}{}

		srcKm := geodist.Round1(geodist.Haversine(source.Latitude, source.Longitude,
			load.Source.Latitude, load.Source.Longitude))

		if _, ok := destinationHits[load.ID]; ok {
			dstKm := geodist.Round1(geodist.Haversine(destination.Latitude, destination.Longitude,
				load.Destination.Latitude, load.Destination.Longitude))
			both = append(both, entities.NearbyLoad{
				Load:                  load,
				MatchSide:             entities.MatchBoth,
				SourceDistanceKm:      &srcKm,
				DestinationDistanceKm: &dstKm,
			})
			continue
		}

		sourceOnly = append(sourceOnly, entities.NearbyLoad{
			Load:             load,
			MatchSide:        entities.MatchSource,
			SourceDistanceKm: &srcKm,
		})
	}

	for _, load := range byDestination {
		if _, ok := seen[load.ID]; ok {
			continue
		}
		dstKm := geodist.Round1(geodist.Haversine(destination.Latitude, destination.Longitude,
			load.Destination.Latitude, load.Destination.Longitude))
		destinationOnly = append(destinationOnly, entities.NearbyLoad{
			Load:                  load,
			MatchSide:             entities.MatchDestination,
			DestinationDistanceKm: &dstKm,
		})
	}

	sortBySource := func(items []entities.NearbyLoad) {
		sort.SliceStable(items, func(i, j int) bool {
			return *items[i].SourceDistanceKm < *items[j].SourceDistanceKm
		})
	}
	sortBySource(both)
	sortBySource(sourceOnly)
	sort.SliceStable(destinationOnly, func(i, j int) bool {
		return *destinationOnly[i].DestinationDistanceKm < *destinationOnly[j].DestinationDistanceKm
	})

	ranked := make([]entities.NearbyLoad, 0, len(both)+len(sourceOnly)+len(destinationOnly))
	ranked = append(ranked, both...)
	ranked = append(ranked, sourceOnly...)
	ranked = append(ranked, destinationOnly...)

	lo, hi, page := paginate(len(ranked), q.Page, q.Limit)
	return ranked[lo:hi], page, nil
}

func (s *GeoSearch) findLoads(
	ctx context.Context,
	side entities.MatchSide,
	center entities.GeoCenter,
	filter entities.LoadSearchFilter,
) ([]entities.Load, error) {
	var candidates []string
	if s.index != nil {
		var err error
		candidates, err = s.index.LoadCandidates(ctx, side, center)
		if err != nil {
			s.log.Warn("geo index unavailable, falling back to sql predicate",
				logger.NewField("side", side.String()),
				logger.NewField("error", err.Error()),
			)
			candidates = nil
		}
		// индекс наполняется best-effort: пустой ответ не доказывает
		// отсутствие записей, сужать по нему нельзя
		if len(candidates) == 0 {
			candidates = nil
		}
	}

	loads, err := s.loads.WithinRadius(ctx, side, center, filter, candidates)
	if err != nil {
		return nil, fmt.Errorf("search loads within radius: %w", err)
	}
	return loads, nil
}

func rankLoads(loads []entities.Load, side entities.MatchSide, center entities.GeoCenter) []entities.NearbyLoad {
	ranked := make([]entities.NearbyLoad, 0, len(loads))
	for _, load := range loads {
		point := load.Source
		if side == entities.MatchDestination {
			point = load.Destination
		}
		km := geodist.Round1(geodist.Haversine(center.Latitude, center.Longitude,
			point.Latitude, point.Longitude))

		item := entities.NearbyLoad{Load: load, MatchSide: side}
		if side == entities.MatchDestination {
			item.DestinationDistanceKm = &km
		} else {
			item.SourceDistanceKm = &km
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return distanceOf(ranked[i]) < distanceOf(ranked[j])
	})
	return ranked
}

func distanceOf(item entities.NearbyLoad) float64 {
	if item.SourceDistanceKm != nil {
		return *item.SourceDistanceKm
	}
	return *item.DestinationDistanceKm
}

func resolveCenter(coords *Coordinates, radiusKm float64) (entities.GeoCenter, error) {
	if coords == nil {
		return entities.GeoCenter{}, ErrMissingCoordinates
	}
	if !geodist.ValidLatitude(coords.Latitude) || !geodist.ValidLongitude(coords.Longitude) {
		return entities.GeoCenter{}, ErrCoordinatesOutOfRange
	}
	if radiusKm <= 0 {
		return entities.GeoCenter{}, ErrInvalidRadius
	}
	return entities.GeoCenter{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		RadiusKm:  radiusKm,
	}, nil
}

func paginate(total, page, limit int) (int, int, entities.PageInfo) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	pages := (total + limit - 1) / limit

	lo := (page - 1) * limit
	if lo > total {
		lo = total
	}
	hi := lo + limit
	if hi > total {
		hi = total
	}

	return lo, hi, entities.PageInfo{
		Total: total,
		Page:  page,
		Pages: pages,
		Limit: limit,
	}
}
