//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geosearch_test
package geosearch

import (
	"context"

	"bharatloads/internal/entities"
)

type TruckFinder interface {
	// WithinRadius возвращает активные грузовики внутри радиуса по
	// сферическому предикату; candidateIDs не nil сужает выборку до
	// кандидатов гео-индекса.
	WithinRadius(ctx context.Context, center entities.GeoCenter, filter entities.TruckSearchFilter, candidateIDs []string) ([]entities.Truck, error)
}

type LoadFinder interface {
	// WithinRadius ищет активные грузы по одной из осей: source или
	// destination.
	WithinRadius(ctx context.Context, side entities.MatchSide, center entities.GeoCenter, filter entities.LoadSearchFilter, candidateIDs []string) ([]entities.Load, error)
}

// CandidateIndex необязательный Redis GEO префильтр; отказ индекса не
// роняет поиск, SQL предикат остаётся источником истины.
type CandidateIndex interface {
	TruckCandidates(ctx context.Context, center entities.GeoCenter) ([]string, error)
	LoadCandidates(ctx context.Context, side entities.MatchSide, center entities.GeoCenter) ([]string, error)
}
