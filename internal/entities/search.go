package entities

// GeoCenter центр радиусного поиска.
type GeoCenter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// MatchSide сторона груза, по которой совпал радиусный поиск.
type MatchSide string

const (
	MatchBoth        MatchSide = "BOTH"
	MatchSource      MatchSide = "SOURCE"
	MatchDestination MatchSide = "DESTINATION"
)

func (s MatchSide) String() string {
	return string(s)
}

type TruckSearchFilter struct {
	TruckType       *VehicleType
	TruckBodyType   *TruckBodyType
	VehicleBodyType *VehicleBodyType
}

type LoadSearchFilter struct {
	MaterialType    *MaterialType
	VehicleType     *VehicleType
	VehicleBodyType *VehicleBodyType
}

// NearbyTruck грузовик из выдачи с дистанцией до центра поиска.
type NearbyTruck struct {
	Truck      Truck
	DistanceKm float64
}

// NearbyLoad груз из выдачи: сторона совпадения и подистанционные
// метрики по каждой из заданных осей.
type NearbyLoad struct {
	Load                  Load
	MatchSide             MatchSide
	SourceDistanceKm      *float64
	DestinationDistanceKm *float64
}

// PageInfo сводка постраничной выдачи после ранжирования.
type PageInfo struct {
	Total int
	Page  int
	Pages int
	Limit int
}
