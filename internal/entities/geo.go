package entities

// GeoPoint именованная точка на карте: название места и координаты.
type GeoPoint struct {
	PlaceName string
	Latitude  float64
	Longitude float64
}
