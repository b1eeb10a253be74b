package geodist

import "math"

// EarthRadiusKm радиус Земли для сферической модели.
const EarthRadiusKm = 6371.0

// Haversine возвращает расстояние по дуге большого круга в километрах.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// AngularRadius переводит радиус в километрах в радианы для
// сферического предиката вхождения.
func AngularRadius(radiusKm float64) float64 {
	return radiusKm / EarthRadiusKm
}

// Round1 округляет до одного знака, для отображения дистанции клиенту.
func Round1(km float64) float64 {
	return math.Round(km*10) / 10
}

func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
