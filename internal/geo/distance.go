package geo

import "math"

// Средний радиус Земли в километрах.
const earthRadiusKm = 6371

// toRadians переводит градусы в радианы
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// HaversineKm вычисляет расстояние по дуге большого круга между двумя
// точками (широта/долгота в градусах) по формуле гаверсинуса.
// Численно устойчива для совпадающих и антиподальных точек.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
