package usecase

import (
	"math"
	"strings"

	"journeymap/model"
)

// GeoPoint is a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points in
// kilometers using the mean Earth radius.
func HaversineKm(a, b GeoPoint) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)
	lat1 := deg2rad(a.Lat)
	lat2 := deg2rad(b.Lat)
	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

// TotalTripDistanceKm sums the distance between each consecutive pair of
// destinations in the list's current order. Fewer than two destinations is 0.
func TotalTripDistanceKm(destinations []*model.Destination) float64 {
	if len(destinations) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(destinations); i++ {
		sum += HaversineKm(
			GeoPoint{Lat: destinations[i-1].Latitude, Lng: destinations[i-1].Longitude},
			GeoPoint{Lat: destinations[i].Latitude, Lng: destinations[i].Longitude},
		)
	}
	return sum
}

// CountryCount is one group in the breakdown.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// CountryBreakdown groups destinations by the trailing comma-separated token
// of the name. Best-effort without reverse geocoding every point: a name
// with no comma is its own group, an empty token counts as "Unknown".
// Groups keep first-seen order.
func CountryBreakdown(destinations []*model.Destination) (int, []CountryCount) {
	counts := make(map[string]int)
	var order []string
	for _, d := range destinations {
		parts := strings.Split(d.Name, ",")
		country := strings.TrimSpace(parts[len(parts)-1])
		if country == "" {
			country = "Unknown"
		}
		if _, seen := counts[country]; !seen {
			order = append(order, country)
		}
		counts[country]++
	}

	breakdown := make([]CountryCount, len(order))
	for i, country := range order {
		breakdown[i] = CountryCount{Country: country, Count: counts[country]}
	}
	return len(breakdown), breakdown
}
