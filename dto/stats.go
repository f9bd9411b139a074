package dto

import (
	"journeymap/usecase"
)

type StatsResponse struct {
	TotalDestinations  int                    `json:"total_destinations"`
	TotalNotes         int                    `json:"total_notes"`
	ByCategory         map[string]int         `json:"by_category"`
	TotalDistanceKm    float64                `json:"total_distance_km"`
	CountriesCount     int                    `json:"countries_count"`
	CountriesBreakdown []usecase.CountryCount `json:"countries_breakdown"`
}
