package handler

import (
	"github.com/gin-gonic/gin"

	"journeymap/dto"
	"journeymap/usecase"
	"journeymap/utils"
)

// GetStatsHandler derives trip metrics from the cached destination list:
// totals, per-category counts, summed trip distance in the list's current
// order, and the country breakdown heuristic.
func GetStatsHandler(c *gin.Context, journal *usecase.JournalService) {
	dests := journal.Destinations()

	byCategory := map[string]int{}
	totalNotes := 0
	for _, d := range dests {
		byCategory[string(d.Category)]++
		totalNotes += len(d.Notes)
	}

	countriesCount, breakdown := usecase.CountryBreakdown(dests)

	utils.Success(c, dto.StatsResponse{
		TotalDestinations:  len(dests),
		TotalNotes:         totalNotes,
		ByCategory:         byCategory,
		TotalDistanceKm:    usecase.TotalTripDistanceKm(dests),
		CountriesCount:     countriesCount,
		CountriesBreakdown: breakdown,
	})
}
