package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"journeymap/services"
	"journeymap/utils"
)

// ReverseGeocodeHandler resolves ?lat=&lng= to a place suggestion. A failed
// or empty lookup answers with null data so the client falls back to manual
// naming.
func ReverseGeocodeHandler(c *gin.Context, geocoder *services.GeocodingService) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		utils.BadRequest(c, "Invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil || lng < -180 || lng > 180 {
		utils.BadRequest(c, "Invalid longitude")
		return
	}

	result := geocoder.ReverseGeocode(c, lat, lng)
	utils.Success(c, result)
}
