package handler

import (
	"github.com/gin-gonic/gin"

	"journeymap/config"
	"journeymap/usecase"
	"journeymap/utils"
)

type geoJSONGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [lng, lat]
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Geometry   geoJSONGeometry `json:"geometry"`
	Properties gin.H           `json:"properties"`
}

type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

// GetMapFeaturesHandler renders the destination list as point features for
// the map surface: coordinates plus the id and category the client needs for
// display and click-to-select.
func GetMapFeaturesHandler(c *gin.Context, journal *usecase.JournalService) {
	dests := journal.Destinations()

	features := make([]geoJSONFeature, len(dests))
	for i, d := range dests {
		features[i] = geoJSONFeature{
			Type: "Feature",
			Geometry: geoJSONGeometry{
				Type:        "Point",
				Coordinates: [2]float64{d.Longitude, d.Latitude},
			},
			Properties: gin.H{
				"id":        d.ID,
				"name":      d.Name,
				"category":  d.Category,
				"noteCount": len(d.Notes),
			},
		}
	}

	c.JSON(200, geoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	})
}

// GetMapConfigHandler tells the client which tile style to use. The
// alternate style is enabled by key presence only; the key itself comes from
// the environment.
func GetMapConfigHandler(c *gin.Context, cfg config.AppConfig) {
	style := "default"
	if cfg.MapTilerKey != "" {
		style = "maptiler"
	}
	utils.Success(c, gin.H{
		"style":        style,
		"maptiler_key": cfg.MapTilerKey,
	})
}
