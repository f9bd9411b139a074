package handler

import (
	"github.com/gin-gonic/gin"

	"journeymap/usecase"
	"journeymap/utils"
)

func HealthHandler(c *gin.Context, journal *usecase.JournalService) {
	utils.Success(c, gin.H{
		"status":       "ok",
		"backend":      journal.Store.Name(),
		"destinations": len(journal.Destinations()),
		"cpu_percent":  utils.GetCPUUsage(),
	})
}
