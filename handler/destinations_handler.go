package handler

import (
	"github.com/gin-gonic/gin"

	"journeymap/dto"
	"journeymap/model"
	"journeymap/usecase"
	"journeymap/utils"
)

func GetDestinationsHandler(c *gin.Context, journal *usecase.JournalService) {
	utils.Success(c, dto.ToDestinationResponses(journal.Destinations()))
}

func CreateDestinationHandler(c *gin.Context, journal *usecase.JournalService) {
	var req dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	dest := journal.AddDestination(c, req.Name, req.Latitude, req.Longitude, model.Category(req.Category))
	if dest == nil {
		utils.InternalError(c, "Failed to add destination")
		return
	}

	utils.Created(c, dto.ToDestinationResponse(dest))
}

func DeleteDestinationHandler(c *gin.Context, journal *usecase.JournalService) {
	// Deleting an unknown id is a no-op, not an error.
	journal.DeleteDestination(c, c.Param("id"))
	utils.Success(c, gin.H{"message": "Destination deleted"})
}
