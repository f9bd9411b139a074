package handler

import (
	"github.com/gin-gonic/gin"

	"journeymap/dto"
	"journeymap/usecase"
	"journeymap/utils"
)

func CreateNoteHandler(c *gin.Context, journal *usecase.JournalService) {
	destinationID := c.Param("id")

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note := journal.AddNote(c, destinationID, req.Content, req.MoodTags, req.ImageURL)
	if note == nil {
		if !destinationExists(journal, destinationID) {
			utils.NotFound(c, "Destination not found")
			return
		}
		utils.InternalError(c, "Failed to add note")
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func DeleteNoteHandler(c *gin.Context, journal *usecase.JournalService) {
	journal.DeleteNote(c, c.Param("id"), c.Param("noteId"))
	utils.Success(c, gin.H{"message": "Note deleted"})
}

func destinationExists(journal *usecase.JournalService, id string) bool {
	for _, d := range journal.Destinations() {
		if d.ID == id {
			return true
		}
	}
	return false
}
