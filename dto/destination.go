package dto

import (
	"time"

	"journeymap/model"
)

type CreateDestinationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	Category  string  `json:"category" binding:"required,category"`
}

type DestinationResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Category  model.Category `json:"category"`
	CreatedAt time.Time      `json:"created_at"`
	Notes     []NoteResponse `json:"notes"`
}

// ToDestinationResponse maps an entity to its response shape. The mapping is
// total: a nil notes list comes out as an empty array, never null.
func ToDestinationResponse(dest *model.Destination) DestinationResponse {
	return DestinationResponse{
		ID:        dest.ID,
		Name:      dest.Name,
		Latitude:  dest.Latitude,
		Longitude: dest.Longitude,
		Category:  dest.Category,
		CreatedAt: dest.CreatedAt,
		Notes:     ToNoteResponses(dest.Notes),
	}
}

func ToDestinationResponses(dests []*model.Destination) []DestinationResponse {
	responses := make([]DestinationResponse, len(dests))
	for i, dest := range dests {
		responses[i] = ToDestinationResponse(dest)
	}
	return responses
}
