package dto

import (
	"time"

	"journeymap/model"
)

type CreateNoteRequest struct {
	Content  string   `json:"content" binding:"required"`
	MoodTags []string `json:"mood_tags"`
	ImageURL *string  `json:"image_url" binding:"omitempty,url"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	MoodTags  []string  `json:"mood_tags"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNoteResponse maps an entity to its response shape with defaults for
// every optional field: absent image stays null, nil tags become an empty
// array in insertion order.
func ToNoteResponse(note *model.Note) NoteResponse {
	tags := note.MoodTags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		ImageURL:  note.ImageURL,
		MoodTags:  tags,
		CreatedAt: note.CreatedAt,
	}
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
