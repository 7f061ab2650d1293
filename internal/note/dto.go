// AngelaMos | 2026
// dto.go

package note

import (
	"time"
)

// NoteRequest deliberately has no tenant or owner fields; both are stamped
// from the authorization context.
type NoteRequest struct {
	Title   string `json:"title"   validate:"max=500"`
	Content string `json:"content" validate:"max=100000"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

type CreateNoteResponse struct {
	ID string `json:"id"`
}

func ToNoteResponse(n *Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func ToNoteResponseList(notes []Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, ToNoteResponse(&n))
	}
	return responses
}
