package publishers

import (
	"time"

	"github.com/Adda-Baaj/placeholder-client/internal/domain"
)

// EventCommentsSaved is emitted after a comments file has been written.
const EventCommentsSaved = "comments.saved"

// Event represents the payload published downstream.
type Event struct {
	Type     string    `json:"type"`
	UserID   string    `json:"user_id"`
	PostID   int       `json:"post_id"`
	Path     string    `json:"path"`
	Bytes    int       `json:"bytes"`
	Comments int       `json:"comments"`
	SavedAt  time.Time `json:"saved_at"`
}

// NewExportEvent constructs a comments.saved Event for the given export.
func NewExportEvent(rec domain.ExportRecord, comments int) Event {
	savedAt := rec.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now().UTC()
	}
	return Event{
		Type:     EventCommentsSaved,
		UserID:   rec.UserID,
		PostID:   rec.PostID,
		Path:     rec.Path,
		Bytes:    rec.Bytes,
		Comments: comments,
		SavedAt:  savedAt,
	}
}
