package domain

import "time"

// Domain contains the typed resources the client works with. Posts and
// comments stay raw JSON.

// Todo belongs to a user via UserID. Open tasks are todos with Completed == false.
type Todo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ExportRecord describes one comments file written to disk.
type ExportRecord struct {
	UserID  string    `json:"user_id"`
	PostID  int       `json:"post_id"`
	Path    string    `json:"path"`
	Bytes   int       `json:"bytes"`
	SavedAt time.Time `json:"saved_at"`
}
