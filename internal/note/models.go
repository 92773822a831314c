package note

import "time"

// Note is the persistent note model for the notes backend. Storage is an
// in-process map for now; a database-backed repository is a stated future
// replacement, which is why timestamps and the id are already part of the model.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
