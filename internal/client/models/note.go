package models

import "time"

// TimestampLayout is the exact format the backend uses for note timestamps:
// UTC with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// displayLayout is how parsed timestamps are rendered for the user.
const displayLayout = "Jan 2, 2006 15:04"

// Note is a server-owned record. The client never assigns IDs or timestamps;
// a create request lacks them and the response comes back with them populated.
type Note struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	CreatorName     string `json:"creator_name,omitempty"`
	CreatorUsername string `json:"creator_username"`
}

// FormattedCreatedAt renders the creation timestamp for display.
// If the raw value does not match TimestampLayout it is returned as-is.
func (n Note) FormattedCreatedAt() string {
	return formatTimestamp(n.CreatedAt)
}

// FormattedUpdatedAt renders the update timestamp for display.
func (n Note) FormattedUpdatedAt() string {
	return formatTimestamp(n.UpdatedAt)
}

func formatTimestamp(raw string) string {
	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return raw
	}
	return ts.Format(displayLayout)
}

// CreateNoteRequest is the payload for POST /notes/ and items of the bulk
// create request.
type CreateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateNoteRequest is the payload for PUT /notes/{id}/ (full replace).
type UpdateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
