package models

import "github.com/google/uuid"

// ListDB represents a packing list row in the database.
// A list belongs to exactly one project and one owning user.
type ListDB struct {
	ListID    int64     `json:"list_id" db:"list_id"`       // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the owning user
	ProjectID int64     `json:"project_id" db:"project_id"` // Project the list belongs to
	ListName  string    `json:"list_name" db:"list_name"`   // Display name
}
