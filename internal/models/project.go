package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectDB represents a project row in the database
type ProjectDB struct {
	ProjectID   int64     `json:"project_id" db:"project_id"`                     // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`                           // Identifier of the owning user
	ProjectName string    `json:"project_name" db:"project_name"`                 // Display name, duplicates permitted
	Description *string   `json:"project_description" db:"project_description"`   // Optional free-form description
	CreatedAt   time.Time `json:"created_at" db:"created_at"`                     // Timestamp when the project was created
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`                     // Timestamp of the last project update
}
