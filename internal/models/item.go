package models

import "github.com/google/uuid"

// ItemDB represents a packing list entry in the database.
// Weight times quantity is the item's contribution to list and project totals.
type ItemDB struct {
	ItemID      int64     `json:"item_id" db:"item_id"`         // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Identifier of the owning user
	ProjectID   int64     `json:"project_id" db:"project_id"`   // Project the item belongs to
	ListID      int64     `json:"list_id" db:"list_id"`         // List the item belongs to
	ItemName    string    `json:"item_name" db:"item_name"`     // Display name
	Description string    `json:"description" db:"description"` // Optional free-form description
	Weight      float64   `json:"weight" db:"weight"`           // Weight of a single unit
	Quantity    int64     `json:"quantity" db:"quantity"`       // Number of units packed
}
