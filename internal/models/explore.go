package models

import (
	"time"

	"github.com/google/uuid"
)

// ExploreProjectDB represents a published project snapshot in the explore gallery.
// Username and project name are denormalized so the gallery renders without joins.
type ExploreProjectDB struct {
	ProjectID   int64     `json:"project_id" db:"project_id"`                   // Primary key, minted at publish time
	UserID      uuid.UUID `json:"user_id" db:"user_id"`                         // Identifier of the publishing user
	Username    string    `json:"username" db:"username"`                       // Denormalized username
	ProjectName string    `json:"project_name" db:"project_name"`               // Name at the time of publishing
	Description *string   `json:"project_description" db:"project_description"` // Description at the time of publishing
	CreatedAt   time.Time `json:"created_at" db:"created_at"`                   // Timestamp of the publish
}

// ExploreListDB represents a published copy of a packing list.
type ExploreListDB struct {
	ExploreListID int64     `json:"explore_list_id" db:"explore_list_id"` // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`                 // Identifier of the publishing user
	ProjectID     int64     `json:"project_id" db:"project_id"`           // Explore project the copy belongs to
	ListID        int64     `json:"list_id" db:"list_id"`                 // Original list id, links items within the snapshot
	ListName      string    `json:"list_name" db:"list_name"`             // Name at the time of publishing
	ProjectName   string    `json:"project_name" db:"project_name"`       // Denormalized project name
}

// ExploreItemDB represents a published copy of a packing list entry.
type ExploreItemDB struct {
	ExploreItemID int64     `json:"explore_item_id" db:"explore_item_id"` // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`                 // Identifier of the publishing user
	ProjectID     int64     `json:"project_id" db:"project_id"`           // Explore project the copy belongs to
	ListID        int64     `json:"list_id" db:"list_id"`                 // Original list id within the snapshot
	ItemID        int64     `json:"item_id" db:"item_id"`                 // Original item id
	ItemName      string    `json:"item_name" db:"item_name"`             // Name at the time of publishing
	Description   string    `json:"description" db:"description"`         // Description at the time of publishing
	Weight        float64   `json:"weight" db:"weight"`                   // Weight of a single unit
	Quantity      int64     `json:"quantity" db:"quantity"`               // Number of units packed
}
