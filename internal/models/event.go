package models

// ShareEvent is the message emitted to Kafka when a project is published
// to the explore gallery.
type ShareEvent struct {
	EventID          string  `json:"event_id"`           // Unique event identifier
	Timestamp        int64   `json:"timestamp"`          // Unix timestamp of the publish
	UserID           string  `json:"user_id"`            // Identifier of the publishing user
	Username         string  `json:"username"`           // Username of the publishing user
	ProjectID        int64   `json:"project_id"`         // Source project id
	ExploreProjectID int64   `json:"explore_project_id"` // Newly minted explore project id
	ProjectName      string  `json:"project_name"`       // Project name at the time of publishing
	TotalWeight      float64 `json:"total_weight"`       // Aggregated weight of the snapshot
}
