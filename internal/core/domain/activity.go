package domain

import "time"

// Activity actions recorded by the async recorder.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ActivityEntry is one row of the audit feed shown on the admin dashboard.
type ActivityEntry struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actorId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
