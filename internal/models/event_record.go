package models

import "time"

// EventType discriminates the shape of a stored EventRecord.
type EventType string

const (
	EventTypePush        EventType = "PUSH"
	EventTypePullRequest EventType = "PULL_REQUEST"
	EventTypeMerge       EventType = "MERGE"
)

// UnknownValue fills any field the webhook payload did not carry.
const UnknownValue = "Unknown"

// EventRecord is the canonical, immutable record persisted for one webhook delivery.
type EventRecord struct {
	Type          EventType `json:"type" bson:"type"`
	Author        string    `json:"author" bson:"author"`
	FromBranch    string    `json:"from_branch,omitempty" bson:"from_branch,omitempty"`
	ToBranch      string    `json:"to_branch" bson:"to_branch"`
	Timestamp     string    `json:"timestamp" bson:"timestamp"`
	FormattedTime string    `json:"formatted_time" bson:"formatted_time"`
	Message       string    `json:"message" bson:"message"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
