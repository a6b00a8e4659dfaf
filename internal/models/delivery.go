package models

import "time"

// Delivery is an audit entry describing how one webhook delivery was handled.
type Delivery struct {
	TimeStamp time.Time `json:"timestamp" bson:"timestamp"`

	Action string `bson:"action" json:"action"`

	DeliveryID string `bson:"deliveryID" json:"deliveryID"`
	EventType  string `bson:"eventType" json:"eventType"`

	RecordType EventType `bson:"recordType,omitempty" json:"recordType,omitempty"`

	Props map[string]any `bson:"props" json:"props"`
}
