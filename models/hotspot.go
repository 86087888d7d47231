package models

// Hotspot is a named location scope that users join. Chat, presence and
// offers are all partitioned by hotspot id.
type Hotspot struct {
	HotspotID   string  `dynamodbav:"hotspotId" json:"hotspotId"` // Partition Key
	Name        string  `dynamodbav:"name" json:"name"`
	Description string  `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Latitude    float64 `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64 `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	CreatedAt   string  `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// HotspotsTable is the DynamoDB table name for hotspots
const HotspotsTable = "Hotspots"
