package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID      string   `dynamodbav:"userId,omitempty" json:"userId,omitempty"`
	DisplayName string   `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	Bio         string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	StatusLabel string   `dynamodbav:"statusLabel,omitempty" json:"statusLabel,omitempty"`
	AvatarKey   string   `dynamodbav:"avatarKey,omitempty" json:"avatarKey,omitempty"`
	Interests   []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Latitude    float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
