package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published to the audit topic.
const (
	EventUserLogin          = "user.login"
	EventUserProfileUpdated = "user.profile_updated"
)

// Event is a security-relevant occurrence. It identifies the user but never
// carries token material or passwords.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent builds an event with a fresh id and the current time.
func NewEvent(eventType, userID, email string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		UserID:    userID,
		Email:     email,
		Timestamp: time.Now(),
	}
}

// ToJSON serializes the event for the wire.
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one user to the same partition.
func (e *Event) PartitionKey() string {
	return e.UserID
}
