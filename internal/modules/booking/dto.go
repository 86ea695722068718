package booking

import "time"

type CreateIntentRequest struct {
	PropertyID int64  `json:"property_id" binding:"required"`
	RoomNumber string `json:"room_number"`
	MoveInDate string `json:"move_in_date"`
	Message    string `json:"message"`
}

type IntentStatus string

const (
	StatusPending   IntentStatus = "pending"
	StatusConfirmed IntentStatus = "confirmed"
	StatusCancelled IntentStatus = "cancelled"
	StatusExpired   IntentStatus = "expired"
)

// Intent is a visit/booking request. It lives in memory only: no money
// moves here, confirmation just records the student's interest for the
// owner to follow up on.
type Intent struct {
	ID           string       `json:"id"`
	StudentID    int64        `json:"student_id"`
	PropertyID   int64        `json:"property_id"`
	PropertyName string       `json:"property_name"`
	OwnerPhone   string       `json:"owner_phone,omitempty"`
	RoomNumber   string       `json:"room_number,omitempty"`
	MoveInDate   string       `json:"move_in_date,omitempty"`
	Message      string       `json:"message,omitempty"`
	Status       IntentStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}
