package models

import "time"

// Room kinds
const (
	RoomKindPrivate = "private" // exclusive room, one group at a time
	RoomKindHall    = "hall"    // shared tatami hall, seat-unit accounting
)

// Room statuses. For halls the status is advisory only (disabled blocks
// new check-ins); actual fullness is derived from active requests.
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
	RoomStatusCleaning  = "cleaning"
	RoomStatusDisabled  = "disabled"
)

type Room struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:60;uniqueIndex;not null"`
	Capacity int    `json:"capacity" gorm:"not null"` // persons (private) / seat units (hall)
	Kind     string `json:"kind" gorm:"size:10;not null;default:private"`
	Status   string `json:"status" gorm:"size:20;not null"` // available|occupied|cleaning|disabled

	// estimated time the room frees up; informational only, never
	// triggers a transition
	EtaAt *time.Time `json:"eta_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
