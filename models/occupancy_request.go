package models

import "time"

// Request statuses
const (
	RequestStatusInRoom    = "in_room"
	RequestStatusCompleted = "completed"
	RequestStatusCanceled  = "canceled" // administrative only; also legacy-migration target
)

// Target areas a group can be checked into
const (
	TargetAreaPrivate   = "private"
	TargetAreaReinoHall = "reino_hall" // 霊の湯2階座敷
	TargetAreaKamiHall  = "kami_hall"  // 神の湯2階座敷
)

// OccupancyRequest is one guest-group check-in. Rows are never deleted;
// checkout flips status to completed and returns the seats.
type OccupancyRequest struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Headcount      int    `json:"headcount" gorm:"not null"`
	Status         string `json:"status" gorm:"size:20;not null;index"` // in_room|completed|canceled
	AssignedRoomID uint   `json:"assigned_room_id" gorm:"index;not null"`

	// per-day ticket number shown to guests: (day_key, seq)
	DayKey string `json:"day_key" gorm:"size:10;index:idx_requests_day_seq"`
	Seq    int    `json:"seq" gorm:"index:idx_requests_day_seq"`

	TargetArea string `json:"target_area" gorm:"size:20;not null;default:private"`

	// seat units held in a hall (2 or 4); NULL for private rooms and
	// after checkout
	AllocatedSeats *int `json:"allocated_seats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
