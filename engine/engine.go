// Package engine implements the capacity-allocation rules: how guest
// groups take and release private rooms and hall seats. It is the only
// writer of rooms/occupancy_requests; HTTP handlers are thin shims over
// it.
package engine

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/tatagen/dogo-akiheyasystem.v2/models"
	"github.com/tatagen/dogo-akiheyasystem.v2/registry"
)

// Single-writer lock for all capacity mutations. Taking it first in
// every write transaction serializes CheckIn/CheckOut/SetPrivateRoomEta
// (the Postgres equivalent of SQLite's BEGIN IMMEDIATE); it is released
// automatically at commit/rollback. Readers are not blocked.
const allocLockKey int64 = 0x646f676f // "dogo"

type Engine struct {
	db         *gorm.DB
	loc        *time.Location
	etaDefault time.Duration
}

func New(db *gorm.DB, loc *time.Location, etaDefault time.Duration) *Engine {
	return &Engine{db: db, loc: loc, etaDefault: etaDefault}
}

func (e *Engine) now() time.Time { return time.Now().In(e.loc) }

// dayKey scopes ticket numbering to the facility's calendar day.
func (e *Engine) dayKey() string { return e.now().Format("2006-01-02") }

// exclusive runs fn inside a transaction holding the allocation lock.
// Any error aborts the whole transaction; no partial writes survive.
func (e *Engine) exclusive(fn func(tx *gorm.DB) error) error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", allocLockKey).Error; err != nil {
			return err
		}
		return fn(tx)
	})
}

func nextSeq(tx *gorm.DB, dayKey string) (int, error) {
	var seq int
	err := tx.Raw(
		"SELECT COALESCE(MAX(seq),0)+1 FROM occupancy_requests WHERE day_key = ?",
		dayKey,
	).Scan(&seq).Error
	return seq, err
}

func hallSeatsUsed(tx *gorm.DB, roomID uint) (int, error) {
	var n int
	err := tx.Raw(
		"SELECT COALESCE(SUM(allocated_seats),0) FROM occupancy_requests WHERE assigned_room_id = ? AND status = ?",
		roomID, models.RequestStatusInRoom,
	).Scan(&n).Error
	return n, err
}

func hallPeopleUsed(tx *gorm.DB, roomID uint) (int, error) {
	var n int
	err := tx.Raw(
		"SELECT COALESCE(SUM(headcount),0) FROM occupancy_requests WHERE assigned_room_id = ? AND status = ?",
		roomID, models.RequestStatusInRoom,
	).Scan(&n).Error
	return n, err
}

// CheckIn assigns an arriving group. targetArea private needs roomID;
// hall targets resolve their room by canonical name. Returns the
// day-scoped ticket number.
func (e *Engine) CheckIn(targetArea string, headcount int, roomID uint) (int, error) {
	switch targetArea {
	case models.TargetAreaPrivate, models.TargetAreaReinoHall, models.TargetAreaKamiHall:
	default:
		return 0, ErrBadParameters
	}
	if headcount <= 0 {
		return 0, ErrInvalidGroupSize
	}

	var seq int
	err := e.exclusive(func(tx *gorm.DB) error {
		day := e.dayKey()
		n, err := nextSeq(tx, day)
		if err != nil {
			return err
		}
		seq = n

		if targetArea == models.TargetAreaPrivate {
			return e.checkInPrivate(tx, headcount, roomID, day, seq)
		}
		return e.checkInHall(tx, targetArea, headcount, day, seq)
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (e *Engine) checkInPrivate(tx *gorm.DB, headcount int, roomID uint, day string, seq int) error {
	if roomID == 0 {
		return ErrMissingRoom
	}
	room, err := registry.GetRoomByID(tx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	if room.Kind != models.RoomKindPrivate {
		return ErrWrongRoomKind
	}
	// cleaning/disabled rooms fail here too; available is the only
	// assignable status
	if room.Status != models.RoomStatusAvailable {
		return ErrRoomNotAvailable
	}

	req := models.OccupancyRequest{
		Headcount:      headcount,
		Status:         models.RequestStatusInRoom,
		AssignedRoomID: room.ID,
		DayKey:         day,
		Seq:            seq,
		TargetArea:     models.TargetAreaPrivate,
		AllocatedSeats: nil,
	}
	if err := tx.Create(&req).Error; err != nil {
		return err
	}

	eta := e.now().Add(e.etaDefault)
	return tx.Model(&models.Room{}).Where("id = ?", room.ID).
		Updates(map[string]any{
			"status": models.RoomStatusOccupied,
			"eta_at": eta,
		}).Error
}

func (e *Engine) checkInHall(tx *gorm.DB, targetArea string, headcount int, day string, seq int) error {
	name, _ := registry.HallNameForTarget(targetArea)
	hall, err := registry.GetRoomByName(tx, name)
	if err != nil {
		return err
	}
	if hall == nil {
		return hallNotFound(name)
	}
	if hall.Status == models.RoomStatusDisabled {
		return hallDisabled(name)
	}

	need, err := SeatsNeeded(headcount)
	if err != nil {
		return err
	}
	used, err := hallSeatsUsed(tx, hall.ID)
	if err != nil {
		return err
	}
	if used+need > hall.Capacity {
		return capacityExceeded(name, need, hall.Capacity-used)
	}

	req := models.OccupancyRequest{
		Headcount:      headcount,
		Status:         models.RequestStatusInRoom,
		AssignedRoomID: hall.ID,
		DayKey:         day,
		Seq:            seq,
		TargetArea:     targetArea,
		AllocatedSeats: &need,
	}
	return tx.Create(&req).Error
}

// CheckOut completes an active request and returns its capacity. A
// request already completed (or unknown) fails with RequestNotFound, so
// a double checkout can never release a room twice.
func (e *Engine) CheckOut(requestID uint) error {
	if requestID == 0 {
		return ErrBadParameters
	}
	return e.exclusive(func(tx *gorm.DB) error {
		var row struct {
			RoomID uint
			Kind   string
		}
		err := tx.Raw(`
			SELECT q.assigned_room_id AS room_id, r.kind AS kind
			  FROM occupancy_requests q
			  JOIN rooms r ON r.id = q.assigned_room_id
			 WHERE q.id = ? AND q.status = ?`,
			requestID, models.RequestStatusInRoom,
		).Scan(&row).Error
		if err != nil {
			return err
		}
		if row.RoomID == 0 {
			return ErrRequestNotFound
		}

		if err := tx.Model(&models.OccupancyRequest{}).Where("id = ?", requestID).
			Updates(map[string]any{
				"status":          models.RequestStatusCompleted,
				"allocated_seats": nil,
			}).Error; err != nil {
			return err
		}

		if row.Kind == models.RoomKindPrivate {
			if err := tx.Model(&models.Room{}).Where("id = ?", row.RoomID).
				Updates(map[string]any{
					"status": models.RoomStatusAvailable,
					"eta_at": nil,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SetPrivateRoomEta overrides the estimated-free time of an occupied
// private room with an HH:MM on the facility's current day.
func (e *Engine) SetPrivateRoomEta(roomID uint, hhmm string) error {
	if roomID == 0 {
		return ErrBadParameters
	}
	h, m, err := parseHHMM(hhmm)
	if err != nil {
		return err
	}
	now := e.now()
	eta := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, e.loc)

	return e.exclusive(func(tx *gorm.DB) error {
		room, err := registry.GetRoomByID(tx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}
		if room.Kind != models.RoomKindPrivate {
			return ErrWrongRoomKind
		}

		// guarded update: only an occupied room may take a manual eta.
		// Anything but exactly one row touched is a conflict.
		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", roomID, models.RoomStatusOccupied).
			Update("eta_at", eta)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrRoomNotOccupied
		}
		return nil
	})
}

func parseHHMM(s string) (int, int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, ErrBadParameters
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, 0, ErrBadParameters
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, 0, ErrBadParameters
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, ErrBadParameters
	}
	return h, m, nil
}
