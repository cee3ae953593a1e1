package engine

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/tatagen/dogo-akiheyasystem.v2/models"
	"github.com/tatagen/dogo-akiheyasystem.v2/registry"
)

// HallGroup is one active group sitting in a hall.
type HallGroup struct {
	ID             uint `json:"id"`
	Seq            int  `json:"seq"`
	Headcount      int  `json:"headcount"`
	AllocatedSeats int  `json:"allocated_seats"`
}

// PrivateRoomView is a private room plus its in-progress request, if any.
// Field names follow what the staff terminal already consumes.
type PrivateRoomView struct {
	models.Room
	CurrentRequestID *uint `json:"currentRequestId"`
	CurrentHeadcount *int  `json:"currentHeadcount"`
	CurrentSeq       *int  `json:"currentSeq"`
}

// HallRoomView is a hall plus its derived usage.
type HallRoomView struct {
	models.Room
	HallSeats  int         `json:"hall_seats"`
	HallPeople int         `json:"hall_people"`
	HallList   []HallGroup `json:"hall_list"`
}

type Summary struct {
	ReinoRemain int `json:"reino_remain"`
	KamiRemain  int `json:"kami_remain"`
}

type SnapshotRooms struct {
	Private   []PrivateRoomView `json:"private"`
	ReinoHall []HallRoomView    `json:"reino_hall"`
	KamiHall  []HallRoomView    `json:"kami_hall"`
}

type SnapshotView struct {
	Rooms   SnapshotRooms `json:"rooms"`
	Summary Summary       `json:"summary"`
}

// Snapshot reads the whole allocation state at one point in time. It
// runs in a read-only REPEATABLE READ transaction, so a concurrent
// check-in/checkout is either fully visible or not at all — never half.
func (e *Engine) Snapshot() (*SnapshotView, error) {
	tx := e.db.Begin(&sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	rooms, err := registry.ListRooms(tx, "")
	if err != nil {
		return nil, err
	}

	view := &SnapshotView{Rooms: SnapshotRooms{
		Private:   []PrivateRoomView{},
		ReinoHall: []HallRoomView{},
		KamiHall:  []HallRoomView{},
	}}

	for _, r := range rooms {
		switch r.Kind {
		case models.RoomKindHall:
			hv, err := hallView(tx, r)
			if err != nil {
				return nil, err
			}
			remain := r.Capacity - hv.HallSeats
			if remain < 0 {
				remain = 0
			}
			switch r.Name {
			case registry.HallNameReino:
				view.Rooms.ReinoHall = append(view.Rooms.ReinoHall, hv)
				view.Summary.ReinoRemain = remain
			case registry.HallNameKami:
				view.Rooms.KamiHall = append(view.Rooms.KamiHall, hv)
				view.Summary.KamiRemain = remain
			}
		default:
			pv, err := privateView(tx, r)
			if err != nil {
				return nil, err
			}
			view.Rooms.Private = append(view.Rooms.Private, pv)
		}
	}
	return view, nil
}

func privateView(tx *gorm.DB, r models.Room) (PrivateRoomView, error) {
	v := PrivateRoomView{Room: r}
	var req models.OccupancyRequest
	err := tx.Where("assigned_room_id = ? AND status = ?", r.ID, models.RequestStatusInRoom).
		Take(&req).Error
	if err == nil {
		v.CurrentRequestID = &req.ID
		v.CurrentHeadcount = &req.Headcount
		v.CurrentSeq = &req.Seq
		return v, nil
	}
	if err == gorm.ErrRecordNotFound {
		return v, nil
	}
	return v, err
}

func hallView(tx *gorm.DB, r models.Room) (HallRoomView, error) {
	v := HallRoomView{Room: r, HallList: []HallGroup{}}

	seats, err := hallSeatsUsed(tx, r.ID)
	if err != nil {
		return v, err
	}
	people, err := hallPeopleUsed(tx, r.ID)
	if err != nil {
		return v, err
	}
	v.HallSeats, v.HallPeople = seats, people

	err = tx.Model(&models.OccupancyRequest{}).
		Select("id, seq, headcount, COALESCE(allocated_seats,0) AS allocated_seats").
		Where("assigned_room_id = ? AND status = ?", r.ID, models.RequestStatusInRoom).
		Order("updated_at DESC").
		Scan(&v.HallList).Error
	return v, err
}
