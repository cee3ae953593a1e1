// Package registry owns the fixed room inventory: seeding it into the
// store and looking rooms up. After seeding the registry is reference
// data; only the allocation engine mutates room status/eta.
package registry

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/tatagen/dogo-akiheyasystem.v2/models"
)

// Canonical hall names. Legacy spellings are normalized by a startup
// migration, so lookups can rely on these.
const (
	HallNameReino = "霊の湯2階座敷" // small hall
	HallNameKami  = "神の湯2階座敷" // large hall
)

const (
	HallCapacityReino = 20
	HallCapacityKami  = 70
)

// fixed inventory: eight private rooms on the 3rd floor + two halls
var seedPrivateRooms = []models.Room{
	{Name: "１号室", Capacity: 4},
	{Name: "２号室", Capacity: 4},
	{Name: "３号室", Capacity: 4},
	{Name: "５号室", Capacity: 2},
	{Name: "６号室", Capacity: 4},
	{Name: "７号室", Capacity: 6},
	{Name: "８号室", Capacity: 4},
	{Name: "１０号室", Capacity: 4},
}

var seedHalls = []models.Room{
	{Name: HallNameReino, Capacity: HallCapacityReino},
	{Name: HallNameKami, Capacity: HallCapacityKami},
}

// Seed populates the room inventory. Safe to run on every startup: an
// already-seeded store is left alone, except that both halls are
// guaranteed to exist (a hall row lost to manual edits gets re-inserted).
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Room{}).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			for _, r := range seedPrivateRooms {
				r.Kind = models.RoomKindPrivate
				r.Status = models.RoomStatusAvailable
				if err := tx.Create(&r).Error; err != nil {
					return err
				}
			}
			for _, h := range seedHalls {
				h.Kind = models.RoomKindHall
				h.Status = models.RoomStatusAvailable
				if err := tx.Create(&h).Error; err != nil {
					return err
				}
			}
			log.Printf("[registry] seeded %d private rooms + %d halls",
				len(seedPrivateRooms), len(seedHalls))
			return nil
		}

		// existing store: only make sure the halls are present
		for _, h := range seedHalls {
			var n int64
			if err := tx.Model(&models.Room{}).Where("name = ?", h.Name).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				h.Kind = models.RoomKindHall
				h.Status = models.RoomStatusAvailable
				if err := tx.Create(&h).Error; err != nil {
					return err
				}
				log.Printf("[registry] re-inserted missing hall %s", h.Name)
			}
		}
		return nil
	})
}

// ListRooms returns rooms ordered by id, optionally filtered by kind
// (empty kind = all).
func ListRooms(db *gorm.DB, kind string) ([]models.Room, error) {
	q := db.Order("id ASC")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomByName returns nil (no error) when the room doesn't exist.
func GetRoomByName(db *gorm.DB, name string) (*models.Room, error) {
	var r models.Room
	err := db.Where("name = ?", name).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRoomByID returns nil (no error) when the room doesn't exist.
func GetRoomByID(db *gorm.DB, id uint) (*models.Room, error) {
	var r models.Room
	err := db.Where("id = ?", id).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// HallNameForTarget maps a hall target area to its canonical room name.
func HallNameForTarget(targetArea string) (string, bool) {
	switch targetArea {
	case models.TargetAreaReinoHall:
		return HallNameReino, true
	case models.TargetAreaKamiHall:
		return HallNameKami, true
	}
	return "", false
}
