package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/tatagen/dogo-akiheyasystem.v2/models"
)

// migration is a one-shot data fix. precondition answers whether there is
// anything to do; apply runs inside the same transaction that records the
// migration row, so a half-applied fix can never be observed.
type migration struct {
	id           string
	precondition func(tx *gorm.DB) (bool, error)
	apply        func(tx *gorm.DB) error
}

var migrations = []migration{
	{
		// Old deployments had extra request statuses (pending/heading)
		// that no longer exist. Rows carrying them are remapped to
		// canceled. The remap loses the original status, so the count is
		// logged loudly for the operator.
		id: "2024120101_normalize_request_status",
		precondition: func(tx *gorm.DB) (bool, error) {
			var n int64
			err := tx.Model(&models.OccupancyRequest{}).
				Where("status NOT IN ?", []string{
					models.RequestStatusInRoom,
					models.RequestStatusCompleted,
					models.RequestStatusCanceled,
				}).Count(&n).Error
			return n > 0, err
		},
		apply: func(tx *gorm.DB) error {
			res := tx.Model(&models.OccupancyRequest{}).
				Where("status NOT IN ?", []string{
					models.RequestStatusInRoom,
					models.RequestStatusCompleted,
					models.RequestStatusCanceled,
				}).
				Update("status", models.RequestStatusCanceled)
			if res.Error != nil {
				return res.Error
			}
			log.Printf("[migrate] remapped %d legacy-status requests to canceled", res.RowsAffected)
			return nil
		},
	},
	{
		// Historical naming drift for the large hall (神の湯2階 /
		// 神の湯2回座敷). Normalize to the canonical name so lookups by
		// name are reliable.
		id: "2024120102_canonical_hall_names",
		precondition: func(tx *gorm.DB) (bool, error) {
			var n int64
			err := tx.Model(&models.Room{}).
				Where("name IN ?", []string{"神の湯2階", "神の湯2回座敷"}).
				Count(&n).Error
			return n > 0, err
		},
		apply: func(tx *gorm.DB) error {
			res := tx.Model(&models.Room{}).
				Where("name IN ?", []string{"神の湯2階", "神の湯2回座敷"}).
				Update("name", "神の湯2階座敷")
			if res.Error != nil {
				return res.Error
			}
			log.Printf("[migrate] normalized %d hall name(s)", res.RowsAffected)
			return nil
		},
	},
}

// RunMigrations applies pending migrations in order. A migration whose
// precondition reports nothing to do is still recorded, so it is never
// re-evaluated on later startups.
func RunMigrations(db *gorm.DB) error {
	for _, m := range migrations {
		var done int64
		if err := db.Model(&models.SchemaMigration{}).Where("id = ?", m.id).Count(&done).Error; err != nil {
			return err
		}
		if done > 0 {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			needed, err := m.precondition(tx)
			if err != nil {
				return err
			}
			if needed {
				if err := m.apply(tx); err != nil {
					return err
				}
			}
			return tx.Create(&models.SchemaMigration{ID: m.id, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}
