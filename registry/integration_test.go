//go:build integration
// +build integration

package registry

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tatagen/dogo-akiheyasystem.v2/models"
)

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "dogoakiheya_test"),
		getEnv("TEST_DB_PORT", "5432"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("skipping integration test: cannot connect to database: %v", err)
		return nil
	}
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.OccupancyRequest{}))
	require.NoError(t, db.Exec("DELETE FROM occupancy_requests").Error)
	require.NoError(t, db.Exec("DELETE FROM rooms").Error)
	return db
}

func TestSeedFreshStore(t *testing.T) {
	db := getTestDB(t)

	require.NoError(t, Seed(db))

	rooms, err := ListRooms(db, "")
	require.NoError(t, err)
	assert.Len(t, rooms, 10)

	private, err := ListRooms(db, models.RoomKindPrivate)
	require.NoError(t, err)
	assert.Len(t, private, 8)
	for _, r := range private {
		assert.Equal(t, models.RoomStatusAvailable, r.Status, r.Name)
	}

	halls, err := ListRooms(db, models.RoomKindHall)
	require.NoError(t, err)
	require.Len(t, halls, 2)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := getTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&models.Room{}).Count(&count).Error)
	assert.EqualValues(t, 10, count, "re-seeding must not duplicate rooms")
}

func TestSeedRestoresMissingHall(t *testing.T) {
	db := getTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, db.Where("name = ?", HallNameKami).Delete(&models.Room{}).Error)

	require.NoError(t, Seed(db))

	hall, err := GetRoomByName(db, HallNameKami)
	require.NoError(t, err)
	require.NotNil(t, hall)
	assert.Equal(t, models.RoomKindHall, hall.Kind)
	assert.Equal(t, HallCapacityKami, hall.Capacity)
}

func TestGetRoomLookups(t *testing.T) {
	db := getTestDB(t)
	require.NoError(t, Seed(db))

	r, err := GetRoomByName(db, "７号室")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 6, r.Capacity)

	byID, err := GetRoomByID(db, r.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, r.Name, byID.Name)

	missing, err := GetRoomByName(db, "存在しない部屋")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missingID, err := GetRoomByID(db, 999999)
	require.NoError(t, err)
	assert.Nil(t, missingID)
}
