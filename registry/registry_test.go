package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatagen/dogo-akiheyasystem.v2/models"
)

func TestHallNameForTarget(t *testing.T) {
	name, ok := HallNameForTarget(models.TargetAreaReinoHall)
	assert.True(t, ok)
	assert.Equal(t, HallNameReino, name)

	name, ok = HallNameForTarget(models.TargetAreaKamiHall)
	assert.True(t, ok)
	assert.Equal(t, HallNameKami, name)

	_, ok = HallNameForTarget(models.TargetAreaPrivate)
	assert.False(t, ok)

	_, ok = HallNameForTarget("rooftop")
	assert.False(t, ok)
}

func TestSeedInventoryShape(t *testing.T) {
	assert.Len(t, seedPrivateRooms, 8)
	for _, r := range seedPrivateRooms {
		assert.GreaterOrEqual(t, r.Capacity, 2, r.Name)
		assert.LessOrEqual(t, r.Capacity, 6, r.Name)
	}

	assert.Len(t, seedHalls, 2)
	assert.Equal(t, HallCapacityReino, seedHalls[0].Capacity)
	assert.Equal(t, HallCapacityKami, seedHalls[1].Capacity)
}
