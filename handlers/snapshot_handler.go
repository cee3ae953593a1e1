package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tatagen/dogo-akiheyasystem.v2/database"
	"github.com/tatagen/dogo-akiheyasystem.v2/engine"
	"github.com/tatagen/dogo-akiheyasystem.v2/models"
	"github.com/tatagen/dogo-akiheyasystem.v2/registry"
)

type SnapshotHandler struct {
	Engine *engine.Engine
}

func NewSnapshotHandler(e *engine.Engine) *SnapshotHandler {
	return &SnapshotHandler{Engine: e}
}

// GET /api/snapshot
// One consistent point-in-time view for the polling staff terminal.
func (h *SnapshotHandler) Snapshot(c echo.Context) error {
	view, err := h.Engine.Snapshot()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// GET /api/rooms?kind=private|hall
func (h *SnapshotHandler) ListRooms(c echo.Context) error {
	kind := strings.TrimSpace(c.QueryParam("kind"))
	switch kind {
	case "", models.RoomKindPrivate, models.RoomKindHall:
	default:
		return badParams(c)
	}
	rooms, err := registry.ListRooms(database.DB, kind)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}
