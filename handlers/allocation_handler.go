package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tatagen/dogo-akiheyasystem.v2/engine"
)

type AllocationHandler struct {
	Engine *engine.Engine
}

func NewAllocationHandler(e *engine.Engine) *AllocationHandler {
	return &AllocationHandler{Engine: e}
}

/* ====================== DTOs ====================== */

type CheckInReq struct {
	TargetArea string `json:"targetArea"`
	Headcount  int    `json:"headcount"`
	RoomID     uint   `json:"roomId"` // private only
}

type CheckOutReq struct {
	RequestID uint `json:"requestId"`
}

type RoomEtaReq struct {
	RoomID uint   `json:"roomId"`
	HHMM   string `json:"hhmm"` // "HH:MM", facility-local, today
}

/* ====================== Handlers ====================== */

// POST /api/checkin
func (h *AllocationHandler) CheckIn(c echo.Context) error {
	var req CheckInReq
	if err := c.Bind(&req); err != nil {
		return badParams(c)
	}
	seq, err := h.Engine.CheckIn(req.TargetArea, req.Headcount, req.RoomID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "seq": seq})
}

// POST /api/checkout
func (h *AllocationHandler) CheckOut(c echo.Context) error {
	var req CheckOutReq
	if err := c.Bind(&req); err != nil {
		return badParams(c)
	}
	if err := h.Engine.CheckOut(req.RequestID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// POST /api/rooms/eta
func (h *AllocationHandler) SetRoomEta(c echo.Context) error {
	var req RoomEtaReq
	if err := c.Bind(&req); err != nil {
		return badParams(c)
	}
	if err := h.Engine.SetPrivateRoomEta(req.RoomID, req.HHMM); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
