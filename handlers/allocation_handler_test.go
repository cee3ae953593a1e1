package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tatagen/dogo-akiheyasystem.v2/engine"
)

// handler-level validation only; store-backed paths live in the engine
// integration tests

func allocEcho() *echo.Echo {
	h := NewAllocationHandler(engine.New(nil, time.UTC, 105*time.Minute))
	e := echo.New()
	e.POST("/api/checkin", h.CheckIn)
	e.POST("/api/checkout", h.CheckOut)
	e.POST("/api/rooms/eta", h.SetRoomEta)
	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCheckInMalformedPayload(t *testing.T) {
	e := allocEcho()

	rec := post(e, "/api/checkin", `{"targetArea":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_PARAMETERS")
}

func TestCheckInUnknownTargetArea(t *testing.T) {
	e := allocEcho()

	rec := post(e, "/api/checkin", `{"targetArea":"pool","headcount":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_PARAMETERS")
}

func TestCheckInZeroHeadcount(t *testing.T) {
	e := allocEcho()

	rec := post(e, "/api/checkin", `{"targetArea":"reino_hall","headcount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_GROUP_SIZE")
}

func TestCheckOutMissingRequestID(t *testing.T) {
	e := allocEcho()

	rec := post(e, "/api/checkout", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_PARAMETERS")
}

func TestSetRoomEtaBadFormat(t *testing.T) {
	e := allocEcho()

	rec := post(e, "/api/rooms/eta", `{"roomId":1,"hhmm":"25:99"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_PARAMETERS")
}

func TestFailTranslatesEngineErrors(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	err := fail(c, engine.ErrRoomNotFound)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)

	// non-engine errors become a generic 500
	err = fail(c, assert.AnError)
	he, ok = err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
