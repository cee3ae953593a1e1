package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tatagen/dogo-akiheyasystem.v2/engine"
)

// fail translates an engine error into the JSON error shape the staff
// terminal expects. Validation failures keep their code/message and
// status; anything else is an internal error and gets logged.
func fail(c echo.Context, err error) error {
	var ee *engine.Error
	if errors.As(err, &ee) {
		return echo.NewHTTPError(ee.Status, map[string]any{
			"error":   ee.Code,
			"message": ee.Message,
		})
	}
	log.Printf("[handlers] internal error on %s: %v", c.Path(), err)
	return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "INTERNAL_ERROR"})
}

func badParams(c echo.Context) error {
	return fail(c, engine.ErrBadParameters)
}
