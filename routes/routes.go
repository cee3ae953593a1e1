package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tatagen/dogo-akiheyasystem.v2/config"
	"github.com/tatagen/dogo-akiheyasystem.v2/database"
	"github.com/tatagen/dogo-akiheyasystem.v2/engine"
	"github.com/tatagen/dogo-akiheyasystem.v2/handlers"
	"github.com/tatagen/dogo-akiheyasystem.v2/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Shared singletons =====
	staffAuth := middlewares.NewStaffAuth(cfg)
	eng := engine.New(database.DB, cfg.Location(), cfg.EtaDefault())

	auth := handlers.NewAuthHandler(staffAuth)
	alloc := handlers.NewAllocationHandler(eng)
	snap := handlers.NewSnapshotHandler(eng)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.GET("/_version", handlers.Version)
	e.POST("/auth/login", auth.Login)

	// ===== Staff API (shared credential: Basic or Bearer) =====
	api := e.Group("/api", staffAuth.RequireStaff())

	api.GET("/rooms", snap.ListRooms)
	api.GET("/snapshot", snap.Snapshot)

	api.POST("/checkin", alloc.CheckIn)
	api.POST("/checkout", alloc.CheckOut)
	api.POST("/rooms/eta", alloc.SetRoomEta)
}
