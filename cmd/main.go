package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tatagen/dogo-akiheyasystem.v2/config"
	"github.com/tatagen/dogo-akiheyasystem.v2/database"
	"github.com/tatagen/dogo-akiheyasystem.v2/registry"
	"github.com/tatagen/dogo-akiheyasystem.v2/routes"
)

func main() {
	cfg := config.Load()

	// connect + migrate first; if the DB is down we want to fail early
	database.Connect(cfg)

	// idempotent: no-op on an already-seeded store
	if err := registry.Seed(database.DB); err != nil {
		log.Fatalf("room seeding failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
