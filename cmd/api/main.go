package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hammam97-h/barber-booking/internal/config"
	dbpkg "github.com/hammam97-h/barber-booking/internal/db"
	"github.com/hammam97-h/barber-booking/internal/middleware"
	"github.com/hammam97-h/barber-booking/internal/routes"
	"github.com/hammam97-h/barber-booking/internal/workhours"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Seed the weekly schedule up front so availability reads never have to
	// create rows on the fly.
	if err := workhours.EnsureDefaults(db); err != nil {
		log.Fatalf("failed to seed work hours: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
