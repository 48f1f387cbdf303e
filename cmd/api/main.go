package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"campusspaces/internal/config"
	"campusspaces/internal/database"
	"campusspaces/internal/middleware"
	"campusspaces/internal/modules/auth"
	"campusspaces/internal/modules/catalog"
	"campusspaces/internal/modules/live"
	"campusspaces/internal/modules/reservation"
	jwtsvc "campusspaces/internal/pkg/jwt"
	"campusspaces/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	spaceRepo := repository.NewSpaceRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, time.Duration(cfg.JWTExpireHrs)*time.Hour)

	hub := live.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(spaceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reservationService := reservation.NewService(reservationRepo, catalogService, hub)
	reservationHandler := reservation.NewHandler(reservationService)

	liveHandler := live.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		reservationHandler.RegisterPublicRoutes(v1)

		// any authenticated identity
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
		}

		// admin only
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			catalogHandler.RegisterAdminRoutes(adminGroup)
		}

		wsGroup := v1.Group("/")
		wsGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			liveHandler.RegisterRoutes(wsGroup)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
