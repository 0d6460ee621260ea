package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/config"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/database"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/middleware"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/admin"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/auth"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/catalog"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/favorite"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/moderation"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/places"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/review"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/support"
	jwtsvc "github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/jwt"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error=%v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connect error=%v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate error=%v", err)
	}

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	eventRepo := repository.NewEventRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	notifRepo := notification.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	notifService := notification.NewService(notifRepo)
	moderationService := moderation.NewService(placeRepo, notifService, userRepo)

	authService := auth.NewService(userRepo, j)
	placesService := places.NewService(placeRepo, moderationService)
	catalogService := catalog.NewService(categoryRepo, areaRepo, eventRepo, articleRepo)
	reviewService := review.NewService(reviewRepo, placeRepo, notifService)
	adminService := admin.NewService(userRepo, placeRepo, moderationService, notifRepo)
	supportService := support.NewService(ticketRepo, notifService)

	authHandler := auth.NewHandler(authService)
	placesHandler := places.NewHandler(placesService)
	catalogHandler := catalog.NewHandler(catalogService)
	reviewHandler := review.NewHandler(reviewService)
	favoriteHandler := favorite.NewHandler(favoriteRepo, placeRepo)
	notifHandler := notification.NewHandler(notifService)
	adminHandler := admin.NewHandler(adminService)
	supportHandler := support.NewHandler(supportService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		placesHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			placesHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
		}

		staff := v1.Group("/")
		staff.Use(middleware.Auth(j), middleware.StaffOnly())

		superAdmin := v1.Group("/")
		superAdmin.Use(middleware.Auth(j), middleware.SuperAdminOnly())

		adminHandler.RegisterRoutes(staff, superAdmin)
		catalogHandler.RegisterAdminRoutes(staff)
		supportHandler.RegisterRoutes(protected, staff)
	}

	log.Printf("server starting env=%s port=%s", cfg.AppEnv, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
