package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pgconnect/internal/config"
	"pgconnect/internal/database"
	"pgconnect/internal/domain"
	"pgconnect/internal/middleware"
	"pgconnect/internal/modules/assistant"
	"pgconnect/internal/modules/auth"
	"pgconnect/internal/modules/booking"
	"pgconnect/internal/modules/catalog"
	"pgconnect/internal/modules/manage"
	jwtsvc "pgconnect/internal/pkg/jwt"
	"pgconnect/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database: ", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Property{}); err != nil {
		log.Fatal("migrate: ", err)
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(propertyRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	manageService := manage.NewService(propertyRepo, userRepo)
	manageHandler := manage.NewHandler(manageService)

	bookingService := booking.NewService(propertyRepo, booking.DefaultIntentTTL)
	bookingHandler := booking.NewHandler(bookingService)

	gemini := assistant.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	assistantService := assistant.NewService(gemini)
	assistantHandler := assistant.NewHandler(assistantService)
	assistantWS := assistant.NewWSHandler(assistantService, j)

	// drop resolved booking intents in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n := bookingService.Sweep(); n > 0 {
				log.Printf("booking_sweep removed=%d", n)
			}
		}
	}()

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	chatLimiter := middleware.NewIPRateLimiter(cfg.ChatReqPerMin, cfg.ChatBurst, 5*time.Minute)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		assistantGroup := v1.Group("/")
		assistantGroup.Use(middleware.RateLimitByIP(chatLimiter))
		assistantHandler.RegisterRoutes(assistantGroup)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}

		// students
		student := v1.Group("/")
		student.Use(middleware.JWTAuth(j), middleware.StudentOnly())
		{
			bookingHandler.RegisterRoutes(student)
		}

		// property owners
		owner := v1.Group("/owner")
		owner.Use(middleware.JWTAuth(j), middleware.OwnerOnly())
		{
			ownership := middleware.NewOwnershipChecker(propertyRepo)
			manageHandler.RegisterRoutes(owner, ownership.CheckPropertyOwnership())
		}
	}

	r.GET("/ws/assistant", assistantWS.HandleWebSocket)

	log.Printf("listening on %s env=%s", cfg.HTTPAddr, cfg.AppEnv)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
