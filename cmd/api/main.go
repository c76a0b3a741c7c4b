package main

import (
	"context"
	"log"
	"os"
	"time"

	"joacms/internal/auth"
	"joacms/internal/booking"
	"joacms/internal/catalog"
	"joacms/internal/db"
	"joacms/internal/llm"
	"joacms/internal/middleware"
	"joacms/internal/pricing"
	"joacms/internal/recommend"
	"joacms/internal/storage"
	"joacms/internal/venue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	ctx := context.Background()

	// ─────────────────────── REPOSITORIES ───────────────────────
	// DATABASE_URL is optional: without it the API runs on in-memory
	// stores seeded with the default catalog.
	var (
		catalogRepo catalog.Repository
		staffRepo   auth.StaffRepository
		bookingRepo booking.Repository
	)

	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		pgCatalog := catalog.NewPostgresRepository(pgDB)
		if err := pgCatalog.SeedIfEmpty(ctx); err != nil {
			log.Fatal("❌ Catalog seed failed:", err)
		}

		catalogRepo = pgCatalog
		staffRepo = auth.NewPostgresStaffRepository(pgDB)
		bookingRepo = booking.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, using in-memory stores")
		catalogRepo = catalog.NewMemoryRepository()
		staffRepo = auth.NewInMemoryStaffRepository()
		bookingRepo = booking.NewMemoryRepository()
	}

	// ─────────────────────── VENUE CORPUS ───────────────────────
	corpus := venue.DefaultCorpus()

	if key := os.Getenv("VENUE_CORPUS_KEY"); key != "" {
		r2Client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Println("R2 unavailable, keeping embedded venue corpus:", err)
		} else if raw, err := r2Client.FetchObject(ctx, key); err != nil {
			log.Println("Venue corpus fetch failed, keeping embedded corpus:", err)
		} else if parsed, err := venue.ParseCorpus(string(raw)); err != nil {
			log.Println("Venue corpus unparseable, keeping embedded corpus:", err)
		} else {
			corpus = parsed
			log.Printf("Loaded venue corpus from R2 (%s)", key)
		}
	}

	venueResolver := venue.NewResolver(corpus)

	// ─────────────────────── SERVICES ───────────────────────
	catalogService := catalog.NewService(catalogRepo)
	authService := auth.NewService(staffRepo)

	recommendService := recommend.NewService(
		catalogRepo,
		catalogRepo,
		venueResolver,
		llm.FromEnv(),
	)

	bookingService := booking.NewService(bookingRepo, recommendService)

	// ─────────────────────── HANDLERS ───────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	authHandler := auth.NewHandler(authService)
	recommendHandler := recommend.NewHandler(recommendService)
	pricingHandler := pricing.NewHandler()
	bookingHandler := booking.NewHandler(bookingService)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/catalog", catalogHandler.GetCatalog)
	r.POST("/recommendations", recommendHandler.Recommend)
	r.POST("/pricing/quote", pricingHandler.Quote)

	// ─────────────────────── BOOKINGS ───────────────────────
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/:reference", bookingHandler.Get)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/catalog/items", catalogHandler.AddItem)
		admin.DELETE("/catalog/items/:id", catalogHandler.RemoveItem)
		admin.GET("/bookings", bookingHandler.List)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
