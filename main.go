package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nigel2421/wemisireact/routes"
	"github.com/nigel2421/wemisireact/session"
	"github.com/nigel2421/wemisireact/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	if err := store.Migrate(db); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS: cookie sessions need credentials, so echo the caller's origin
	// instead of using a wildcard.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "change-this-secret-in-prod"
		log.Println("⚠️ SESSION_SECRET not set, using insecure default")
	}
	sessions := session.NewManager(db, secret, os.Getenv("APP_ENV") == "production")

	// Setup routes
	routes.SetupRoutes(r, db, sessions)

	// Serve the built client application, with SPA fallback for non-API routes
	setupStaticFallback(r)

	// Purge expired sessions twice a day
	go sessions.CleanupExpired(12 * time.Hour)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase opens PostgreSQL when DATABASE_URL is set, otherwise the local
// SQLite file the original deployment used.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = filepath.Join("server", "wemisireact.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("❌ Failed to create data directory: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	log.Printf("✅ Connected to SQLite at %s", path)
	return db
}

// setupStaticFallback serves the Vite build output when present. API paths
// still 404 as JSON; everything else falls back to index.html for the client
// router.
func setupStaticFallback(r *gin.Engine) {
	distDir := os.Getenv("STATIC_DIR")
	if distDir == "" {
		distDir = "dist"
	}
	index := filepath.Join(distDir, "index.html")

	if _, err := os.Stat(distDir); err != nil {
		log.Printf("⚠️ %s not found, static files will not be served", distDir)
		r.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "API is running. Frontend not built or %s missing.", distDir)
		})
		return
	}

	if assets := filepath.Join(distDir, "assets"); dirExists(assets) {
		r.Static("/assets", assets)
	}
	r.StaticFile("/favicon.ico", filepath.Join(distDir, "favicon.ico"))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API route not found"})
			return
		}
		c.File(index)
	})
	log.Printf("✅ Serving static from %s", distDir)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
