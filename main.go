// Command socialweb serves the GopherSocial web client: server-rendered pages
// backed by the remote GopherSocial API.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialweb/auth"
	"socialweb/client"
	"socialweb/config"
	"socialweb/handlers"
	"socialweb/middleware"
	"socialweb/routes"
	"socialweb/session"
	"socialweb/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env before viper reads the environment
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// Session storage: redis when enabled, in-process otherwise
	var store session.Store = session.NewMemoryStore()
	if cfg.RedisEnabled {
		rdb, err := session.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid redis configuration: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection warning: %v (falling back to in-memory sessions)", err)
		} else {
			store = session.NewRedisStore(rdb, cfg.SessionTTL)
			log.Println("Redis connected successfully")
			defer rdb.Close()
		}
		cancel()
	}

	sessions := session.NewManager(store, cfg.SessionTTL)
	api := client.New(cfg.APIURL, nil)
	authSvc := auth.NewService(api, store)
	h := handlers.New(api, authSvc, sessions)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:     "GopherSocial Web",
		Views:       views.Engine(),
		ViewsLayout: "layouts/main",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.StructuredLogger())

	// Setup routes
	routes.Setup(app, h, sessions)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
