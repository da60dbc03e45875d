package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"paceflow/blog-gateway/config"
	_ "paceflow/blog-gateway/docs"
	"paceflow/blog-gateway/handlers"
	"paceflow/blog-gateway/internal/blogclient"
	"paceflow/blog-gateway/middleware"
	"paceflow/blog-gateway/store"
	"paceflow/blog-gateway/stream"
	"paceflow/blog-gateway/ws"
)

// @title Blog Gateway API
// @version 1.0
// @description Gateway between browser clients and the blog generation service.
// @BasePath /api/v1
func main() {
	// Initialize the structured logger
	config.InitLogger()

	client := blogclient.NewClient(config.GetBlogAPIBaseURL())
	controller := stream.NewController(client, config.Log)
	docStore := store.NewDocumentStore(client)

	hub := ws.NewProgressHub()
	hub.Start()

	// Every session update fans out to WebSocket clients; a completed session
	// also lands its article in the cache so the listing picks it up.
	controller.SetNotifier(func(snap stream.Snapshot) {
		if snap.Post != nil {
			docStore.Add(*snap.Post)
		}
		hub.BroadcastSnapshot(snap)
	})

	h := handlers.NewApplicationHandler(controller, docStore, client, hub, config.Log, config.GetExportDir())

	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins for development
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Blog Gateway is healthy",
		})
	})

	// API docs
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// WebSocket progress relay
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(h.ProgressSocket()))

	// API v1 routes
	apiV1 := app.Group("/api/v1")

	// Generation session routes
	apiV1.Post("/generate", h.StartGeneration)
	apiV1.Get("/generate/current", h.GetCurrentSession)

	// Article routes
	apiV1.Get("/blogs", h.ListBlogs)
	apiV1.Get("/blogs/:id", h.GetBlog)
	apiV1.Post("/blogs/:id/summarize", h.SummarizeBlog)
	apiV1.Post("/blogs/:id/export", h.ExportBlog)

	addr := config.GetListenAddr()
	log.Printf("Starting Blog Gateway on %s...", addr)
	log.Fatal(app.Listen(addr))
}
