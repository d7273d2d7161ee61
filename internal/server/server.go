package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lucyai/lucy-support-be/internal/config"
	"github.com/lucyai/lucy-support-be/internal/core/auth"
	"github.com/lucyai/lucy-support-be/internal/core/llm"
	"github.com/lucyai/lucy-support-be/internal/core/scrape"
	"github.com/lucyai/lucy-support-be/internal/core/speech"
	"github.com/lucyai/lucy-support-be/internal/core/usage"
	"github.com/lucyai/lucy-support-be/internal/handlers"
	"github.com/lucyai/lucy-support-be/internal/services"
	"github.com/lucyai/lucy-support-be/internal/shared/utils"
	"github.com/lucyai/lucy-support-be/internal/store"
)

// Deps are the constructed collaborators the router wires together.
type Deps struct {
	Config   config.Config
	Store    *store.Store
	Gateway  *llm.Gateway
	Activity *usage.Log
	Speech   *speech.Service
}

// New builds the Fiber app with every route registered.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Lucy Support API",
		ErrorHandler: errorHandler,
	})

	app.Use(cors.New())

	jwtService := auth.NewJWTService(d.Config.JWTSecret)
	var limiter *auth.RateLimiter
	if d.Config.RateLimitEnabled {
		limiter = auth.NewRateLimiter(d.Config.RateLimitMax, d.Config.RateLimitWindow)
	}

	supportService := services.NewSupportService(d.Store, d.Gateway, d.Activity)

	supportHandler := handlers.NewSupportHandler(supportService)
	settingsHandler := handlers.NewSettingsHandler(d.Store)
	clientHandler := handlers.NewClientHandler(d.Store)
	appointmentHandler := handlers.NewAppointmentHandler(d.Store)
	conversationHandler := handlers.NewConversationHandler(d.Store, d.Activity)
	uploadHandler := handlers.NewUploadHandler(scrape.New())
	speechHandler := handlers.NewSpeechHandler(d.Speech)
	authHandler := auth.NewHandler(d.Store, jwtService)

	admin := auth.RequireAdmin(jwtService)
	clientKey := auth.RequireClientKey(d.Store, limiter)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "lucy-support-api"})
	})

	// Open endpoints
	app.Post("/api/signup", authHandler.Signup)
	app.Post("/api/login", authHandler.Login)
	app.Get("/api/widget-config", settingsHandler.WidgetConfig)

	// Support channel (client API key)
	app.Post("/api/support", clientKey, supportHandler.Ask)
	app.Post("/api/voice/transcribe", clientKey, speechHandler.Transcribe)
	app.Post("/api/voice/speak", clientKey, speechHandler.Speak)

	// Administrative channel (session token)
	app.Get("/api/settings", admin, settingsHandler.Get)
	app.Post("/api/settings", admin, settingsHandler.Update)

	app.Get("/api/clients", admin, clientHandler.List)
	app.Post("/api/clients", admin, clientHandler.Create)
	app.Put("/api/clients/:id", admin, clientHandler.Update)
	app.Delete("/api/clients/:id", admin, clientHandler.Delete)

	app.Get("/api/appointments", admin, appointmentHandler.List)
	app.Post("/api/appointments", admin, appointmentHandler.Create)
	app.Put("/api/appointments/:id", admin, appointmentHandler.Update)
	app.Delete("/api/appointments/:id", admin, appointmentHandler.Delete)

	app.Get("/api/conversations", admin, conversationHandler.Search)
	app.Get("/api/analytics", admin, conversationHandler.Analytics)
	app.Get("/api/activity", admin, conversationHandler.Activity)

	app.Post("/api/upload", admin, uploadHandler.Upload)
	app.Post("/api/scrape", admin, uploadHandler.Scrape)

	// Widget and dashboard assets
	app.Static("/", d.Config.StaticDir)

	return app
}

// errorHandler is the last line of defense: the caller gets the message,
// the diagnostics go to the logs.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	utils.LogError("unhandled request failure", err, map[string]interface{}{
		"path":   c.Path(),
		"method": c.Method(),
	})
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
