package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rankmaker/rankmaker/internal/config"
	"github.com/rankmaker/rankmaker/internal/handlers"
	"github.com/rankmaker/rankmaker/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	tierListHandler *handlers.TierListHandler,
	voteHandler *handlers.VoteHandler,
	engagementHandler *handlers.EngagementHandler,
	mediaHandler *handlers.MediaHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Media ingestion
	api.Post("/uploads", middleware.OptionalJWT(cfg), mediaHandler.Upload)
	api.Post("/uploads/direct", middleware.OptionalJWT(cfg), mediaHandler.DirectUpload)
	api.Post("/embeds", mediaHandler.ParseEmbed)

	// Tier lists. Static segments are registered before /:id so they
	// match first.
	tl := api.Group("/tierlists", middleware.OptionalJWT(cfg))
	tl.Get("/public", tierListHandler.ListPublic)
	tl.Get("/top", tierListHandler.ListTop)
	tl.Get("/mine", tierListHandler.ListMine)
	tl.Get("/saved", middleware.JWTProtected(cfg), tierListHandler.ListSaved)
	tl.Post("/", tierListHandler.Create)
	tl.Get("/:id", tierListHandler.Get)
	tl.Put("/:id", tierListHandler.Update)
	tl.Delete("/:id", tierListHandler.Delete)
	tl.Post("/:id/use-template", tierListHandler.UseTemplate)

	// Voting accepts both identity channels
	tl.Post("/:id/vote", voteHandler.Vote)
	tl.Get("/:id/vote", voteHandler.Status)

	// Likes, saves, comments are authenticated-only
	tl.Post("/:id/like", middleware.JWTProtected(cfg), engagementHandler.Like)
	tl.Delete("/:id/like", middleware.JWTProtected(cfg), engagementHandler.Unlike)
	tl.Post("/:id/save", middleware.JWTProtected(cfg), engagementHandler.Save)
	tl.Delete("/:id/save", middleware.JWTProtected(cfg), engagementHandler.Unsave)
	tl.Get("/:id/save", middleware.JWTProtected(cfg), engagementHandler.SaveStatus)
	tl.Post("/:id/comments", middleware.JWTProtected(cfg), engagementHandler.Comment)
}
