package handler

import (
	"log/slog"

	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Auth   *AuthHandler
	Ticket *TicketHandler
	Review *ReviewHandler
	Follow *FollowHandler
	Block  *BlockHandler
	Feed   *FeedHandler
	Health *HealthHandler
}

type RouterOptions struct {
	AuthService service.AuthService
	RateLimiter *middleware.ViewerRateLimiter
	Logger      *slog.Logger
	CORSOrigins []string
	// Middleware runs first, before logging (e.g. error reporting)
	Middleware []gin.HandlerFunc
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(opts.Middleware...)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.GET("/health", h.Health.Health)

	public := r.Group("")
	if opts.RateLimiter != nil {
		// throttles sign-up and login attempts per client IP
		public.Use(middleware.RateLimit(opts.RateLimiter))
	}
	h.Auth.RegisterRoutes(public)

	viewer := r.Group("")
	viewer.Use(middleware.RequireViewer(opts.AuthService))
	if opts.RateLimiter != nil {
		viewer.Use(middleware.RateLimit(opts.RateLimiter))
	}
	h.Ticket.RegisterRoutes(viewer)
	h.Review.RegisterRoutes(viewer)
	h.Follow.RegisterRoutes(viewer)
	h.Block.RegisterRoutes(viewer)
	h.Feed.RegisterRoutes(viewer)

	return r
}
