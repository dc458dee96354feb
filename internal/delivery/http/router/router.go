// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HeroHandler        *handler.HeroHandler
	ServiceHandler     *handler.ServiceHandler
	ProjectHandler     *handler.ProjectHandler
	TeamHandler        *handler.TeamHandler
	TestimonialHandler *handler.TestimonialHandler
	UploadHandler      *handler.UploadHandler
	AuthHandler        *handler.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	heroHandler        *handler.HeroHandler
	serviceHandler     *handler.ServiceHandler
	projectHandler     *handler.ProjectHandler
	teamHandler        *handler.TeamHandler
	testimonialHandler *handler.TestimonialHandler
	uploadHandler      *handler.UploadHandler
	authHandler        *handler.AuthHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		heroHandler:        params.HeroHandler,
		serviceHandler:     params.ServiceHandler,
		projectHandler:     params.ProjectHandler,
		teamHandler:        params.TeamHandler,
		testimonialHandler: params.TestimonialHandler,
		uploadHandler:      params.UploadHandler,
		authHandler:        params.AuthHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The marketing site reads the content lists anonymously; every mutation and
// the upload endpoint require a valid admin session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/session", r.authHandler.Session, r.authMiddleware.Authenticate)
	}

	// Public reads
	api.GET("/hero-images", r.heroHandler.ListHeroImages)
	api.GET("/services", r.serviceHandler.ListServices)
	api.GET("/projects", r.projectHandler.ListProjects)
	api.GET("/projects/themes", r.projectHandler.ListThemes)
	api.GET("/team-members", r.teamHandler.ListTeamMembers)
	api.GET("/testimonials", r.testimonialHandler.ListTestimonials)

	// Admin mutations
	admin := api.Group("", r.authMiddleware.Authenticate)
	{
		admin.POST("/hero-images", r.heroHandler.CreateHeroImages)
		admin.PUT("/hero-images/:id", r.heroHandler.UpdateHeroImage)
		admin.DELETE("/hero-images/:id", r.heroHandler.DeleteHeroImage)

		admin.POST("/services", r.serviceHandler.CreateService)
		admin.PUT("/services/:id", r.serviceHandler.UpdateService)
		admin.DELETE("/services/:id", r.serviceHandler.DeleteService)

		admin.POST("/projects", r.projectHandler.CreateProject)
		admin.PUT("/projects/:id", r.projectHandler.UpdateProject)
		admin.DELETE("/projects/:id", r.projectHandler.DeleteProject)

		admin.POST("/team-members", r.teamHandler.CreateTeamMember)
		admin.PUT("/team-members/:id", r.teamHandler.UpdateTeamMember)
		admin.DELETE("/team-members/:id", r.teamHandler.DeleteTeamMember)

		admin.POST("/testimonials", r.testimonialHandler.CreateTestimonial)
		admin.PUT("/testimonials/:id", r.testimonialHandler.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", r.testimonialHandler.DeleteTestimonial)

		admin.POST("/upload", r.uploadHandler.UploadImages)
		admin.DELETE("/upload", r.uploadHandler.DeleteImage)
	}
}
