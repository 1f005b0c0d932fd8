package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketing-platform/domain/auth"
	"marketing-platform/domain/blog"
	"marketing-platform/domain/casestudy"
	"marketing-platform/domain/catalog"
	"marketing-platform/domain/contact"
	"marketing-platform/domain/health"
	"marketing-platform/domain/testimonial"
)

// Handlers collects the constructed domain handlers.
type Handlers struct {
	Auth        *auth.Handler
	Blog        *blog.Handler
	Testimonial *testimonial.Handler
	CaseStudy   *casestudy.Handler
	Contact     *contact.Handler
	Catalog     *catalog.Handler
	Health      *health.Handler
}

// RegisterRoutes mounts the API under /api; admin groups sit behind the
// bearer-token guard.
func RegisterRoutes(e *echo.Echo, h Handlers, guard echo.MiddlewareFunc) {
	api := e.Group("/api")

	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "My Inbox Media® API",
			"version": "1.0.0",
			"status":  "operational",
		})
	})

	// Health
	api.GET("/health", h.Health.Health)
	api.GET("/health/live", h.Health.Live)
	api.GET("/health/stats", h.Health.Stats)

	// Static catalogs
	api.GET("/external/services", h.Catalog.Services)
	api.GET("/external/clients", h.Catalog.Clients)

	// Public submissions
	api.POST("/contact", h.Contact.Submit)
	api.POST("/book-meeting", h.Contact.BookMeeting)

	// Public content
	api.GET("/blog", h.Blog.List)
	api.GET("/blog/:slug", h.Blog.GetBySlug)
	api.GET("/testimonials", h.Testimonial.List)
	api.GET("/case-studies", h.CaseStudy.List)
	api.GET("/case-studies/:slug", h.CaseStudy.GetBySlug)

	// Auth
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", h.Auth.Me, guard)

	// Admin CRUD
	admin := api.Group("/admin", guard)
	admin.POST("/blog", h.Blog.Create)
	admin.PUT("/blog/:id", h.Blog.Update)
	admin.DELETE("/blog/:id", h.Blog.Delete)

	admin.POST("/testimonials", h.Testimonial.Create)
	admin.PUT("/testimonials/:id", h.Testimonial.Update)
	admin.DELETE("/testimonials/:id", h.Testimonial.Delete)

	admin.POST("/case-studies", h.CaseStudy.Create)
	admin.PUT("/case-studies/:id", h.CaseStudy.Update)
	admin.DELETE("/case-studies/:id", h.CaseStudy.Delete)

	admin.GET("/contacts", h.Contact.List)
	admin.PATCH("/contacts/:id/status", h.Contact.UpdateStatus)
}
