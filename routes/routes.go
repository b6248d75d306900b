package routes

import (
	"net/http"
	"time"

	employeeRepo "roomly/database/repository/employee"
	"roomly/handlers"
	"roomly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and shared dependencies route
// registration needs.
type HandlerBundle struct {
	EmployeeRepo     employeeRepo.EmployeeRepository
	AuthHandler      *handlers.AuthHandler
	BookingHandler   *handlers.BookingHandler
	AssistantHandler *handlers.AssistantHandler
}

// RegisterAuthRoutes registers login and directory endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AuthHandler.LoginHandler)
	}

	directory := r.Group("/api/employees")
	{
		directory.Use(middleware.JWTAuthMiddleware(hb.EmployeeRepo))
		directory.GET("", hb.AuthHandler.ListEmployeesHandler)
	}
}

// RegisterBookingRoutes registers the booking operation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.EmployeeRepo))
		api.POST("/bookings", hb.BookingHandler.CreateBookingHandler)
		api.DELETE("/bookings", hb.BookingHandler.CancelBookingHandler)
		api.GET("/bookings", hb.BookingHandler.ViewBookingsHandler)
		api.GET("/availability", hb.BookingHandler.CheckAvailabilityHandler)
		api.POST("/bookings/:id/invites", hb.BookingHandler.InviteHandler)
		api.PUT("/bookings/:id/invites", hb.BookingHandler.RespondInviteHandler)
	}
}

// RegisterAssistantRoutes registers the free-text assistant endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.EmployeeRepo))
		api.POST("", hb.AssistantHandler.HandleAssistantRequest)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roomly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
