// File: roomly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	bookingRepo "roomly/database/repository/booking"
	employeeRepo "roomly/database/repository/employee"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/assistant"
	"roomly/services/booking"
	"roomly/services/employee"
	"roomly/services/scheduling"
	"roomly/services/semantic"
	"roomly/services/tasks"
	"roomly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitContextCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	employees := employeeRepo.NewMongoEmployeeRepo()

	// services.
	employeeService := &employee.DefaultEmployeeService{
		Repo:      employees,
		AuthCache: utils.GetAuthCacheClient(),
	}

	embedder := semantic.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey)
	matcher := semantic.NewPurposeMatcher(embedder, config.AppConfig.SimilarityThreshold)

	bookingService := &booking.DefaultBookingService{
		Repo:      bookings,
		Employees: employeeService,
		Resolver:  &scheduling.Resolver{Matcher: matcher},
		Embedder:  embedder,
		Reminders: tasks.NewReminderClient(),
	}

	ctxStore := assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute)
	assistantService := &assistant.DefaultAssistantService{
		Extractor: assistant.NewGeminiExtractor(config.AppConfig.GeminiAPIKey),
		CtxStore:  ctxStore,
		Router:    &assistant.Router{Bookings: bookingService},
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		EmployeeRepo:     employees,
		AuthHandler:      handlers.NewAuthHandler(employeeService),
		BookingHandler:   handlers.NewBookingHandler(bookingService),
		AssistantHandler: handlers.NewAssistantHandler(assistantService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
