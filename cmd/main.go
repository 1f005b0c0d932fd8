package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"marketing-platform/config"
	"marketing-platform/db"
	"marketing-platform/domain/auth"
	"marketing-platform/domain/blog"
	"marketing-platform/domain/casestudy"
	"marketing-platform/domain/catalog"
	"marketing-platform/domain/contact"
	"marketing-platform/domain/health"
	"marketing-platform/domain/testimonial"
	"marketing-platform/middleware"
	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/pkg/mailer"
	"marketing-platform/pkg/token"
	"marketing-platform/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal("Failed to load configuration", err)
	}

	logger.Init(logger.Config{
		Level:       logger.Level(cfg.LogLevel),
		Environment: cfg.Environment,
		ServiceName: "marketing-platform",
		Version:     "1.0.0",
	})
	log := logger.Get()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations", err)
	}

	var mail mailer.Mailer
	if cfg.Mail.DevMode || cfg.Mail.ResendAPIKey == "" {
		mail = mailer.NewDevMailer(log)
	} else {
		mail = mailer.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From, log)
	}

	tokens := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	guard := middleware.JWT(tokens)

	handlers := routes.Handlers{
		Auth:        auth.NewHandler(auth.NewRepository(database), tokens, log),
		Blog:        blog.NewHandler(blog.NewRepository(database), log),
		Testimonial: testimonial.NewHandler(testimonial.NewRepository(database), log),
		CaseStudy:   casestudy.NewHandler(casestudy.NewRepository(database), log),
		Contact: contact.NewHandler(contact.NewRepository(database), mail, contact.NotifyConfig{
			To:      cfg.Mail.To,
			Timeout: cfg.Mail.Timeout,
		}, log),
		Catalog: catalog.NewHandler(log),
		Health:  health.NewHandler(database),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)

	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentLength},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	routes.RegisterRoutes(e, handlers, guard)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", logger.String("port", cfg.Server.Port))
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server stopped unexpectedly", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", err)
	}
}
