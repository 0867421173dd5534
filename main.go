package main

import (
	"os"
	"os/signal"
	"syscall"

	"betsim/config"
	"betsim/database"
	"betsim/jobs"
	"betsim/logger"
	"betsim/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger.Setup(cfg.AppEnv, cfg.AppLogLevel)

	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("❌ Failed to connect to database: %v", err)
	}

	app := fiber.New()
	routes.Setup(app)
	jobs.StartScheduler()

	addr := cfg.Addr()
	logrus.WithField("addr", addr).Info("Server running")

	go func() {
		if err := app.Listen(addr); err != nil {
			logrus.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Info("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exited cleanly")
}
