package main

import (
	"fmt"
	"log/slog"
	"os"

	"fieldops/cmd"
	apihttp "fieldops/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	root := cmd.NewCompositionRoot(configs, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	config := cmd.Config{
		HTTPPort: envOrDefault("HTTP_PORT", "8080"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := apihttp.NewServer(apihttp.Handlers{
		CreateOrder:        root.CreateCreateOrderCommandHandler(),
		AssignPartner:      root.CreateAssignPartnerCommandHandler(),
		AssignTechnician:   root.CreateAssignTechnicianCommandHandler(),
		ConfirmAppointment: root.CreateConfirmAppointmentCommandHandler(),
		StartWork:          root.CreateStartWorkCommandHandler(),
		CompleteOrder:      root.CreateCompleteOrderCommandHandler(),
		MarkUnable:         root.CreateMarkUnableCommandHandler(),
		CancelOrder:        root.CreateCancelOrderCommandHandler(),
		RecordFeedback:     root.CreateRecordFeedbackCommandHandler(),
		GetOrder:           root.CreateGetOrderQueryHandler(),
		ListOrders:         root.CreateListOrdersQueryHandler(),
		DashboardStats:     root.CreateGetDashboardStatsQueryHandler(),
	}, root.PhotoStorage())

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
