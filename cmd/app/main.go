package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bakery/cmd"
	adapter_http "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres/locationrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/adapters/out/postgres/userrepo"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	seedDemoData(&app, configs)
	startJobs(&app)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		DemoDataSeed: demoDataSeed(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func demoDataSeed() int64 {
	raw := goDotEnvVariable("DEMO_DATA_SEED")
	if raw == "" {
		return 1
	}

	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid DEMO_DATA_SEED: %v", err)
	}
	return seed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&locationrepo.PickupLocationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.HistoryItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func seedDemoData(app *cmd.CompositionRoot, configs cmd.Config) {
	seedCommand, err := commands.NewSeedDemoDataCommand(configs.DemoDataSeed, time.Now())
	if err != nil {
		log.Fatalf("Failed to build seed command: %v", err)
	}

	handler := app.CreateSeedDemoDataCommandHandler()
	seeded, err := handler.Handle(context.Background(), seedCommand)
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	if seeded {
		slog.Info("Demo data generated")
	} else {
		slog.Info("Database already populated, skipping demo data")
	}
}

func startJobs(app *cmd.CompositionRoot) {
	jobManager := jobs.NewJobManager(
		app.CreateGetDeliveryStatsQueryHandler(),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapter_http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStateCommandHandler(),
		app.CreateAddOrderCommentCommandHandler(),
		app.CreateGetOrdersDueQueryHandler(),
		app.CreateGetDeliveryStatsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
