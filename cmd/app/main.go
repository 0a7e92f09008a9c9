package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	_ "fulfillment/internal/adapters/out/postgres/migrations"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := postgresDSN(configs)
	if err := runMigrations(dsn); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	if jobManager != nil {
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		EcotrackBaseURL:    goDotEnvVariable("ECOTRACK_BASE_URL"),
		EcotrackAPIToken:   goDotEnvVariable("ECOTRACK_API_TOKEN"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		StatusSyncEnabled:  goDotEnvVariable("STATUS_SYNC_ENABLED") == "true",
		StatusSyncSchedule: goDotEnvVariable("STATUS_SYNC_SCHEDULE"),
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

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func runMigrations(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "internal/adapters/out/postgres/migrations")
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	if !configs.StatusSyncEnabled {
		return nil
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateSyncStatusesCommandHandler(),
		configs.StatusSyncSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpin.NewServer(
		app.CreateConfirmOrderCommandHandler(),
		app.CreateArchiveOrderCommandHandler(),
		app.CreateMarkRespondedCommandHandler(),
		app.CreateSetStatusCommandHandler(),
		app.CreateExpediateOrderCommandHandler(),
		app.CreateExpediateBatchCommandHandler(),
		app.CreateSyncStatusesCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetArchivedOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("", httpin.StaffAuthMiddleware([]byte(configs.JWTSecret)))
	servers.RegisterHandlers(api, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
