package main

import (
	"fmt"
	"freightflow/cmd"
	"freightflow/internal/adapters/in/http"
	"freightflow/internal/adapters/out/postgres/cargorequestrepo"
	"freightflow/internal/adapters/out/postgres/deliveryrepo"
	"freightflow/internal/adapters/out/postgres/trackingrepo"
	"freightflow/internal/jobs"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		StalledThresholdMinutes: goDotEnvVariable("STALLED_THRESHOLD_MINUTES"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&cargorequestrepo.CargoRequestDTO{},
		&trackingrepo.TrackingDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	minutes, err := strconv.Atoi(configs.StalledThresholdMinutes)
	if err != nil || minutes <= 0 {
		log.Fatalf("Invalid STALLED_THRESHOLD_MINUTES: %s", configs.StalledThresholdMinutes)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetStalledDeliveriesQueryHandler(),
		time.Duration(minutes)*time.Minute,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateGetDeliveryTrackingQueryHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
