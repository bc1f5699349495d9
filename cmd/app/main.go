package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tradlogistics/cmd"
	httpadapter "tradlogistics/internal/adapters/in/http"
	"tradlogistics/internal/adapters/out/postgres/accountrepo"
	"tradlogistics/internal/adapters/out/postgres/deliveryrepo"
	"tradlogistics/internal/adapters/out/postgres/feedbackrepo"
	"tradlogistics/internal/jobs"
	"tradlogistics/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := startJobs(&app, configs, logger)
	if jobManager != nil {
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs)
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
		JWTSecret:               goDotEnvVariable("JWT_SECRET"),
		EnableScheduledDispatch: goDotEnvVariable("ENABLE_SCHEDULED_DISPATCH") == "true",
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&accountrepo.AccountDTO{},
		&accountrepo.DriverProfileDTO{},
		&feedbackrepo.RatingDTO{},
		&feedbackrepo.TipDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	if !configs.EnableScheduledDispatch {
		logger.Info("Scheduled dispatch disabled")
		return nil
	}

	jobManager := jobs.NewJobManager(app.CreateDispatchScheduledCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(metrics.Observability())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", metrics.Handler())

	tokens := httpadapter.NewTokenManager(configs.JWTSecret, tokenTTL)
	server := httpadapter.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateEditDeliveryCommandHandler(),
		app.CreateRemoveDeliveryCommandHandler(),
		app.CreateStartSearchingCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateAcceptDeliveryCommandHandler(),
		app.CreateUpdateDeliveryStatusCommandHandler(),
		app.CreateRateDeliveryCommandHandler(),
		app.CreateTipDeliveryCommandHandler(),
		app.CreateGetCustomerDeliveriesQueryHandler(),
		app.CreateGetDeliveryQueryHandler(),
		app.CreateGetAvailableDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e, httpadapter.AuthMiddleware(tokens))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
