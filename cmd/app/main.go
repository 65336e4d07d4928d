package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"loadboard/cmd"
	httpadapter "loadboard/internal/adapters/in/http"
	"loadboard/internal/adapters/out/postgres/loadrepo"
	"loadboard/internal/adapters/out/postgres/profilerepo"
	"loadboard/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoswagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:        goDotEnvVariable("JWT_ISSUER"),
		JWTTTL:           goDotEnvVariable("JWT_TTL"),
		KafkaHost:        goDotEnvVariable("KAFKA_HOST"),
		KafkaEventsTopic: goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
		MapboxToken:      goDotEnvVariable("MAPBOX_TOKEN"),
		MapboxBaseURL:    goDotEnvVariable("MAPBOX_BASE_URL"),
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

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to wrap database with gorm: %v", err)
	}

	if err := gormDB.AutoMigrate(&loadrepo.LoadDTO{}, &profilerepo.ProfileDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(httpadapter.NewAuthMiddleware(app.Signer()))

	servers.RegisterHandlers(e, app.CreateServer())

	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoswagger.EchoWrapHandler(echoswagger.URL("/openapi.json")))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
