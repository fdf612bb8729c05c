package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wms/cmd"
	_ "wms/docs"
	httpadapter "wms/internal/adapters/in/http"
	postgres_adapter "wms/internal/adapters/out/postgres"
	"wms/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const apiBaseURL = "/api/v1"

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres_adapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	userService := app.CreateUserService()
	warehouseService := app.CreateWarehouseService()

	if err = userService.InitializeAdministrators(ctx); err != nil {
		log.Fatalf("Error initializing administrators: %v", err)
	}

	jobManager := app.CreateJobManager(warehouseService)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app.CreateServer(userService, warehouseService), configs)
}

func startWebServer(ctx context.Context, server servers.ServerInterface, configs cmd.Config) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(configs.EchoLogLevel())
	e.Validator = httpadapter.NewFormValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	contract, err := httpadapter.RequestValidator(swagger, apiBaseURL)
	if err != nil {
		log.Fatalf("Error validating OpenAPI document: %v", err)
	}
	e.Use(contract)
	servers.RegisterHandlersWithBaseURL(e, server, apiBaseURL)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
